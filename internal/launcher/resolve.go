package launcher

import "path/filepath"

// helperRelativePath is where the helper lives beneath the install root.
// The root is found by removing the launcher's file name and its
// containing directory from the resolved path, so the expected layout is
// root/bin/snapo alongside root/Helpers/.... This is a fixed property of
// the distribution layout, not configurable.
const helperRelativePath = "Helpers/Snap-O Network Inspector.app/Contents/MacOS/Snap-O Network Inspector"

// resolveHelperPath canonicalizes the launcher's own path as given by the
// OS (argv[0], possibly relative, possibly a symlink) and derives the
// helper's absolute path from it. The helper is not checked for
// existence; the launch attempt surfaces that.
func resolveHelperPath(argv0 string) (string, error) {
	abs, err := filepath.Abs(argv0)
	if err != nil {
		return "", &ResolveError{Path: argv0, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &ResolveError{Path: argv0, Err: err}
	}

	return helperPathFrom(resolved)
}

// helperPathFrom strips the launcher's file name and its containing
// directory from the resolved path to obtain the install root, then joins
// the fixed helper suffix beneath it.
func helperPathFrom(resolved string) (string, error) {
	dir := filepath.Dir(resolved)
	if dir == resolved {
		return "", &LayoutError{Path: resolved}
	}

	root := filepath.Dir(dir)
	if root == dir {
		return "", &LayoutError{Path: resolved}
	}

	helperPath := filepath.Join(root, helperRelativePath)
	if len(helperPath) >= maxPathLen {
		return "", &PathLengthError{Path: helperPath, Length: len(helperPath)}
	}

	return helperPath, nil
}
