package launcher

import "fmt"

// ResolveError reports that the launcher's own path could not be
// canonicalized (missing file, permission, symlink loop).
type ResolveError struct {
	Path string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve launcher path %q: %v", e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// LayoutError reports a resolved launcher path too shallow to have an
// install root two directory levels above it.
type LayoutError struct {
	Path string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("unexpected install layout: %q is not nested two levels below an install root", e.Path)
}

// PathLengthError reports a joined helper path that exceeds the
// platform's maximum path length.
type PathLengthError struct {
	Path   string
	Length int
}

func (e *PathLengthError) Error() string {
	return fmt.Sprintf("helper path too long: %d bytes exceeds the platform limit of %d", e.Length, maxPathLen)
}

// LaunchError reports a failed attempt to transfer control to the helper
// (missing, not executable, permission denied).
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch helper %q: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
