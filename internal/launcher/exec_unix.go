//go:build unix

package launcher

import (
	"os"
	"syscall"
)

// launchHelper replaces the current process image with the helper. On
// success it never returns: the helper inherits this process's identity,
// environment, and standard streams, and its exit code is what the
// launcher's caller observes.
func launchHelper(helperPath string, args []string) error {
	if err := syscall.Exec(helperPath, forwardedArgv(helperPath, args), os.Environ()); err != nil {
		return &LaunchError{Path: helperPath, Err: err}
	}

	// unreachable
	return nil
}
