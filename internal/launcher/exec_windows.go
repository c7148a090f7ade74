//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// launchHelper starts the helper and waits for it, then exits with the
// helper's own exit code. Windows has no process-image replacement
// primitive, so the helper runs as a child with a new process identity;
// environment and standard streams are still inherited unchanged.
func launchHelper(helperPath string, args []string) error {
	cmd := exec.Command(helperPath)
	cmd.Args = forwardedArgv(helperPath, args)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return &LaunchError{Path: helperPath, Err: err}
	}

	os.Exit(0)
	return nil
}
