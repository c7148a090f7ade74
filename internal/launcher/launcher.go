// Package launcher implements the snapo launcher stub logic.
// It derives the helper's absolute path from the launcher's own
// canonical location, then replaces the current process image with
// the helper, passing every argument through verbatim.
package launcher

import (
	"fmt"
	"os"
)

// Run executes the launcher and returns the exit code. It returns only
// on failure: on success the process image has been replaced by the
// helper and nothing here runs again. Every failure produces exactly one
// diagnostic line on stderr.
func Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "snapo: missing own executable path in argument list\n")
		return 1
	}

	helperPath, err := resolveHelperPath(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapo: %v\n", err)
		return 1
	}

	if err := launchHelper(helperPath, args); err != nil {
		fmt.Fprintf(os.Stderr, "snapo: %v\n", err)
		return 1
	}

	// launchHelper only returns with an error
	return 1
}
