// Command snapo is the Snap-O Network Inspector launcher stub.
// It resolves the bundled helper's location relative to its own
// installed path and replaces itself with the helper, forwarding
// all arguments unchanged.
package main

import (
	"os"

	"snapo/internal/launcher"
)

func main() {
	os.Exit(launcher.Run(os.Args))
}
