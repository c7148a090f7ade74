//go:build windows

package launcher

import "golang.org/x/sys/windows"

// maxPathLen bounds the joined helper path, counting the terminating NUL.
const maxPathLen = windows.MAX_PATH
