//go:build unix

package launcher

import "golang.org/x/sys/unix"

// maxPathLen bounds the joined helper path. The limit counts the
// terminating NUL the exec syscall appends, so a valid path holds at
// most maxPathLen-1 bytes.
const maxPathLen = unix.PathMax
