package launcher

// forwardedArgv builds the helper's argument vector from the launcher's
// own: slot 0 becomes the helper path, every later slot is carried over
// unchanged and in order. The result has the same length as the input.
func forwardedArgv(helperPath string, args []string) []string {
	if len(args) == 0 {
		return []string{helperPath}
	}

	argv := make([]string, len(args))
	argv[0] = helperPath
	copy(argv[1:], args[1:])
	return argv
}
