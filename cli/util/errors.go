package util

import "errors"

var (
	// ErrCmdAbort is reported when the user aborts the program.
	ErrCmdAbort = errors.New("aborted by user")
)
