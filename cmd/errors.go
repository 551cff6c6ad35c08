package cmd

import (
	"errors"
	"fmt"
)

// ErrFilesFailed is returned when at least one file failed to compress.
// main maps it to exit code 1.
var ErrFilesFailed = errors.New("one or more files failed to compress")

// UsageError marks argument validation failures detected after flag parsing.
// main maps it to exit code 2.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}
