package collector

import (
	"errors"
	"fmt"
)

var (
	// ErrAccessDenied is returned by PartitionUsage when the volume cannot be
	// queried with the caller's privileges.
	ErrAccessDenied = errors.New("partition access denied")

	// ErrNotSupported is returned when a fact has no source on this platform.
	ErrNotSupported = errors.New("not supported on this platform")
)

// CommandError records a failed external command.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
