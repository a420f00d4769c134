package vswhere

import (
	"fmt"
	"strings"
)

// ResolutionError indicates that no usable vswhere executable could be
// located or downloaded.
type ResolutionError struct {
	URL     string
	Message string
	Err     error
}

func (e *ResolutionError) Error() string {
	parts := []string{"resolve vswhere"}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.URL != "" {
		parts = append(parts, fmt.Sprintf("url %s", e.URL))
	}
	msg := strings.Join(parts, ": ")
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// InvocationError indicates that vswhere exited with a non-zero status.
// Output carries whatever the process wrote before failing.
type InvocationError struct {
	ExitCode int
	Output   string
}

func (e *InvocationError) Error() string {
	if out := strings.TrimSpace(e.Output); out != "" {
		return fmt.Sprintf("vswhere exited with code %d: %s", e.ExitCode, out)
	}
	return fmt.Sprintf("vswhere exited with code %d", e.ExitCode)
}

// DecodeError indicates that vswhere output expected to be a JSON array
// of instance records could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode vswhere output: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
