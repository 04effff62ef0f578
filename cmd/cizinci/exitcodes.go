// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the cizinci CLI.
const (
	ExitOK             = 0 // Output written.
	ExitInvalidArgs    = 1 // Invalid arguments, config or dataset rows.
	ExitPartialFailure = 2 // Output written, but an optional step failed.
	ExitTotalFailure   = 3 // Dataset could not be loaded; no output produced.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitPartialFailure:
			msg = "cizinci: output written, but some steps failed"
		case ExitTotalFailure:
			msg = "cizinci: dataset could not be loaded"
		default:
			msg = "cizinci: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
