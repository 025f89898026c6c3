package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hypernet/config"
	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/netio"
	"github.com/katalvlaran/hypernet/transition"
)

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Invalid configuration file, environment or flags
	ExitDataError   = 3 // Malformed or degenerate input hypergraph
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

// exitCode maps err to a process exit code. Errors without an explicit code
// are classified by their sentinel.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	switch {
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, netio.ErrSyntax),
		errors.Is(err, core.ErrMalformedHypergraph),
		errors.Is(err, transition.ErrDegenerateMass):
		return ExitDataError
	default:
		return ExitError
	}
}
