package main

import (
	"errors"
	"fmt"

	tuierrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// configSuggestion picks a hint for a configuration failure.
func configSuggestion(err error) string {
	var parseErr *tuierrors.ParseError
	var validationErr *tuierrors.ValidationError
	switch {
	case errors.As(err, &parseErr) && parseErr.Line > 0:
		return fmt.Sprintf("Fix the syntax near line %d of %s.", parseErr.Line, parseErr.Path)
	case errors.As(err, &parseErr):
		return "Check that the file exists and ends in .yaml, .yml or .toml."
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Correct the %q setting.", validationErr.Field)
	default:
		return "Run with --log-level debug for details."
	}
}
