// Package errs wraps cockroachdb/errors so the rest of the codebase gets
// stack traces and sentinel marking without importing the library everywhere.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and a capture point. Nil in, nil out.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates a sentinel with a stack trace attached.
func New(msg string) error {
	return cr.New(msg)
}

// Mark ties err to a sentinel while the original cause stays in the chain
// for logging. Marks live outside the Unwrap chain, so they are only visible
// to Is below, not to the standard library's errors.Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches target, through both the Unwrap chain and
// marks attached with Mark. Sentinel checks must use this instead of the
// standard library's errors.Is.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// ExtractStackLines renders the verbose form of err and returns at most
// maxLines lines of it, for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
