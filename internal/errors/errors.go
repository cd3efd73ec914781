// Package errors provides domain-specific error types for godoor.
//
// Bootstrap errors fall into a small closed set: the drop file is
// missing or unparsable (fatal: a misconfigured door entry needs
// operator attention), a transport failed to open (recovered locally
// by downgrading to the console), or the command line made no sense.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrDropFileMissing    = errors.New("drop file missing")
	ErrDropFileUnparsable = errors.New("drop file unparsable")
	ErrTransportOpen      = errors.New("transport open failed")
	ErrUsage              = errors.New("invalid directive combination")
	ErrNotOpen            = errors.New("transport is not open")
)

// ── Structured error types ───────────────────────────────────────────

// DropFileError reports a failure reading or parsing a drop file.
// It always carries the offending path so the sysop can fix the
// door entry in the BBS configuration.
type DropFileError struct {
	Path    string
	Dialect string // "door32", "doorsys", or "auto"
	Err     error
}

func (e *DropFileError) Error() string {
	return fmt.Sprintf("drop file %s (%s): %v", e.Path, e.Dialect, e.Err)
}

func (e *DropFileError) Unwrap() error { return e.Err }

// TransportError reports a failure opening or using a transport.
type TransportError struct {
	Kind   string // "socket", "serial", "console"
	Target string // socket handle or port name
	Err    error
}

func (e *TransportError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s transport: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s transport %s: %v", e.Kind, e.Target, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapDropFile creates a DropFileError around err.
func WrapDropFile(path, dialect string, err error) *DropFileError {
	return &DropFileError{Path: path, Dialect: dialect, Err: err}
}

// WrapTransport creates a TransportError chained to ErrTransportOpen so
// callers can test with errors.Is regardless of the concrete cause.
func WrapTransport(kind, target string, err error) *TransportError {
	return &TransportError{Kind: kind, Target: target, Err: fmt.Errorf("%w: %v", ErrTransportOpen, err)}
}

// ── Classification helpers ───────────────────────────────────────────

// IsFatal reports whether err must abort bootstrap.  Only drop-file
// problems and directive misuse are fatal; transport failures downgrade.
func IsFatal(err error) bool {
	return errors.Is(err, ErrDropFileMissing) ||
		errors.Is(err, ErrDropFileUnparsable) ||
		errors.Is(err, ErrUsage)
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }
