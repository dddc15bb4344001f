// Package errors defines the error kinds reported by hooksmith operations.
//
// Every failure surfaced by the engine is an *Error tagged with one Kind, so
// callers can choose an exit status without matching on message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error by the operation family that produced it.
type Kind int

// Error kinds.
const (
	KindUnknown Kind = iota
	KindConfig
	KindValidation
	KindInstall
	KindUninstall
	KindRun
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	case KindInstall:
		return "install"
	case KindUninstall:
		return "uninstall"
	case KindRun:
		return "run"
	default:
		return "unknown"
	}
}

// Common error causes.
var (
	// Config errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigRead     = errors.New("failed to read config file")
	ErrConfigParse    = errors.New("failed to parse config file")
	ErrInvalidName    = errors.New("hook name must be a plain file name")

	// Validation errors.
	ErrUnknownHookName = errors.New("not a standard git hook name")

	// Install/uninstall errors.
	ErrEmptyHook    = errors.New("hook has no commands")
	ErrWriteFailed  = errors.New("failed to write hook")
	ErrRemoveFailed = errors.New("failed to remove hook")
	ErrNotInstalled = errors.New("hook is not installed")
	ErrNotManaged   = errors.New("hook was not installed by hooksmith")

	// Run errors.
	ErrUnknownHook   = errors.New("hook not found in configuration")
	ErrNoHooks       = errors.New("no hooks available in configuration")
	ErrCancelled     = errors.New("selection cancelled")
	ErrNotTerminal   = errors.New("interactive selection requires a terminal")
	ErrCommandFailed = errors.New("command failed")
)

// Error is a kind-tagged error carrying the context needed to act on it.
type Error struct {
	Err     error
	Op      string
	Hook    string
	Path    string
	Command string
	Kind    Kind
	Code    int
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	if e.Hook != "" {
		fmt.Fprintf(&b, "hook '%s'", e.Hook)
	}
	if e.Command != "" {
		fmt.Fprintf(&b, " command '%s'", e.Command)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	msg := strings.TrimSpace(b.String())
	if e.Err == nil {
		return msg
	}
	if msg == "" {
		return e.Err.Error()
	}
	return msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a kind-tagged error wrapping cause.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// Config returns a configuration error for path.
func Config(path string, cause error) *Error {
	return &Error{Kind: KindConfig, Op: "load", Path: path, Err: cause}
}

// Parse returns a configuration parse error with a human readable detail.
func Parse(path, detail string) *Error {
	return Config(path, fmt.Errorf("%w: %s", ErrConfigParse, detail))
}

// KindOf reports the kind of the first *Error found in err's tree.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode returns the exit status recorded on a failed command, or 1 when
// err carries none.
func ExitCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Code != 0 {
		return e.Code
	}
	return 1
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join joins errs, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
