package commands

import (
	"github.com/blairham/hooksmith/pkg/errors"
)

// Common constants used across command implementations
const (
	// Command usage patterns
	OptionsUsage = "[OPTIONS]"

	// ConfigFileName is the default configuration file
	ConfigFileName = "hooksmith.yaml"
)

// Exit statuses. ExitCancelled stays below 128 so a declined selection is
// not confused with a hook command killed by a signal (128+n).
const (
	ExitOK         = 0
	ExitError      = 1
	ExitConfig     = 2
	ExitValidation = 3
	ExitInstall    = 4
	ExitDrift      = 5
	ExitCancelled  = 6
)

// ExitCodeFor maps an engine error to the process exit status. A failed
// hook command exits with the command's own status.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, errors.ErrCancelled) {
		return ExitCancelled
	}

	switch errors.KindOf(err) {
	case errors.KindConfig:
		return ExitConfig
	case errors.KindValidation:
		return ExitValidation
	case errors.KindInstall, errors.KindUninstall:
		return ExitInstall
	case errors.KindRun:
		return errors.ExitCode(err)
	default:
		return ExitError
	}
}
