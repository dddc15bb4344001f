package hook

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blairham/hooksmith/pkg/logger"
)

// Options is the per-invocation context shared by the installer, comparator
// and runner. It is passed explicitly; nothing reads it from globals.
type Options struct {
	Logger  logrus.FieldLogger
	DryRun  bool
	Verbose bool
	// Force lets uninstall remove a named hook that hooksmith did not write
	Force bool
}

// Log returns the configured logger, or a discarding one
func (o Options) Log() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.Discard()
}

// ActionKind names a filesystem or process effect
type ActionKind string

// Action kinds recorded in dry-run mode.
const (
	ActionMkdir   ActionKind = "mkdir"
	ActionWrite   ActionKind = "write"
	ActionChmod   ActionKind = "chmod"
	ActionRemove  ActionKind = "remove"
	ActionExecute ActionKind = "execute"
)

// Action is an effect that would have been performed outside dry-run mode.
// Target is a path, or a command line for ActionExecute.
type Action struct {
	Kind   ActionKind
	Target string
}

func (a Action) String() string {
	return fmt.Sprintf("%s %s", a.Kind, a.Target)
}
