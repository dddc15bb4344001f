// Package execution runs configured hooks on demand
package execution

import (
	"time"

	"github.com/blairham/hooksmith/pkg/hook"
)

// ProgramName is passed as $0 to every command, ahead of the hook arguments
const ProgramName = "hooksmith"

// DefaultShell interprets each command line
const DefaultShell = "sh"

// Status is the overall outcome of running a hook
type Status int

// Run statuses.
const (
	Succeeded Status = iota
	Failed
)

func (s Status) String() string {
	if s == Succeeded {
		return "succeeded"
	}
	return "failed"
}

// CommandResult represents the result of one command of a hook
type CommandResult struct {
	Command  string
	Duration time.Duration
	ExitCode int
}

// Result represents the result of running one hook
type Result struct {
	Hook          string
	FailedCommand string
	Commands      []CommandResult
	Actions       []hook.Action
	Duration      time.Duration
	ExitCode      int
	Status        Status
}

// Success reports whether every command exited zero
func (r Result) Success() bool {
	return r.Status == Succeeded
}
