//go:generate mockgen -destination=./mocks/selector.go -package=mocks . Selector

package execution

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/errors"
	"github.com/blairham/hooksmith/pkg/hook"
)

// Selector picks one option from a list. Implementations return
// errors.ErrCancelled when the user backs out.
type Selector interface {
	Select(title string, options []string) (string, error)
}

// Runner executes hook commands in the foreground
type Runner struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Selector Selector
	// Shell interprets each command, DefaultShell when empty
	Shell string
	// Dir is the working directory of the commands, the current one when empty
	Dir  string
	opts hook.Options
}

// NewRunner creates a runner attached to the process's standard streams
func NewRunner(opts hook.Options) *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Shell:  DefaultShell,
		opts:   opts,
	}
}

// Run executes the commands of the named hook in order, stopping at the
// first one that exits non-zero. args become the positional parameters of
// every command, the same way git passes them to an installed script.
//
// A failing command yields a KindRun error whose exit code is that of the
// command, so callers can propagate it unchanged.
func (r *Runner) Run(ctx context.Context, cfg *config.HookConfig, name string, args ...string) (Result, error) {
	def, ok := cfg.Get(name)
	if !ok {
		return Result{Hook: name, Status: Failed, ExitCode: 1},
			&errors.Error{Kind: errors.KindRun, Op: "run", Hook: name, Err: errors.ErrUnknownHook}
	}

	log := r.opts.Log().WithField("hook", name)
	result := Result{Hook: name, Status: Succeeded}
	start := time.Now()

	for _, command := range def.Commands {
		if r.opts.DryRun {
			result.Actions = append(result.Actions, hook.Action{Kind: hook.ActionExecute, Target: command})
			log.WithField("command", command).Debug("dry run, command not executed")
			continue
		}

		log.WithField("command", command).Debug("running command")
		cr, err := r.execute(ctx, command, args)
		result.Commands = append(result.Commands, cr)
		if err != nil {
			result.Status = Failed
			result.FailedCommand = command
			result.ExitCode = cr.ExitCode
			result.Duration = time.Since(start)
			log.WithFields(logrus.Fields{"command": command, "exit_code": cr.ExitCode}).Debug("command failed")
			return result, &errors.Error{
				Kind:    errors.KindRun,
				Op:      "run",
				Hook:    name,
				Command: command,
				Code:    cr.ExitCode,
				Err:     fmt.Errorf("%w: %w", errors.ErrCommandFailed, err),
			}
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

// RunInteractive asks the Selector which configured hook to run, then runs it
func (r *Runner) RunInteractive(ctx context.Context, cfg *config.HookConfig, args ...string) (Result, error) {
	names := cfg.Names()
	if len(names) == 0 {
		return Result{Status: Failed, ExitCode: 1}, &errors.Error{Kind: errors.KindRun, Op: "run", Err: errors.ErrNoHooks}
	}
	if r.Selector == nil {
		return Result{Status: Failed, ExitCode: 1},
			&errors.Error{Kind: errors.KindRun, Op: "run", Err: fmt.Errorf("interactive selection is not available")}
	}

	name, err := r.Selector.Select("Select a hook to run", names)
	if err != nil {
		if errors.Is(err, errors.ErrCancelled) {
			return Result{Status: Failed}, &errors.Error{Kind: errors.KindRun, Op: "run", Err: errors.ErrCancelled}
		}
		return Result{Status: Failed, ExitCode: 1}, &errors.Error{Kind: errors.KindRun, Op: "run", Err: err}
	}

	return r.Run(ctx, cfg, name, args...)
}

// execute runs one command line through the shell and waits for it
func (r *Runner) execute(ctx context.Context, command string, args []string) (CommandResult, error) {
	shell := r.Shell
	if shell == "" {
		shell = DefaultShell
	}

	shellArgs := append([]string{"-c", command, ProgramName}, args...)
	// #nosec G204 -- commands come from the hooksmith configuration
	cmd := exec.CommandContext(ctx, shell, shellArgs...)
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	start := time.Now()
	err := cmd.Run()
	cr := CommandResult{Command: command, Duration: time.Since(start)}
	if err != nil {
		cr.ExitCode = exitCode(err)
	}
	return cr, err
}

// exitCode extracts the exit status of a finished command. Termination by
// a signal maps to 128+signal like a shell does; anything else that kept
// the command from reporting a status maps to 1.
func exitCode(err error) int {
	var exitError *exec.ExitError
	if !errors.As(err, &exitError) {
		return 1
	}
	if code := exitError.ExitCode(); code >= 0 {
		return code
	}
	if status, ok := exitError.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return 1
}
