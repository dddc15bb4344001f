package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mitchellh/cli"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/errors"
	"github.com/blairham/hooksmith/pkg/hook/execution"
	"github.com/blairham/hooksmith/pkg/hook/formatting"
	"github.com/blairham/hooksmith/pkg/prompt"
)

// RunCommand handles the run command functionality
type RunCommand struct {
	BaseCommand
	// Selector overrides the terminal prompt used by --interactive
	Selector execution.Selector
}

// RunOptions holds command-line options for the run command
type RunOptions struct {
	CommonOptions
	Interactive bool `short:"i" long:"interactive" description:"Pick the hook to run from a list"`
}

func newRunCommand() *RunCommand {
	return &RunCommand{BaseCommand: BaseCommand{
		Name:        "run",
		Description: "Run the commands of one or more configured hooks, in order, stopping at the first failure.",
		Usage:       "[OPTIONS] HOOK... [-- ARGS...]",
		Examples: []Example{
			{Command: "hooksmith run pre-commit", Description: "Run the pre-commit hook"},
			{Command: "hooksmith run pre-commit pre-push", Description: "Run several hooks, stopping at the first failure"},
			{Command: "hooksmith run commit-msg -- .git/COMMIT_EDITMSG", Description: "Pass arguments as git would"},
			{Command: "hooksmith run --interactive", Description: "Choose the hook from a list"},
			{Command: "hooksmith run pre-push --dry-run", Description: "Show the commands without running them"},
		},
		Notes: []string{
			"Each command runs as: sh -c COMMAND hooksmith ARGS...",
			"ARGS after -- are available to every command as $1, $2, ...",
			"Hooks run in the order given; a repeated name runs once.",
			"The exit status of a failing command is returned unchanged.",
		},
	}}
}

// Help returns the help text for the run command
func (c *RunCommand) Help() string {
	var opts RunOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the run command
func (c *RunCommand) Synopsis() string {
	return "Run a configured hook"
}

// Run executes the run command
func (c *RunCommand) Run(args []string) int {
	args, hookArgs := splitHookArgs(args)

	var opts RunOptions
	remaining, err := c.ParseArgsWithHelp(&opts, args)
	if err != nil {
		return ExitError
	}
	if remaining == nil {
		return ExitOK
	}
	if opts.Interactive && len(remaining) > 0 {
		return c.Usagef("--interactive does not take hook names, got %v", remaining)
	}
	if !opts.Interactive && len(remaining) == 0 {
		return c.Usagef("missing hook name")
	}

	session := c.NewSession(&opts.CommonOptions)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return c.Fail(err)
	}

	runner := execution.NewRunner(session.Options)
	runner.Stdout = c.stdout()
	runner.Stderr = c.stderr()
	runner.Selector = c.Selector
	if runner.Selector == nil {
		runner.Selector = prompt.NewSelector()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Interactive {
		result, err := runner.RunInteractive(ctx, cfg, hookArgs...)
		return c.report(session, result, err)
	}

	for _, name := range uniqueNames(remaining) {
		result, err := runner.Run(ctx, cfg, name, hookArgs...)
		if code := c.report(session, result, err); code != ExitOK {
			return code
		}
	}
	return ExitOK
}

// report prints the outcome of one hook run and returns its exit status
func (c *RunCommand) report(session *Session, result execution.Result, err error) int {
	switch {
	case err == nil, errors.Is(err, errors.ErrCommandFailed):
		session.Formatter.PrintRunResult(result)
	case errors.Is(err, errors.ErrCancelled):
		session.Formatter.Line(formatting.Warning, "selection cancelled")
	default:
		return c.Fail(err)
	}
	return ExitCodeFor(err)
}

// splitHookArgs cuts args at the first "--". What follows is handed to the
// hook commands untouched.
func splitHookArgs(args []string) (own, hookArgs []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// uniqueNames drops repeated hook names, keeping the first occurrence
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

// RunCommandFactory creates a new run command instance
func RunCommandFactory() (cli.Command, error) {
	return newRunCommand(), nil
}
