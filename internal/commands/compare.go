package commands

import (
	"github.com/mitchellh/cli"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/hook"
)

// CompareCommand reports drift between the configuration and the hooks
// directory
type CompareCommand struct {
	BaseCommand
}

// CompareOptions holds command-line options for the compare command
type CompareOptions struct {
	CommonOptions
	ExitCode bool `long:"exit-code" description:"Exit with status 5 when installed hooks differ from the configuration"`
}

func newCompareCommand() *CompareCommand {
	return &CompareCommand{BaseCommand{
		Name:        "compare",
		Description: "Compare installed hook scripts with the scripts the configuration would generate.",
		Examples: []Example{
			{Command: "hooksmith compare", Description: "Show the state of every hook"},
			{Command: "hooksmith compare --exit-code", Description: "Fail when hooks are out of date (for CI)"},
		},
		Notes: []string{
			"up to date: the installed script matches the configuration",
			"configured but not installed: run 'hooksmith install'",
			"installed but not configured: a hooksmith script the configuration no longer lists",
			"differs: the installed script was edited or the configuration changed",
			"Scripts written by other tools are not reported.",
		},
	}}
}

// Help returns the help text for the compare command
func (c *CompareCommand) Help() string {
	var opts CompareOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the compare command
func (c *CompareCommand) Synopsis() string {
	return "Compare installed hooks with the configuration"
}

// Run executes the compare command
func (c *CompareCommand) Run(args []string) int {
	var opts CompareOptions
	remaining, err := c.ParseArgsWithHelp(&opts, args)
	if err != nil {
		return ExitError
	}
	if remaining == nil {
		return ExitOK
	}
	if len(remaining) > 0 {
		return c.Usagef("unexpected arguments: %v", remaining)
	}

	session := c.NewSession(&opts.CommonOptions)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return c.Fail(err)
	}
	hooksDir, err := c.HooksDir()
	if err != nil {
		return c.Fail(err)
	}

	installer := hook.NewInstaller(hooksDir, session.Options)
	cmp, err := hook.NewComparator(installer).Compare(cfg)
	if err != nil {
		return c.Fail(err)
	}
	session.Formatter.PrintComparison(cmp)

	if opts.ExitCode && cmp.Drifted() {
		return ExitDrift
	}
	return ExitOK
}

// CompareCommandFactory creates a new compare command instance
func CompareCommandFactory() (cli.Command, error) {
	return newCompareCommand(), nil
}
