package commands

import (
	"github.com/dlclark/regexp2"
	"github.com/mitchellh/cli"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/errors"
	"github.com/blairham/hooksmith/pkg/hook/formatting"
)

// ListCommand prints the configured hook names
type ListCommand struct {
	BaseCommand
}

// ListOptions holds command-line options for the list command
type ListOptions struct {
	CommonOptions
	Match string `short:"m" long:"match" description:"Only list hooks whose name matches this regular expression"`
}

func newListCommand() *ListCommand {
	return &ListCommand{BaseCommand{
		Name:        "list",
		Description: "List the hooks in the configuration, in file order.",
		Examples: []Example{
			{Command: "hooksmith list", Description: "List every configured hook"},
			{Command: "hooksmith list --match '^pre-'", Description: "List hooks starting with pre-"},
			{Command: "hooksmith list -v", Description: "Also list the commands of each hook"},
		},
		Notes: []string{
			"A missing configuration file lists nothing and is not an error.",
			"--match accepts Perl-style expressions, including lookarounds.",
		},
	}}
}

// Help returns the help text for the list command
func (c *ListCommand) Help() string {
	var opts ListOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the list command
func (c *ListCommand) Synopsis() string {
	return "List configured hooks"
}

// Run executes the list command
func (c *ListCommand) Run(args []string) int {
	var opts ListOptions
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

	var re *regexp2.Regexp
	if opts.Match != "" {
		re, err = regexp2.Compile(opts.Match, regexp2.None)
		if err != nil {
			return c.Usagef("invalid --match expression: %v", err)
		}
	}

	session := c.NewSession(&opts.CommonOptions)

	cfg, err := config.Load(opts.Config)
	if errors.Is(err, errors.ErrConfigNotFound) {
		session.Logger.WithField("path", opts.Config).Debug("no configuration file, nothing to list")
		return ExitOK
	}
	if err != nil {
		return c.Fail(err)
	}

	for _, def := range cfg.Hooks() {
		if re != nil {
			matched, err := re.MatchString(def.Name)
			if err != nil {
				return c.Fail(err)
			}
			if !matched {
				continue
			}
		}

		session.Formatter.Line(formatting.Plain, def.Name)
		if opts.Verbose {
			for _, command := range def.Commands {
				session.Formatter.Linef(formatting.Detail, "  - %s", command)
			}
		}
	}
	return ExitOK
}

// ListCommandFactory creates a new list command instance
func ListCommandFactory() (cli.Command, error) {
	return newListCommand(), nil
}
