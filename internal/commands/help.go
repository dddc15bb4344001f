package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/cli"
)

// Factories returns the factory of every hooksmith command, keyed by name
func Factories() map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"compare":   CompareCommandFactory,
		"help":      HelpCommandFactory,
		"init":      InitCommandFactory,
		"install":   InstallCommandFactory,
		"list":      ListCommandFactory,
		"run":       RunCommandFactory,
		"uninstall": UninstallCommandFactory,
		"validate":  ValidateCommandFactory,
	}
}

// HelpCommand handles the help command functionality
type HelpCommand struct {
	BaseCommand
}

// HelpOptions holds command-line options for the help command
type HelpOptions struct{}

func newHelpCommand() *HelpCommand {
	return &HelpCommand{BaseCommand{
		Name:        "help",
		Description: "Show help for a specific command.",
		Usage:       "[COMMAND]",
	}}
}

// Help returns the help text for the help command
func (c *HelpCommand) Help() string {
	return `
Show help for a specific command.

Usage: hooksmith help [COMMAND]

If COMMAND is specified, shows detailed help for that command.
If no command is specified, shows general help.

` + CommandList(Factories())
}

// Synopsis returns a short description of the help command
func (c *HelpCommand) Synopsis() string {
	return "Show help for a specific command"
}

// Run executes the help command
func (c *HelpCommand) Run(args []string) int {
	var opts HelpOptions
	remaining, err := c.ParseArgsWithHelp(&opts, args)
	if err != nil {
		return ExitError
	}
	if remaining == nil {
		return ExitOK
	}

	if len(remaining) == 0 {
		fmt.Fprint(c.stdout(), c.Help())
		return ExitOK
	}

	name := remaining[0]
	factory, ok := Factories()[name]
	if !ok {
		fmt.Fprintf(c.stdout(), "Unknown command: %s\n\n", name)
		fmt.Fprint(c.stdout(), CommandList(Factories()))
		return ExitError
	}

	command, err := factory()
	if err != nil {
		return c.Fail(err)
	}
	fmt.Fprint(c.stdout(), command.Help())
	return ExitOK
}

// CommandList renders the name and synopsis of every command, sorted by name
func CommandList(factories map[string]cli.CommandFactory) string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		command, err := factories[name]()
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  %-18s  %s\n", name, command.Synopsis())
	}
	return b.String()
}

// HelpCommandFactory creates a new help command instance
func HelpCommandFactory() (cli.Command, error) {
	return newHelpCommand(), nil
}
