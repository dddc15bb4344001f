package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/blairham/hooksmith/pkg/errors"
	"github.com/blairham/hooksmith/pkg/git"
	"github.com/blairham/hooksmith/pkg/hook"
	"github.com/blairham/hooksmith/pkg/hook/formatting"
	"github.com/blairham/hooksmith/pkg/logger"
)

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	// Stdout and Stderr default to the process streams when nil
	Stdout      io.Writer
	Stderr      io.Writer
	Name        string
	Description string
	Usage       string
	Examples    []Example
	Notes       []string
}

// CommonOptions defines options shared across all commands
type CommonOptions struct {
	Config  string `short:"c" long:"config"  description:"Path to config file"                              default:"hooksmith.yaml"`
	Color   string `          long:"color"   description:"Whether to use color in output"                   default:"auto"           choice:"auto" choice:"always" choice:"never"`
	DryRun  bool   `          long:"dry-run" description:"Show what would be done without changing anything"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable verbose output"`
}

// Session is the per-invocation context built from CommonOptions
type Session struct {
	Formatter *formatting.Formatter
	Logger    *logrus.Logger
	Options   hook.Options
}

// NewSession wires the formatter, logger and engine options for one run
func (bc *BaseCommand) NewSession(common *CommonOptions) *Session {
	f := formatting.NewFormatter(bc.stdout(), common.Color, common.Verbose)
	log := logger.New(bc.stderr(), common.Verbose, f.ColorEnabled())
	return &Session{
		Formatter: f,
		Logger:    log,
		Options: hook.Options{
			Logger:  log,
			DryRun:  common.DryRun,
			Verbose: common.Verbose,
		},
	}
}

// ParseArgsWithHelp parses arguments and handles help display.
// It returns nil remaining arguments and a nil error when help was shown.
func (bc *BaseCommand) ParseArgsWithHelp(opts any, args []string) ([]string, error) {
	parser := bc.newParser(opts)

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil // Help was shown, exit gracefully
		}
		return nil, fmt.Errorf("error parsing arguments: %w", err)
	}
	if remaining == nil {
		remaining = []string{}
	}

	return remaining, nil
}

// GenerateHelp creates standardized help output for opts
func (bc *BaseCommand) GenerateHelp(opts any) string {
	formatter := &HelpFormatter{
		Command:     bc.Name,
		Description: bc.Description,
		Examples:    bc.Examples,
		Notes:       bc.Notes,
	}
	return formatter.FormatHelp(bc.newParser(opts))
}

func (bc *BaseCommand) newParser(opts any) *flags.Parser {
	parser := flags.NewParser(opts, flags.Default)
	parser.Name = "hooksmith " + bc.Name
	parser.Usage = bc.Usage
	if parser.Usage == "" {
		parser.Usage = OptionsUsage
	}
	return parser
}

// HooksDir locates the hooks directory of the repository enclosing the
// working directory.
func (bc *BaseCommand) HooksDir() (string, error) {
	repo, err := git.NewRepository("")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return repo.HooksDir()
}

// Fail prints err on stderr and returns the exit status for it
func (bc *BaseCommand) Fail(err error) int {
	fmt.Fprintf(bc.stderr(), "Error: %v\n", err)
	return ExitCodeFor(err)
}

// Usagef reports a command line mistake and returns ExitError
func (bc *BaseCommand) Usagef(format string, args ...any) int {
	fmt.Fprintf(bc.stderr(), "Error: %s\n", fmt.Sprintf(format, args...))
	fmt.Fprintf(bc.stderr(), "Run 'hooksmith %s --help' for usage.\n", bc.Name)
	return ExitError
}

func (bc *BaseCommand) stdout() io.Writer {
	if bc.Stdout != nil {
		return bc.Stdout
	}
	return os.Stdout
}

func (bc *BaseCommand) stderr() io.Writer {
	if bc.Stderr != nil {
		return bc.Stderr
	}
	return os.Stderr
}
