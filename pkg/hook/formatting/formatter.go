// Package formatting handles result formatting and output display
package formatting

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/blairham/hooksmith/pkg/errors"
	"github.com/blairham/hooksmith/pkg/hook"
	"github.com/blairham/hooksmith/pkg/hook/execution"
)

// Color modes accepted by --color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Style is the visual role of an output line
type Style int

// Line styles.
const (
	Plain Style = iota
	Success
	Failure
	Warning
	Info
	Detail
)

// lineWidth is the width status lines are padded to with dots
const lineWidth = 79

// Formatter handles formatting and displaying engine results
type Formatter struct {
	out     io.Writer
	styles  map[Style]*color.Color
	status  map[execution.Status]*color.Color
	verbose bool
	color   bool
}

// NewFormatter creates a formatter writing to out
func NewFormatter(out io.Writer, colorMode string, verbose bool) *Formatter {
	f := &Formatter{
		out:     out,
		verbose: verbose,
		styles: map[Style]*color.Color{
			Plain:   color.New(color.Reset),
			Success: color.New(color.FgGreen),
			Failure: color.New(color.FgRed, color.Bold),
			Warning: color.New(color.FgYellow),
			Info:    color.New(color.FgCyan),
			// Dimmed light gray
			Detail: color.New(color.Faint, color.FgWhite),
		},
		status: map[execution.Status]*color.Color{
			execution.Succeeded: color.New(color.BgGreen, color.FgBlack),
			execution.Failed:    color.New(color.BgRed, color.FgWhite),
		},
	}
	f.color = shouldEnableColor(colorMode, out)

	for _, c := range f.styles {
		f.setColor(c)
	}
	for _, c := range f.status {
		f.setColor(c)
	}
	return f
}

func (f *Formatter) setColor(c *color.Color) {
	if f.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// ColorEnabled reports whether output is styled
func (f *Formatter) ColorEnabled() bool {
	return f.color
}

// Line writes one line of text in the given style
func (f *Formatter) Line(style Style, text string) {
	c, ok := f.styles[style]
	if !ok || style == Plain {
		fmt.Fprintln(f.out, text)
		return
	}
	fmt.Fprintln(f.out, c.Sprint(text))
}

// Linef writes one formatted line in the given style
func (f *Formatter) Linef(style Style, format string, args ...any) {
	f.Line(style, fmt.Sprintf(format, args...))
}

// PrintActions lists the effects a dry run skipped
func (f *Formatter) PrintActions(actions []hook.Action) {
	for _, action := range actions {
		f.Linef(Info, "[dry-run] %s", action)
	}
}

// PrintInstall prints one line per configured hook
func (f *Formatter) PrintInstall(results []hook.InstallResult) {
	for _, res := range results {
		switch {
		case res.Err != nil:
			f.Linef(Failure, "✗ %s: %v", res.Name, cause(res.Err))
		case !res.Written:
			f.PrintActions(res.Actions)
			f.Linef(Info, "would install %s", res.Name)
		default:
			f.Linef(Success, "✓ installed %s", res.Name)
			if f.verbose {
				f.Linef(Detail, "- path: %s", res.Path)
			}
		}
	}
}

// PrintUninstall prints one line per removed hook
func (f *Formatter) PrintUninstall(results []hook.UninstallResult) {
	for _, res := range results {
		switch {
		case errors.Is(res.Err, errors.ErrNotInstalled):
			f.Linef(Warning, "! %s is not installed", res.Name)
		case errors.Is(res.Err, errors.ErrNotManaged):
			f.Linef(Warning, "! %s was not installed by hooksmith, use --force to remove it", res.Name)
		case res.Err != nil:
			f.Linef(Failure, "✗ %s: %v", res.Name, cause(res.Err))
		case !res.Removed:
			f.PrintActions(res.Actions)
			f.Linef(Info, "would remove %s", res.Name)
		default:
			f.Linef(Success, "✓ removed %s", res.Name)
		}
	}
	if len(results) == 0 {
		f.Line(Plain, "no hooksmith hooks installed")
	}
}

// PrintComparison prints the drift report
func (f *Formatter) PrintComparison(cmp hook.Comparison) {
	if len(cmp) == 0 {
		f.Line(Plain, "no hooks configured or installed")
		return
	}
	for _, s := range cmp {
		switch s.Outcome {
		case hook.Matching:
			f.Linef(Success, "✓ %s: up to date", s.Name)
		case hook.Missing:
			f.Linef(Warning, "- %s: configured but not installed", s.Name)
		case hook.Extra:
			f.Linef(Warning, "+ %s: installed but not configured", s.Name)
		case hook.Diverged:
			f.Linef(Failure, "~ %s: installed script differs from configuration", s.Name)
		}
	}
	if cmp.Drifted() {
		f.Line(Detail, "run 'hooksmith install' to bring hooks up to date")
	}
}

// PrintValidation prints the validity of every configured hook name
func (f *Formatter) PrintValidation(validations []hook.Validation) {
	for _, v := range validations {
		if v.Valid {
			f.Linef(Success, "✓ %s", v.Name)
		} else {
			f.Linef(Failure, "✗ %s: not a standard git hook name", v.Name)
		}
	}
	if len(validations) == 0 {
		f.Line(Plain, "no hooks configured")
	}
}

// PrintRunResult prints a status line for a run, padded with dots
func (f *Formatter) PrintRunResult(result execution.Result) {
	f.PrintActions(result.Actions)

	statusText := "Passed"
	if !result.Success() {
		statusText = "Failed"
	}

	dotsLength := max(lineWidth-len(result.Hook)-len(statusText), 1)
	dots := strings.Repeat(".", dotsLength)
	fmt.Fprintf(f.out, "%s%s%s\n", result.Hook, dots, f.status[result.Status].Sprint(statusText))

	if !result.Success() {
		f.Linef(Detail, "- command: %s", result.FailedCommand)
		f.Linef(Detail, "- exit code: %d", result.ExitCode)
	}
	if f.verbose {
		f.Linef(Detail, "- duration: %s", formatDuration(result.Duration))
	}
}

// cause strips the hook context already shown at the start of the line
func cause(err error) error {
	var e *errors.Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err
	}
	return err
}

// shouldEnableColor determines if color output should be used based on the color mode setting
func shouldEnableColor(colorMode string, out io.Writer) bool {
	switch colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		file, ok := out.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
}

// formatDuration renders a duration with precision scaled to its size
func formatDuration(duration time.Duration) string {
	seconds := duration.Seconds()

	switch {
	case seconds < 0.005:
		return "0s"
	case seconds < 1.0:
		return fmt.Sprintf("%.2fs", seconds)
	case seconds < 60.0:
		return fmt.Sprintf("%.1fs", seconds)
	default:
		minutes := int(seconds) / 60
		remainingSeconds := int(seconds) % 60
		return fmt.Sprintf("%dm%ds", minutes, remainingSeconds)
	}
}
