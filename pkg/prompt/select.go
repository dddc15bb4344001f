// Package prompt provides the interactive hook picker.
package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"

	"github.com/blairham/hooksmith/pkg/errors"
)

// maxVisible bounds how many options are drawn at once
const maxVisible = 10

// optionSource implements fuzzy.Source for plain strings.
type optionSource []string

func (s optionSource) String(i int) string { return s[i] }
func (s optionSource) Len() int            { return len(s) }

// selectModel is the Bubble Tea model of a single-choice list with
// type-to-filter.
type selectModel struct {
	title    string
	options  []string
	filtered []fuzzy.Match
	filter   string
	cursor   int
	selected int
	quitting bool
}

func newSelectModel(title string, options []string) selectModel {
	m := selectModel{title: title, options: options, selected: -1}
	m.applyFilter()
	return m
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.filtered) {
			m.selected = m.filtered[m.cursor].Index
			return m, tea.Quit
		}
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "backspace":
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}
	default:
		if key.Type == tea.KeyRunes {
			m.filter += string(key.Runes)
			m.applyFilter()
		}
	}

	return m, nil
}

func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.options))
		for i, option := range m.options {
			m.filtered[i] = fuzzy.Match{Str: option, Index: i}
		}
	} else {
		// Results are sorted by score, best first
		m.filtered = fuzzy.FindFrom(m.filter, optionSource(m.options))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(filterLabelStyle.Render("Filter: ") + filterStyle.Render(m.filter) + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	for i := start; i < end; i++ {
		match := m.filtered[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(cursor + m.renderOption(match, i == m.cursor) + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(optionNormalStyle.Render("  No matching hooks") + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ move • type to filter • enter select • esc cancel"))
	return b.String()
}

// renderOption highlights the characters matched by the filter
func (m selectModel) renderOption(match fuzzy.Match, current bool) string {
	style := optionNormalStyle
	if current {
		style = optionSelectedStyle
	}
	if len(match.MatchedIndexes) == 0 {
		return style.Render(match.Str)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}
	var b strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(matchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(style.Render(string(r)))
		}
	}
	return b.String()
}

// choice returns the picked option, or false when the user cancelled
func (m selectModel) choice() (string, bool) {
	if m.quitting || m.selected < 0 || m.selected >= len(m.options) {
		return "", false
	}
	return m.options[m.selected], true
}

// Selector presents options on a terminal and returns the chosen one
type Selector struct {
	In  io.Reader
	Out io.Writer
}

// NewSelector creates a selector on the process's stdin and stderr
func NewSelector() *Selector {
	return &Selector{In: os.Stdin, Out: os.Stderr}
}

// Select shows a filterable list and blocks until the user picks an option.
// It returns errors.ErrCancelled when the user backs out.
func (s *Selector) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.ErrCancelled
	}
	if !isTerminal(s.In) {
		return "", errors.ErrNotTerminal
	}

	program := tea.NewProgram(newSelectModel(title, options), tea.WithInput(s.In), tea.WithOutput(s.Out))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run selector: %w", err)
	}

	m, ok := final.(selectModel)
	if !ok {
		return "", errors.ErrCancelled
	}
	choice, ok := m.choice()
	if !ok {
		return "", errors.ErrCancelled
	}
	return choice, nil
}

func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
