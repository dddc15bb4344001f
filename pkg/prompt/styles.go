package prompt

import "github.com/charmbracelet/lipgloss"

// Styles for selector rendering
var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

var filterLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

var filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

var optionSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

var optionNormalStyle = lipgloss.NewStyle()

// matchHighlightStyle marks characters matched by the filter
var matchHighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Underline(true)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
