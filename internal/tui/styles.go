package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	colorPrimary = lipgloss.Color("#7D56F4") // Purple
	colorAccent  = lipgloss.Color("#00D9FF") // Cyan

	// Status colors
	colorSuccess = lipgloss.Color("#00D787") // Green
	colorWarning = lipgloss.Color("#FFB86C") // Orange
	colorError   = lipgloss.Color("#FF5555") // Red
	colorInfo    = lipgloss.Color("#8BE9FD") // Cyan

	// UI colors
	colorText    = lipgloss.Color("#F8F8F2") // White
	colorTextDim = lipgloss.Color("#6272A4") // Gray
	colorBorder  = lipgloss.Color("#44475A") // Dark gray
)

// Style definitions
var (
	// Title bar
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	setStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Padding(0, 1)

	// Question prompt
	promptStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	// Answer input marker
	inputMarkStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Success message
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// Error message
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	// Warning message
	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	// Info message
	infoStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Feedback viewport
	viewportStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	// Highlighted text
	highlightStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)
)

// Helper functions for styling

// RenderTitle renders the title bar
func RenderTitle(title, setName string) string {
	left := titleStyle.Render(title)
	if setName == "" {
		return left
	}
	right := setStyle.Render("[set: " + setName + "]")
	return lipgloss.JoinHorizontal(lipgloss.Left, left, right)
}

// RenderCorrect renders a correct-answer banner
func RenderCorrect(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// RenderIncorrect renders an incorrect-answer banner
func RenderIncorrect(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// RenderWarning renders a warning message
func RenderWarning(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// RenderInfo renders an info message
func RenderInfo(msg string) string {
	return infoStyle.Render("ℹ " + msg)
}

// RenderHelp renders help text
func RenderHelp(text string) string {
	return helpStyle.Render(text)
}
