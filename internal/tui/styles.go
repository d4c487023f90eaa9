package tui

import "github.com/charmbracelet/lipgloss"

var (
	functionColor = lipgloss.Color("#A5A5A5")
	operatorColor = lipgloss.Color("#FF9E0B")
	digitColor    = lipgloss.Color("#333333")
	white         = lipgloss.Color("#FFFFFF")
	black         = lipgloss.Color("#000000")

	displayStyle = lipgloss.NewStyle().
			Foreground(white).
			Bold(true).
			Height(DisplayHeight).
			Align(lipgloss.Right, lipgloss.Bottom)

	keyStyle = lipgloss.NewStyle().
			Height(ButtonHeight).
			Align(lipgloss.Center, lipgloss.Center)

	functionKeyStyle = keyStyle.Background(functionColor).Foreground(black)
	operatorKeyStyle = keyStyle.Background(operatorColor).Foreground(white)
	digitKeyStyle    = keyStyle.Background(digitColor).Foreground(white)

	// An operator waiting for its second operand is drawn inverted, like the
	// original keypad.
	pendingKeyStyle = keyStyle.Background(white).Foreground(operatorColor)

	appStyle = lipgloss.NewStyle().Padding(DefaultPaddingY, DefaultPaddingX)
)
