package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorStatusBg = "62"
	ColorStatusFg = "230"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	ActiveInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive)).
				Padding(0, 1)

	InactiveInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive)).
				Padding(0, 1)

	// Row styles
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	CompletedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive)).
			Strikethrough(true)

	CheckStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim)).
			Italic(true).
			PaddingLeft(2)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			PaddingLeft(1)

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorDanger)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1)

	ConfirmDangerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger)).
				Bold(true)

	ConfirmSafeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess)).
				Bold(true)

	HelpPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1)
)
