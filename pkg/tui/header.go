package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader puts the title on the left and the summary on the right of
// a single padded row
func renderHeader(width int, title, summary string) string {
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	titleRendered := TitleStyle.Render(title)
	summaryRendered := SummaryStyle.Render(summary)

	contentWidth := width - 2 // -2 for left and right padding
	gap := contentWidth - lipgloss.Width(titleRendered) - lipgloss.Width(summaryRendered)
	if gap < 1 {
		// too narrow, stack instead
		return headerPadding.Render(lipgloss.JoinVertical(lipgloss.Left, titleRendered, summaryRendered))
	}

	row := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		summaryRendered,
	)
	return headerPadding.Render(row)
}
