package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColorConstants(t *testing.T) {
	tests := []struct {
		name  string
		color string
		value string
	}{
		{"ColorActive", ColorActive, "170"},
		{"ColorInactive", ColorInactive, "240"},
		{"ColorSuccess", ColorSuccess, "28"},
		{"ColorDanger", ColorDanger, "196"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.color {
				t.Errorf("expected %s, got %s", tt.value, tt.color)
			}
		})
	}
}

func TestStaticStyles(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"TitleStyle", TitleStyle},
		{"ActiveInputStyle", ActiveInputStyle},
		{"InactiveInputStyle", InactiveInputStyle},
		{"SelectedStyle", SelectedStyle},
		{"NormalStyle", NormalStyle},
		{"CompletedStyle", CompletedStyle},
		{"CheckStyle", CheckStyle},
		{"CursorStyle", CursorStyle},
		{"EmptyStyle", EmptyStyle},
		{"SummaryStyle", SummaryStyle},
		{"StatusStyle", StatusStyle},
		{"ErrorStyle", ErrorStyle},
		{"ConfirmDangerStyle", ConfirmDangerStyle},
		{"ConfirmSafeStyle", ConfirmSafeStyle},
		{"HelpPaddingStyle", HelpPaddingStyle},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.style.Render("test")
			if !strings.Contains(output, "test") {
				t.Errorf("Style %s dropped its content: %q", tt.name, output)
			}
		})
	}
}

func TestCompletedStyleStrikesThrough(t *testing.T) {
	if !CompletedStyle.GetStrikethrough() {
		t.Error("completed todos should be struck through")
	}
	if SelectedStyle.GetStrikethrough() {
		t.Error("selection alone should not strike through")
	}
}
