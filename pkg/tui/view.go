package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/todo-terminal/pkg/models"
)

const (
	uncheckedBox = "[ ]"
	checkedBox   = "[x]"
	rowIndent    = 6 // cursor + box + spaces
)

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(renderHeader(a.width, "Todo App", a.summary()))
	b.WriteString("\n")
	b.WriteString(a.renderAddInput())
	b.WriteString("\n")
	b.WriteString(a.renderItems())

	if a.confirm.Active() {
		b.WriteString("\n\n")
		b.WriteString(a.confirm.View(a.width))
	}

	content := b.String()

	if a.statusMsg != "" {
		style := StatusStyle
		if a.statusErr {
			style = ErrorStyle
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", style.Render(a.statusMsg))
	}

	if a.settings.UI.ShowHelp {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", HelpPaddingStyle.Render(a.helpView()))
	}

	return content
}

func (a *App) renderAddInput() string {
	style := InactiveInputStyle
	if a.focus == focusAdd {
		style = ActiveInputStyle
	}
	width := a.width - 4
	if width < 14 {
		width = 14
	}
	return style.Width(width).Render(a.addInput.View())
}

func (a *App) renderItems() string {
	items := a.session.List().Items()
	if len(items) == 0 {
		return EmptyStyle.Render("No todos yet. Press 'a' to add one.")
	}

	editIdx, editing := a.session.List().Editing()

	rows := make([]string, 0, len(items))
	for i, item := range items {
		if editing && i == editIdx {
			rows = append(rows, "  "+a.editInput.View())
			continue
		}
		rows = append(rows, a.renderRow(item, i == a.cursor && a.focus == focusList))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderRow(item models.Todo, selected bool) string {
	cursor := "  "
	if selected {
		cursor = CursorStyle.Render("› ")
	}

	box := uncheckedBox
	if item.Completed {
		box = CheckStyle.Render(checkedBox)
	}

	textStyle := NormalStyle
	if item.Completed {
		textStyle = CompletedStyle
	}
	if selected {
		textStyle = textStyle.Inherit(SelectedStyle)
	}

	lines := strings.Split(wrapText(item.Text, a.wrapWidth()), "\n")
	for i, line := range lines {
		lines[i] = textStyle.Render(line)
		if i > 0 {
			lines[i] = strings.Repeat(" ", rowIndent) + lines[i]
		}
	}

	return cursor + box + " " + strings.Join(lines, "\n")
}

func (a *App) summary() string {
	list := a.session.List()
	total := list.Len()
	noun := "todos"
	if total == 1 {
		noun = "todo"
	}
	return fmt.Sprintf("%d %s, %d done", total, noun, list.Completed())
}

func (a *App) helpView() string {
	if a.focus == focusList {
		return a.help.View(listHelp{keys: a.keys})
	}
	return a.help.View(inputHelp{keys: a.keys})
}

func (a *App) wrapWidth() int {
	if a.settings.UI.WrapWidth > 0 {
		return a.settings.UI.WrapWidth
	}
	w := a.width - rowIndent - 2
	if w < 10 {
		w = 10
	}
	return w
}

// wrapText wraps on word boundaries and hard-breaks words longer than width
func wrapText(text string, width int) string {
	wrapped := wordwrap.String(text, width)
	lines := strings.Split(wrapped, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		for lipgloss.Width(line) > width {
			head := truncate.String(line, uint(width))
			if head == "" {
				// a single rune wider than the limit
				head = string([]rune(line)[:1])
			}
			out = append(out, head)
			line = line[len(head):]
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
