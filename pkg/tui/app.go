package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pluqqy/todo-terminal/pkg/models"
	"github.com/pluqqy/todo-terminal/pkg/todos"
)

const statusTimeout = 3 * time.Second

type focusState int

const (
	focusList focusState = iota
	focusAdd
	focusEdit
)

// App is the root Bubble Tea model of the todo screen
type App struct {
	session  *todos.Session
	settings *models.Settings
	logger   *log.Logger
	keys     KeyMap

	addInput  textinput.Model
	editInput textinput.Model
	help      help.Model
	confirm   *ConfirmationModel

	focus     focusState
	cursor    int
	width     int
	height    int
	statusMsg string
	statusErr bool
	statusSeq int

	copyText func(string) error
}

// Messages for communication inside the app
type StatusMsg string

type ErrorMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}

// NewApp creates the todo screen for an open session
func NewApp(session *todos.Session, settings *models.Settings, logger *log.Logger) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	addInput := textinput.New()
	addInput.Placeholder = "Enter a new todo..."
	addInput.Prompt = "+ "
	addInput.SetValue(session.List().Input())

	editInput := textinput.New()
	editInput.Prompt = "✎ "

	a := &App{
		session:   session,
		settings:  settings,
		logger:    logger,
		keys:      DefaultKeyMap,
		addInput:  addInput,
		editInput: editInput,
		help:      help.New(),
		confirm:   NewConfirmation(),
		copyText:  clipboard.WriteAll,
	}

	if session.List().Len() == 0 {
		a.focus = focusAdd
		a.addInput.Focus()
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.focus == focusAdd {
		return textinput.Blink
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case StatusMsg:
		return a, a.setStatus(string(msg), false)

	case ErrorMsg:
		a.logger.Error("todo operation failed", "err", msg.err)
		return a, a.setStatus("Error: "+msg.err.Error(), true)

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
			a.statusErr = false
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Exit) {
			return a, tea.Quit
		}
		if a.confirm.Active() {
			return a, a.confirm.Update(msg)
		}

		switch a.focus {
		case focusAdd:
			return a, a.handleAddInput(msg)
		case focusEdit:
			return a, a.handleEditInput(msg)
		default:
			return a, a.handleListKeys(msg)
		}
	}

	// Anything else (cursor blink) goes to the focused input
	var cmd tea.Cmd
	switch a.focus {
	case focusAdd:
		a.addInput, cmd = a.addInput.Update(msg)
	case focusEdit:
		a.editInput, cmd = a.editInput.Update(msg)
	}
	return a, cmd
}

// SetSize updates the layout dimensions
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	inputWidth := width - 8
	if inputWidth < 10 {
		inputWidth = 10
	}
	a.addInput.Width = inputWidth
	a.editInput.Width = inputWidth
	a.help.Width = width
}

func (a *App) handleAddInput(msg tea.KeyMsg) tea.Cmd {
	list := a.session.List()

	switch {
	case key.Matches(msg, a.keys.Submit):
		changed, err := a.session.Add(a.addInput.Value())
		if changed {
			a.addInput.SetValue(list.Input())
			a.cursor = list.Len() - 1
		}
		if err != nil {
			return errorCmd(err)
		}
		if !changed {
			return nil
		}
		a.logger.Debug("added todo", "count", list.Len())
		return a.setStatus("Added todo", false)

	case key.Matches(msg, a.keys.Cancel):
		// the draft stays in the add buffer for later
		a.addInput.Blur()
		a.focus = focusList
		return nil
	}

	var cmd tea.Cmd
	a.addInput, cmd = a.addInput.Update(msg)
	list.SetInput(a.addInput.Value())
	return cmd
}

func (a *App) handleEditInput(msg tea.KeyMsg) tea.Cmd {
	list := a.session.List()
	idx, editing := list.Editing()
	if !editing {
		a.endEdit()
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Submit):
		err := a.session.CommitEdit(idx)
		a.endEdit()
		if err != nil {
			return errorCmd(err)
		}
		return a.setStatus("Updated todo", false)

	case key.Matches(msg, a.keys.Cancel):
		a.session.CancelEdit()
		a.endEdit()
		return nil
	}

	var cmd tea.Cmd
	a.editInput, cmd = a.editInput.Update(msg)
	list.SetEditText(a.editInput.Value())
	return cmd
}

func (a *App) handleListKeys(msg tea.KeyMsg) tea.Cmd {
	list := a.session.List()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Down):
		if a.cursor < list.Len()-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Top):
		a.cursor = 0

	case key.Matches(msg, a.keys.Bottom):
		if list.Len() > 0 {
			a.cursor = list.Len() - 1
		}

	case key.Matches(msg, a.keys.Add):
		a.focus = focusAdd
		return a.addInput.Focus()

	case key.Matches(msg, a.keys.Edit):
		if list.Len() == 0 {
			return nil
		}
		if err := a.session.BeginEdit(a.cursor); err != nil {
			return errorCmd(err)
		}
		a.editInput.SetValue(list.EditText())
		a.editInput.CursorEnd()
		a.focus = focusEdit
		return a.editInput.Focus()

	case key.Matches(msg, a.keys.Toggle):
		if list.Len() == 0 {
			return nil
		}
		if err := a.session.Toggle(a.cursor); err != nil {
			return errorCmd(err)
		}

	case key.Matches(msg, a.keys.Delete):
		return a.requestDelete()

	case key.Matches(msg, a.keys.Copy):
		return a.copySelected()

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}

	return nil
}

// requestDelete deletes the selected todo, asking first when configured to.
// The confirmation holds on to the item id so it removes the right entry.
func (a *App) requestDelete() tea.Cmd {
	list := a.session.List()
	item, err := list.Item(a.cursor)
	if err != nil {
		return nil
	}

	if !a.settings.UI.ConfirmDelete {
		return a.deleteByID(item.ID)
	}

	a.confirm.Show(ConfirmationConfig{
		Message:     fmt.Sprintf("Delete %q?", truncateText(item.Text, 40)),
		Destructive: true,
	}, func() tea.Cmd {
		return a.deleteByID(item.ID)
	}, nil)
	return nil
}

func (a *App) deleteByID(id string) tea.Cmd {
	list := a.session.List()
	idx := list.IndexOf(id)
	if idx < 0 {
		return nil
	}

	err := a.session.Delete(idx)
	if a.cursor >= list.Len() && a.cursor > 0 {
		a.cursor = list.Len() - 1
	}
	if err != nil {
		return errorCmd(err)
	}
	a.logger.Debug("deleted todo", "count", list.Len())
	return a.setStatus("Deleted todo", false)
}

func (a *App) copySelected() tea.Cmd {
	item, err := a.session.List().Item(a.cursor)
	if err != nil {
		return nil
	}
	if err := a.copyText(item.Text); err != nil {
		return errorCmd(fmt.Errorf("failed to copy to clipboard: %w", err))
	}
	return a.setStatus("Copied to clipboard", false)
}

func (a *App) endEdit() {
	a.editInput.Blur()
	a.editInput.SetValue("")
	a.focus = focusList
}

func (a *App) setStatus(msg string, isErr bool) tea.Cmd {
	a.statusSeq++
	a.statusMsg = msg
	a.statusErr = isErr
	seq := a.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{err: err}
	}
}
