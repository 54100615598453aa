package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasksouls/internal/store"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.ToggleMode:
		cmd := m.toggleMode()
		return m, cmd
	}

	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.Focus == FocusList {
		return m.handleListKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := m.dispatch(store.AddTask{Text: m.taskInput.Value()})
		return m, cmd
	case "esc", "tab":
		m.Focus = FocusList
		m.Status = StatusBar{Text: "list mode", IsError: false}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.taskInput.SetValue(m.taskInput.Value() + string(msg.Runes))
	} else {
		var cmd tea.Cmd
		m.taskInput, cmd = m.taskInput.Update(msg)
		_ = cmd
	}
	if m.taskInput.Value() != m.Store.Input {
		cmd := m.dispatch(store.SetInput{Text: m.taskInput.Value()})
		return m, cmd
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Store.Tasks)-1 {
			m.Cursor++
		}
	case " ", "x", "enter":
		if id, ok := m.selectedTaskID(); ok {
			cmd := m.dispatch(store.ToggleTask{ID: id})
			return m, cmd
		}
	case "d", "delete", "backspace":
		if id, ok := m.selectedTaskID(); ok {
			cmd := m.dispatch(store.DeleteTask{ID: id})
			return m, cmd
		}
	case "m":
		cmd := m.toggleMode()
		return m, cmd
	case "b":
		if !m.Store.Gamified() {
			return m, nil
		}
		cmd := m.dispatch(store.RestAtBonfire{})
		if m.Store.Bonfire.Lit {
			m.Status = StatusBar{Text: "bonfire lit", IsError: false}
		} else {
			m.Status = StatusBar{Text: "rested at bonfire", IsError: false}
		}
		return m, cmd
	case "i", "tab", "esc":
		m.Focus = FocusInput
		m.Status = StatusBar{Text: "input mode", IsError: false}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown", IsError: false}
		} else {
			m.Status = StatusBar{Text: "help hidden", IsError: false}
		}
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}
