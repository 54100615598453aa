package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasksouls/internal/commands"
	"github.com/sandeepkv93/tasksouls/internal/store"
	"github.com/sandeepkv93/tasksouls/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
	} else {
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
	}
	m.Palette.Input = m.commandInput.Value()
	return m, nil
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.logger.Debug("palette command", "raw", raw)

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m, nil
	}

	var cmds []tea.Cmd
	m.Status = StatusBar{}
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			cmds = append(cmds, m.dispatch(store.AddTask{Text: a.Text}))
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Text)}, nil
		},
		Toggle: func(t commands.TargetArgs) (commands.Result, error) {
			id, ok := m.taskAt(t.Position)
			if !ok {
				return commands.Result{}, noTaskError(t.Position)
			}
			cmds = append(cmds, m.dispatch(store.ToggleTask{ID: id}))
			return commands.Result{Message: fmt.Sprintf("toggled task %d", t.Position)}, nil
		},
		Delete: func(t commands.TargetArgs) (commands.Result, error) {
			id, ok := m.taskAt(t.Position)
			if !ok {
				return commands.Result{}, noTaskError(t.Position)
			}
			cmds = append(cmds, m.dispatch(store.DeleteTask{ID: id}))
			return commands.Result{Message: fmt.Sprintf("deleted task %d", t.Position)}, nil
		},
		Mode: func() (commands.Result, error) {
			cmds = append(cmds, m.dispatch(store.ToggleMode{}))
			return commands.Result{Message: strings.ToLower(views.ModeLabel(m.Store.Gamified()))}, nil
		},
		Rest: func() (commands.Result, error) {
			if !m.Store.Gamified() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "the bonfire only burns in gamified mode"}
			}
			cmds = append(cmds, m.dispatch(store.RestAtBonfire{}))
			return commands.Result{Message: "rested at bonfire"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else if m.Status.Text == "" {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.closePalette()
	return m, tea.Batch(cmds...)
}

func noTaskError(position int) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task at position %d", position)}
}
