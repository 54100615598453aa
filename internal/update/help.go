package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/tasksouls/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.focusBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Gamified: m.Store.Gamified(),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.ToggleMode, Action: "toggle mode"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) focusBindings() []KeyBinding {
	if m.Focus == FocusInput {
		return []KeyBinding{
			{Key: "enter", Action: "add task"},
			{Key: "tab/esc", Action: "switch to list"},
		}
	}
	out := []KeyBinding{
		{Key: "j/k", Action: "move cursor"},
		{Key: "space/x", Action: "toggle completion"},
		{Key: "d", Action: "delete task"},
		{Key: "m", Action: "toggle mode"},
		{Key: "i/tab", Action: "switch to input"},
	}
	if m.Store.Gamified() {
		out = append(out, KeyBinding{Key: "b", Action: "rest at bonfire"})
	}
	return out
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.globalBindings(), m.focusBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
