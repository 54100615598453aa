package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasksouls/internal/store"
	"github.com/sandeepkv93/tasksouls/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForTimerCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		width := typed.Width - 20
		if width > 60 {
			width = 60
		}
		if width > 10 {
			m.progressBar.Width = width
		}
		return m, nil
	case spinner.TickMsg:
		if !m.Store.Bonfire.Lit {
			return m, nil
		}
		var cmd tea.Cmd
		m.flame, cmd = m.flame.Update(typed)
		return m, cmd
	case ClearStatusMsg:
		if typed.Text == "" || typed.Text == m.Status.Text {
			m.Status = StatusBar{}
		}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "err", typed.Err)
		}
		return m, nil
	case AddTaskMsg:
		cmd := m.dispatch(store.AddTask{Text: typed.Text})
		return m, cmd
	case ToggleTaskMsg:
		cmd := m.dispatch(store.ToggleTask{ID: typed.ID})
		return m, cmd
	case TimerFiredMsg:
		cmd := m.dispatch(store.ExpireTimer{Kind: store.TimerKind(typed.Timer.Key), Token: typed.Timer.Token})
		if m.Scheduler != nil {
			return m, tea.Batch(cmd, waitForTimerCmd(m.Scheduler.C()))
		}
		return m, cmd
	case TimerExpiredMsg:
		cmd := m.dispatch(store.ExpireTimer{Kind: typed.Kind, Token: typed.Token})
		return m, cmd
	case SoundFinishedMsg:
		if typed.Err != nil {
			m.logger.Warn("success sound failed", "err", typed.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) toggleMode() tea.Cmd {
	cmd := m.dispatch(store.ToggleMode{})
	m.Status = StatusBar{Text: strings.ToLower(views.ModeLabel(m.Store.Gamified())), IsError: false}
	m.logger.Debug("mode toggled", "mode", m.Store.Mode)
	return cmd
}

func (m Model) View() string {
	gamified := m.Store.Gamified()
	s := m.Store

	body := m.renderTaskPanel()
	if progress := m.renderProgress(); progress != "" {
		body += "\n\n" + progress
	}
	if gamified {
		body += "\n\n" + views.RenderBonfire(views.BonfireData{Lit: s.Bonfire.Lit, FlameView: m.flame.View()})
	}

	sidebar := make([]string, 0, 3)
	if gamified {
		if panel := m.renderAchievementsPanel(); panel != "" {
			sidebar = append(sidebar, panel)
		}
	}
	if palette := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()); palette != "" {
		sidebar = append(sidebar, palette)
	}
	if m.HelpVisible {
		sidebar = append(sidebar, m.renderHelpView())
	}

	stats := ""
	toast := ""
	if gamified {
		stats = views.RenderStatsBar(views.StatsData{
			Souls:     s.Reward.Souls,
			Level:     s.Reward.Level,
			Completed: s.CompletedCount(),
			Total:     len(s.Tasks),
		})
		toast = m.renderToast()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Gamified:   gamified,
		Header:     fmt.Sprintf("%s | %s", views.Title(gamified), views.ModeLabel(gamified)),
		Stats:      stats,
		Body:       body,
		Sidebar:    strings.Join(sidebar, "\n\n"),
		StatusLine: status,
		IsError:    m.Status.IsError,
		Toast:      toast,
		Footer: fmt.Sprintf("%s\nkeys: enter add | tab list | %s mode | %s cmd | %s help | %s quit",
			views.FooterText(gamified), m.Keys.ToggleMode, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
