package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasksouls/internal/audio"
	"github.com/sandeepkv93/tasksouls/internal/scheduler"
	"github.com/sandeepkv93/tasksouls/internal/store"
)

const (
	soundTimeout     = 10 * time.Second
	statusClearAfter = 2 * time.Second
)

// dispatch advances the store and turns the resulting effects into commands.
func (m *Model) dispatch(a store.Action) tea.Cmd {
	wasLit := m.Store.Bonfire.Lit
	next, effects := store.Apply(m.Store, a, m.env)
	m.Store = next
	m.clampCursor()

	// Resting replaces the bonfire without a token, so a pending pulse is stale.
	if _, ok := a.(store.RestAtBonfire); ok && m.Scheduler != nil {
		m.Scheduler.Cancel(string(store.TimerBonfire))
	}

	cmds := m.runEffects(effects)
	if !wasLit && m.Store.Bonfire.Lit && m.Store.Gamified() {
		cmds = append(cmds, m.flame.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) runEffects(effects []store.Effect) []tea.Cmd {
	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case store.PlaySound:
			if m.SoundEnabled {
				cmds = append(cmds, playSoundCmd(m.player, e.Sound))
			}
		case store.ScheduleTimer:
			if cmd := m.scheduleTimer(e); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case store.SoulsAwarded:
			m.logger.Debug("souls awarded", "amount", e.Amount, "total", e.Total)
			text := fmt.Sprintf("+%d souls", e.Amount)
			m.Status = StatusBar{Text: text, IsError: false}
			cmds = append(cmds, clearStatusCmd(text))
		case store.LevelUp:
			m.logger.Info("level up", "from", e.From, "to", e.To)
		case store.AchievementUnlocked:
			m.logger.Info("achievement unlocked", "id", e.Achievement.ID, "title", e.Achievement.Title)
			if cmd := m.notify(e.Achievement.Title, e.Achievement.Description, "achievement"); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case store.RandomFailed:
			m.logger.Warn("random source failed", "stage", e.Stage, "cause", e.Cause)
		}
	}
	return cmds
}

// scheduleTimer hands the expiry to the engine when one is running and falls
// back to a tea.Tick otherwise. Both paths feed the token back to the store.
func (m *Model) scheduleTimer(e store.ScheduleTimer) tea.Cmd {
	if m.Scheduler != nil {
		err := m.Scheduler.Schedule(scheduler.Timer{
			Key:    string(e.Kind),
			Token:  e.Token,
			FireAt: time.Now().Add(e.After),
		})
		if err == nil {
			return nil
		}
		m.logger.Warn("schedule timer failed, using tick", "kind", e.Kind, "err", err)
	}
	kind, token := e.Kind, e.Token
	return tea.Tick(e.After, func(time.Time) tea.Msg {
		return TimerExpiredMsg{Kind: kind, Token: token}
	})
}

func playSoundCmd(p audio.Player, s store.Sound) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), soundTimeout)
		defer cancel()
		return SoundFinishedMsg{Err: audio.SafePlay(ctx, p, s.Resource, s.Volume)}
	}
}

func clearStatusCmd(text string) tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return ClearStatusMsg{Text: text}
	})
}

func waitForTimerCmd(ch <-chan scheduler.Timer) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return nil
		}
		return TimerFiredMsg{Timer: t}
	}
}
