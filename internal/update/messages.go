package update

import (
	"github.com/sandeepkv93/tasksouls/internal/scheduler"
	"github.com/sandeepkv93/tasksouls/internal/store"
)

// ClearStatusMsg clears the status bar if it still shows Text. An empty Text
// clears unconditionally.
type ClearStatusMsg struct {
	Text string
}

type AppErrorMsg struct {
	Err error
}

type AddTaskMsg struct {
	Text string
}

type ToggleTaskMsg struct {
	ID string
}

// TimerFiredMsg carries an expiry delivered by the scheduler engine.
type TimerFiredMsg struct {
	Timer scheduler.Timer
}

// TimerExpiredMsg carries an expiry delivered by a tea.Tick fallback.
type TimerExpiredMsg struct {
	Kind  store.TimerKind
	Token string
}

type SoundFinishedMsg struct {
	Err error
}
