package store

import (
	"time"

	"github.com/sandeepkv93/tasksouls/internal/model"
)

type Action interface {
	isAction()
}

type AddTask struct {
	Text string
}

type SetInput struct {
	Text string
}

type ToggleTask struct {
	ID string
}

type DeleteTask struct {
	ID string
}

type ToggleMode struct{}

type RestAtBonfire struct{}

type UnlockAchievement struct {
	Title       string
	Description string
}

// ExpireTimer is fed back when a scheduled timer fires. It only has an effect
// when Token still matches the pending timer of that kind.
type ExpireTimer struct {
	Kind  TimerKind
	Token string
}

func (AddTask) isAction()           {}
func (SetInput) isAction()          {}
func (ToggleTask) isAction()        {}
func (DeleteTask) isAction()        {}
func (ToggleMode) isAction()        {}
func (RestAtBonfire) isAction()     {}
func (UnlockAchievement) isAction() {}
func (ExpireTimer) isAction()       {}

type Effect interface {
	isEffect()
}

type PlaySound struct {
	Sound Sound
}

type ScheduleTimer struct {
	Kind  TimerKind
	Token string
	After time.Duration
}

type SoulsAwarded struct {
	Amount int
	Total  int
}

type LevelUp struct {
	From int
	To   int
}

type AchievementUnlocked struct {
	Achievement model.Achievement
}

// RandomFailed reports a random source that panicked or returned an
// out-of-range value. The transition still completes.
type RandomFailed struct {
	Stage string
	Cause string
}

func (PlaySound) isEffect()           {}
func (ScheduleTimer) isEffect()       {}
func (SoulsAwarded) isEffect()        {}
func (LevelUp) isEffect()             {}
func (AchievementUnlocked) isEffect() {}
func (RandomFailed) isEffect()        {}
