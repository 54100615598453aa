// Package store holds the task list, reward and achievement state and the
// pure transitions that drive it. Transitions never perform I/O; they return
// effect descriptors that the caller executes.
package store

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/tasksouls/internal/model"
)

const (
	DefaultNotificationTTL = 3000 * time.Millisecond
	DefaultBonfirePulse    = 500 * time.Millisecond
	AchievementChance      = 0.2
	RecentAchievementLimit = 3
)

type TimerKind string

const (
	TimerNotification TimerKind = "notification"
	TimerBonfire      TimerKind = "bonfire"
)

// RandomSource is satisfied by *rand.Rand from math/rand/v2.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

type Sound struct {
	Resource string
	Volume   float64
}

var DefaultSound = Sound{Resource: "success.mp3", Volume: 0.5}

type Env struct {
	Rand            RandomSource
	NewID           func() string
	NotificationTTL time.Duration
	BonfirePulse    time.Duration
	Sound           Sound
}

func DefaultEnv(seed uint64) Env {
	return Env{
		Rand:            rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		NewID:           uuid.NewString,
		NotificationTTL: DefaultNotificationTTL,
		BonfirePulse:    DefaultBonfirePulse,
		Sound:           DefaultSound,
	}
}

func (e Env) notificationTTL() time.Duration {
	if e.NotificationTTL <= 0 {
		return DefaultNotificationTTL
	}
	return e.NotificationTTL
}

func (e Env) bonfirePulse() time.Duration {
	if e.BonfirePulse <= 0 {
		return DefaultBonfirePulse
	}
	return e.BonfirePulse
}

type Notification struct {
	Achievement model.Achievement
	Token       string
}

type Bonfire struct {
	Lit   bool
	Token string
}

type State struct {
	Tasks        []model.Task
	Input        string
	Reward       model.RewardState
	Achievements []model.Achievement
	Active       *Notification
	Mode         model.Mode
	Bonfire      Bonfire

	TaskSeq        int
	AchievementSeq int
	TimerSeq       int
}

func New(mode model.Mode) State {
	if !mode.IsValid() {
		mode = model.ModePlain
	}
	return State{
		Reward: model.NewRewardState(),
		Mode:   mode,
	}
}

func (s State) Gamified() bool {
	return s.Mode == model.ModeGamified
}

func (s State) TaskIndex(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s State) RecentAchievements() []model.Achievement {
	return model.RecentAchievements(s.Achievements, RecentAchievementLimit)
}

func (s State) CompletedCount() int {
	return model.CountCompleted(s.Tasks)
}
