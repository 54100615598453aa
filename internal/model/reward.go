package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	SoulsPerLevel = 500
	RewardMin     = 50
	RewardMax     = 99
)

var ErrNegativeSouls = errors.New("model: souls must not be negative")

// LevelForSouls derives the level tier: floor(souls/500)+1.
func LevelForSouls(souls int) int {
	if souls < 0 {
		souls = 0
	}
	return souls/SoulsPerLevel + 1
}

type RewardState struct {
	Souls int
	Level int
}

func NewRewardState() RewardState {
	return RewardState{Souls: 0, Level: 1}
}

func (r RewardState) Validate() error {
	if r.Souls < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSouls, r.Souls)
	}
	if want := LevelForSouls(r.Souls); r.Level != want {
		return fmt.Errorf("model: level %d does not match souls %d (want %d)", r.Level, r.Souls, want)
	}
	return nil
}

type Achievement struct {
	ID          string
	Title       string
	Description string
}

func (a Achievement) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("model: achievement id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("model: achievement title is required")
	}
	return nil
}

// LevelUpTitle is the achievement title emitted when level n is reached.
func LevelUpTitle(level int) string {
	return fmt.Sprintf("Level %d Reached", level)
}

func LevelUpDescription(level int) string {
	return fmt.Sprintf("You've ascended to level %d", level)
}

// RecentAchievements projects the log for the achievements panel: at most
// limit entries, newest first. The input slice is not modified.
func RecentAchievements(log []Achievement, limit int) []Achievement {
	if limit <= 0 || len(log) == 0 {
		return nil
	}
	start := len(log) - limit
	if start < 0 {
		start = 0
	}
	out := make([]Achievement, 0, len(log)-start)
	for i := len(log) - 1; i >= start; i-- {
		out = append(out, log[i])
	}
	return out
}
