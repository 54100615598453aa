package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMode = errors.New("model: invalid mode")
	ErrEmptyText   = errors.New("model: task text is required")
)

// Mode selects one of the two presentation variants of the same state.
type Mode string

const (
	ModePlain    Mode = "plain"
	ModeGamified Mode = "gamified"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModePlain, ModeGamified:
		return true
	default:
		return false
	}
}

func (m Mode) Toggle() Mode {
	if m == ModeGamified {
		return ModePlain
	}
	return ModeGamified
}

func ParseMode(raw string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, raw)
	}
	return mode, nil
}

type Task struct {
	ID        string
	Text      string
	Completed bool
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// CountCompleted returns how many tasks are done.
func CountCompleted(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
