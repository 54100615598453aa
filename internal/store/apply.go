package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sandeepkv93/tasksouls/internal/model"
)

// Apply runs one action against s and returns the next state plus the side
// effects the caller must perform. s is not modified.
func Apply(s State, a Action, env Env) (State, []Effect) {
	switch typed := a.(type) {
	case AddTask:
		return addTask(s, typed.Text, env)
	case SetInput:
		s.Input = typed.Text
		return s, nil
	case ToggleTask:
		return toggleTask(s, typed.ID, env)
	case DeleteTask:
		return deleteTask(s, typed.ID), nil
	case ToggleMode:
		s.Mode = s.Mode.Toggle()
		return s, nil
	case RestAtBonfire:
		if !s.Gamified() {
			return s, nil
		}
		s.Bonfire = Bonfire{Lit: !s.Bonfire.Lit}
		return s, nil
	case UnlockAchievement:
		return unlockAchievement(s, typed.Title, typed.Description, env)
	case ExpireTimer:
		return expireTimer(s, typed), nil
	default:
		return s, nil
	}
}

func addTask(s State, text string, env Env) (State, []Effect) {
	task := model.Task{
		ID:   fmt.Sprintf("task-%d", s.TaskSeq+1),
		Text: strings.TrimSpace(text),
	}
	if err := task.Validate(); err != nil {
		return s, nil
	}
	s.TaskSeq++
	s.Tasks = append(slices.Clone(s.Tasks), task)
	s.Input = ""

	if !s.Gamified() {
		return s, nil
	}
	token := s.nextToken(TimerBonfire)
	s.Bonfire = Bonfire{Lit: true, Token: token}
	return s, []Effect{ScheduleTimer{Kind: TimerBonfire, Token: token, After: env.bonfirePulse()}}
}

func toggleTask(s State, id string, env Env) (State, []Effect) {
	idx := s.TaskIndex(id)
	if idx < 0 {
		return s, nil
	}
	wasCompleted := s.Tasks[idx].Completed
	s.Tasks = slices.Clone(s.Tasks)
	s.Tasks[idx].Completed = !wasCompleted

	if wasCompleted || !s.Gamified() {
		return s, nil
	}
	return awardCompletion(s, env)
}

func deleteTask(s State, id string) State {
	idx := s.TaskIndex(id)
	if idx < 0 {
		return s
	}
	s.Tasks = slices.Delete(slices.Clone(s.Tasks), idx, idx+1)
	return s
}

func unlockAchievement(s State, title, description string, env Env) (State, []Effect) {
	id := ""
	if env.NewID != nil {
		id = env.NewID()
	}
	if strings.TrimSpace(id) == "" {
		id = fmt.Sprintf("achievement-%d", s.AchievementSeq+1)
	}
	ach := model.Achievement{ID: id, Title: strings.TrimSpace(title), Description: description}
	if err := ach.Validate(); err != nil {
		return s, nil
	}
	s.AchievementSeq++
	s.Achievements = append(slices.Clone(s.Achievements), ach)

	token := s.nextToken(TimerNotification)
	s.Active = &Notification{Achievement: ach, Token: token}
	return s, []Effect{
		AchievementUnlocked{Achievement: ach},
		ScheduleTimer{Kind: TimerNotification, Token: token, After: env.notificationTTL()},
	}
}

func expireTimer(s State, ev ExpireTimer) State {
	switch ev.Kind {
	case TimerNotification:
		if s.Active != nil && s.Active.Token == ev.Token {
			s.Active = nil
		}
	case TimerBonfire:
		if s.Bonfire.Lit && s.Bonfire.Token != "" && s.Bonfire.Token == ev.Token {
			s.Bonfire = Bonfire{}
		}
	}
	return s
}

func (s *State) nextToken(kind TimerKind) string {
	s.TimerSeq++
	return fmt.Sprintf("%s-%d", kind, s.TimerSeq)
}
