package model

import (
	"errors"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{ID: "task-1", Text: "Buy milk"}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBlankText(t *testing.T) {
	task := Task{ID: "task-1", Text: "   "}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got: %v", err)
	}

	task = Task{Text: "no id"}
	err = task.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "model: task id is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestModeToggleAndParse(t *testing.T) {
	if ModePlain.Toggle() != ModeGamified || ModeGamified.Toggle() != ModePlain {
		t.Fatal("expected toggle to flip between plain and gamified")
	}
	mode, err := ParseMode(" Gamified ")
	if err != nil || mode != ModeGamified {
		t.Fatalf("unexpected parse result: %q %v", mode, err)
	}
	if _, err := ParseMode("dark"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestCountCompleted(t *testing.T) {
	tasks := []Task{
		{ID: "a", Text: "a", Completed: true},
		{ID: "b", Text: "b"},
		{ID: "c", Text: "c", Completed: true},
	}
	if got := CountCompleted(tasks); got != 2 {
		t.Fatalf("expected 2 completed, got %d", got)
	}
}
