package views

import (
	"strings"
	"testing"
)

func TestRenderTaskPanelEmptyStates(t *testing.T) {
	plain := RenderTaskPanel(TaskPanelData{InputView: "add> "})
	if !strings.Contains(plain, "No tasks yet") {
		t.Fatalf("missing plain empty state: %q", plain)
	}
	dark := RenderTaskPanel(TaskPanelData{Gamified: true, InputView: "quest> "})
	if !strings.Contains(dark, "No quests yet") {
		t.Fatalf("missing gamified empty state: %q", dark)
	}
}

func TestRenderTaskPanelMarksCursorAndCompletion(t *testing.T) {
	out := RenderTaskPanel(TaskPanelData{
		Gamified:  true,
		ListFocus: true,
		Items: []TaskItemData{
			{Position: 1, Text: "slay", Completed: true},
			{Position: 2, Text: "rest", Selected: true},
		},
	})
	if !strings.Contains(out, "  1. [💀] slay") {
		t.Fatalf("missing completed marker: %q", out)
	}
	if !strings.Contains(out, "> 2. [ ] rest") {
		t.Fatalf("missing cursor marker: %q", out)
	}
}

func TestRenderAchievementsPanelAndToast(t *testing.T) {
	if RenderAchievementsPanel(nil) != "" {
		t.Fatal("expected empty panel for no achievements")
	}
	out := RenderAchievementsPanel([]AchievementData{{Title: "Praise the Sun"}, {Title: "Level 2 Reached"}})
	if !strings.Contains(out, "- Praise the Sun\n- Level 2 Reached") {
		t.Fatalf("unexpected panel: %q", out)
	}
	if RenderToast(nil) != "" {
		t.Fatal("expected empty toast")
	}
	toast := RenderToast(&AchievementData{Title: "Undead Warrior", Description: "Another task vanquished"})
	if !strings.Contains(toast, "Undead Warrior") || !strings.Contains(toast, "Another task vanquished") {
		t.Fatalf("unexpected toast: %q", toast)
	}
}

func TestRenderProgressLabels(t *testing.T) {
	if RenderProgress(ProgressData{}) != "" {
		t.Fatal("expected no progress with zero tasks")
	}
	if out := RenderProgress(ProgressData{Completed: 1, Total: 3}); !strings.Contains(out, "1 of 3 complete") {
		t.Fatalf("unexpected plain progress: %q", out)
	}
	if out := RenderProgress(ProgressData{Gamified: true, Completed: 2, Total: 3}); !strings.Contains(out, "Conquered: 2 / 3") {
		t.Fatalf("unexpected gamified progress: %q", out)
	}
}

func TestRenderAppIncludesSections(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "Tasks",
		Body:       "body-text",
		Sidebar:    "side-text",
		Toast:      "toast-text",
		StatusLine: "status: ok",
		Footer:     "footer-text",
	})
	for _, want := range []string{"Tasks", "body-text", "side-text", "toast-text", "status: ok", "footer-text"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
