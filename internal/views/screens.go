package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	Position  int
	Text      string
	Completed bool
	Selected  bool
}

type TaskPanelData struct {
	Gamified  bool
	InputView string
	ListFocus bool
	Items     []TaskItemData
}

type StatsData struct {
	Souls     int
	Level     int
	Completed int
	Total     int
}

type ProgressData struct {
	Gamified     bool
	Completed    int
	Total        int
	ProgressView string
}

type AchievementData struct {
	Title       string
	Description string
}

type BonfireData struct {
	Lit       bool
	FlameView string
}

type HelpPanelData struct {
	Gamified bool
	Bindings []string
	HelpView string
}

func Title(gamified bool) string {
	if gamified {
		return "⚔️ Task Souls"
	}
	return "Tasks"
}

func ModeLabel(gamified bool) string {
	if gamified {
		return "Dark Souls Mode"
	}
	return "Minimalist Mode"
}

func FooterText(gamified bool) string {
	if gamified {
		return `"Don't you dare go Hollow" - Complete your quests`
	}
	return "Simple. Clean. Productive."
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(data.InputView + "\n\n")
	if len(data.Items) == 0 {
		if data.Gamified {
			b.WriteString("No quests yet. Begin your journey...")
		} else {
			b.WriteString("No tasks yet. Add one to get started.")
		}
		return b.String()
	}
	for _, item := range data.Items {
		cursor := " "
		if data.ListFocus && item.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s %s\n", cursor, item.Position, checkbox(item, data.Gamified), item.Text))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func checkbox(item TaskItemData, gamified bool) string {
	switch {
	case item.Completed && gamified:
		return "[💀]"
	case item.Completed:
		return "[x]"
	default:
		return "[ ]"
	}
}

func RenderStatsBar(data StatsData) string {
	return fmt.Sprintf("Souls: %d | Level: %d | Tasks: %d/%d", data.Souls, data.Level, data.Completed, data.Total)
}

func RenderProgress(data ProgressData) string {
	if data.Total == 0 {
		return ""
	}
	label := fmt.Sprintf("%d of %d complete", data.Completed, data.Total)
	if data.Gamified {
		label = fmt.Sprintf("Conquered: %d / %d", data.Completed, data.Total)
	}
	return data.ProgressView + "\n" + label
}

func RenderToast(a *AchievementData) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("🏆 %s\n%s", a.Title, a.Description)
}

func RenderAchievementsPanel(items []AchievementData) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("🏆 Achievements\n")
	for _, a := range items {
		b.WriteString("- " + a.Title + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderBonfire(data BonfireData) string {
	if !data.Lit {
		return "⚱️ bonfire (b to rest)"
	}
	return fmt.Sprintf("%s 🔥 Bonfire Lit", data.FlameView)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	md := "### keys\n\n" + strings.Join(data.Bindings, "\n") + "\n"
	return fmt.Sprintf("help:\n%s\n%s", RenderMarkdown(md, data.Gamified), data.HelpView)
}
