package update

import (
	"github.com/sandeepkv93/tasksouls/internal/views"
)

func (m Model) renderTaskPanel() string {
	items := make([]views.TaskItemData, 0, len(m.Store.Tasks))
	listFocus := m.Focus == FocusList && !m.Palette.Active
	for i, t := range m.Store.Tasks {
		items = append(items, views.TaskItemData{
			Position:  i + 1,
			Text:      t.Text,
			Completed: t.Completed,
			Selected:  listFocus && i == m.Cursor,
		})
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		Gamified:  m.Store.Gamified(),
		InputView: m.taskInput.View(),
		ListFocus: listFocus,
		Items:     items,
	})
}

func (m Model) renderProgress() string {
	total := len(m.Store.Tasks)
	completed := m.Store.CompletedCount()
	ratio := 0.0
	if total > 0 {
		ratio = float64(completed) / float64(total)
	}
	return views.RenderProgress(views.ProgressData{
		Gamified:     m.Store.Gamified(),
		Completed:    completed,
		Total:        total,
		ProgressView: m.progressBar.ViewAs(ratio),
	})
}

func (m Model) renderAchievementsPanel() string {
	recent := m.Store.RecentAchievements()
	items := make([]views.AchievementData, 0, len(recent))
	for _, a := range recent {
		items = append(items, views.AchievementData{Title: a.Title, Description: a.Description})
	}
	return views.RenderAchievementsPanel(items)
}

// renderToast shows the active achievement until its notification timer
// expires.
func (m Model) renderToast() string {
	if m.Store.Active == nil {
		return ""
	}
	a := m.Store.Active.Achievement
	return views.RenderToast(&views.AchievementData{Title: a.Title, Description: a.Description})
}
