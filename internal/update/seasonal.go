package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/views"
)

func (m Model) handleSeasonalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.Seasonal.SeasonCursor > 0 {
			m.Seasonal.SeasonCursor--
			m.Seasonal.Cursor = 0
			return m, m.loadSeasonTasksCmd(m.currentSeason())
		}
	case "right", "l":
		if m.Seasonal.SeasonCursor < len(m.Seasonal.Seasons)-1 {
			m.Seasonal.SeasonCursor++
			m.Seasonal.Cursor = 0
			return m, m.loadSeasonTasksCmd(m.currentSeason())
		}
	case "up", "k":
		if m.Seasonal.Cursor > 0 {
			m.Seasonal.Cursor--
		}
		m.syncSelectedTask()
	case "down", "j":
		if m.Seasonal.Cursor < len(m.Seasonal.Tasks)-1 {
			m.Seasonal.Cursor++
		}
		m.syncSelectedTask()
	case "c":
		if row, ok := m.currentRow(); ok {
			return m, m.completeTaskCmd(row.ID, row.Name)
		}
	case "e":
		if row, ok := m.currentRow(); ok {
			return m, m.toggleEnabledCmd(row.ID, !row.Enabled)
		}
	}
	return m, nil
}

func (m Model) currentSeason() model.Season {
	if m.Seasonal.SeasonCursor < 0 || m.Seasonal.SeasonCursor >= len(m.Seasonal.Seasons) {
		return model.CurrentSeason(time.Now())
	}
	return m.Seasonal.Seasons[m.Seasonal.SeasonCursor]
}

func (m Model) renderSeasonalView() string {
	season := m.currentSeason()
	data := views.SeasonalPanelData{
		Season:     string(season),
		SeasonIcon: season.Icon(),
		IsCurrent:  season == model.CurrentSeason(time.Now()),
		SelectedID: m.SelectedTaskID,
	}
	for _, row := range m.Seasonal.Tasks {
		data.Tasks = append(data.Tasks, views.ZoneTaskData{
			ID:       row.ID,
			Name:     row.Name,
			DueLabel: row.DueLabel,
			Enabled:  row.Enabled,
		})
	}
	return views.RenderSeasonalPanel(data)
}
