package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/views"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Dashboard.Cursor > 0 {
			m.Dashboard.Cursor--
		}
		m.syncSelectedTask()
	case "down", "j":
		if m.Dashboard.Cursor < len(m.Dashboard.Items)-1 {
			m.Dashboard.Cursor++
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
	case "n":
		m.openForm()
	case "d":
		if row, ok := m.currentRow(); ok {
			if !row.Custom {
				m.Status = StatusBar{Text: "only custom tasks can be deleted", IsError: true}
				return m, nil
			}
			return m, m.deleteTaskCmd(row.ID, row.Name)
		}
	}
	return m, nil
}

func (m Model) renderDashboardView() string {
	items := make([]views.DashboardItemData, 0, len(m.Dashboard.Items))
	for _, row := range m.Dashboard.Items {
		items = append(items, views.DashboardItemData{
			ID:        row.ID,
			Name:      row.Name,
			Bucket:    row.Bucket,
			DueLabel:  row.DueLabel,
			Zone:      row.ZoneName,
			Frequency: model.Frequency(row.Frequency).ShortLabel(),
			Enabled:   row.Enabled,
		})
	}
	return views.RenderDashboardPanel(views.DashboardPanelData{
		ListView:   m.dashboardList.View(),
		Items:      items,
		SelectedID: m.SelectedTaskID,
	})
}

func (m Model) renderTaskDetailPane() string {
	row, ok := m.currentRow()
	if !ok {
		return views.RenderTaskDetailPane(views.TaskDetailData{})
	}
	return views.RenderTaskDetailPane(views.TaskDetailData{
		SelectedID:      row.ID,
		Name:            row.Name,
		Zone:            row.ZoneName,
		Frequency:       row.Frequency,
		Season:          row.Season,
		Timing:          row.Timing,
		Reminders:       row.Reminders,
		LastCompleted:   row.LastCompleted,
		NextDue:         row.NextDue,
		NotesEditorView: m.notesArea.View(),
		NotesPreview:    m.detailViewport.View(),
	})
}
