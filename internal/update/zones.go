package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/views"
)

func (m Model) handleZonesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.Zones.ZoneCursor > 0 {
			m.Zones.ZoneCursor--
			m.Zones.Cursor = 0
			return m, m.loadZoneDataCmd(m.Zones.ZoneCursor)
		}
	case "right", "l":
		if m.Zones.ZoneCursor < len(m.Zones.Zones)-1 {
			m.Zones.ZoneCursor++
			m.Zones.Cursor = 0
			return m, m.loadZoneDataCmd(m.Zones.ZoneCursor)
		}
	case "up", "k":
		if m.Zones.Cursor > 0 {
			m.Zones.Cursor--
		}
		m.syncSelectedTask()
	case "down", "j":
		if m.Zones.Cursor < len(m.Zones.Tasks)-1 {
			m.Zones.Cursor++
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

func (m Model) renderZonesView() string {
	data := views.ZonesPanelData{
		ZoneCount:  len(m.Zones.Zones),
		SelectedID: m.SelectedTaskID,
	}
	if m.Zones.ZoneCursor >= 0 && m.Zones.ZoneCursor < len(m.Zones.Zones) {
		zone := m.Zones.Zones[m.Zones.ZoneCursor]
		data.ZoneName = zone.Name
		data.ZoneIcon = zone.Icon
		data.ZoneIndex = m.Zones.ZoneCursor
	}
	for _, row := range m.Zones.Tasks {
		data.Tasks = append(data.Tasks, views.ZoneTaskData{
			ID:       row.ID,
			Name:     row.Name,
			DueLabel: row.DueLabel,
			Enabled:  row.Enabled,
		})
	}
	return views.RenderZonesPanel(data)
}
