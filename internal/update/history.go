package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/views"
)

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.History.Cursor > 0 {
			m.History.Cursor--
		}
	case "down", "j":
		if m.History.Cursor < len(m.History.Entries)-1 {
			m.History.Cursor++
		}
	}
	return m, nil
}

func (m Model) renderHistoryView() string {
	return views.RenderHistoryPanel(views.HistoryPanelData{
		TableView: m.historyTable.View(),
		Count:     len(m.History.Entries),
	})
}
