package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadDashboardCmd(), m.loadZoneDataCmd(0), m.loadHistoryCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.syncBubbleData()

	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Form.Active {
			return m.handleFormKey(typed)
		}

		switch typed.String() {
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, m.loadDashboardCmd()
		case m.Keys.Zones:
			m.CurrentView = ViewZones
			return m, m.loadZoneDataCmd(m.Zones.ZoneCursor)
		case m.Keys.Seasonal:
			m.CurrentView = ViewSeasonal
			return m, m.loadSeasonTasksCmd(m.currentSeason())
		case m.Keys.History:
			m.CurrentView = ViewHistory
			return m, m.loadHistoryCmd()
		case m.Keys.Settings:
			m.CurrentView = ViewSettings
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewDashboard:
			return m.handleDashboardKey(typed)
		case ViewZones:
			return m.handleZonesKey(typed)
		case ViewSeasonal:
			return m.handleSeasonalKey(typed)
		case ViewHistory:
			return m.handleHistoryKey(typed)
		case ViewSettings:
			return m.handleSettingsKey(typed)
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			return m, m.reloadCurrentCmd()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case DashboardLoadedMsg:
		m.Dashboard.Items = typed.Rows
		m.Dashboard.Cursor = clampCursor(m.Dashboard.Cursor, len(typed.Rows))
		m.syncSelectedTask()
		return m, nil
	case ZoneDataLoadedMsg:
		m.Zones.Zones = typed.Zones
		m.Zones.ZoneCursor = clampCursor(m.Zones.ZoneCursor, len(typed.Zones))
		m.Zones.Tasks = typed.Tasks
		m.Zones.Cursor = clampCursor(m.Zones.Cursor, len(typed.Tasks))
		m.syncSelectedTask()
		return m, nil
	case SeasonTasksLoadedMsg:
		m.Seasonal.Tasks = typed.Tasks
		m.Seasonal.Cursor = clampCursor(m.Seasonal.Cursor, len(typed.Tasks))
		m.syncSelectedTask()
		return m, nil
	case HistoryLoadedMsg:
		m.History.Entries = typed.Entries
		m.History.Cursor = clampCursor(m.History.Cursor, len(typed.Entries))
		return m, nil
	case TaskCompletedMsg:
		m.Status = StatusBar{Text: "completed " + typed.Name, IsError: false}
		m.notify("Completed", typed.Name, "info")
		return m, tea.Batch(m.reloadCurrentCmd(), m.loadHistoryCmd())
	case TaskMutatedMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: false}
		return m, m.reloadCurrentCmd()
	case SettingsSavedMsg:
		m.SettingsDirty = false
		m.Status = StatusBar{Text: "settings saved, reminders rescheduled", IsError: false}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderTaskDetailPane() + m.renderFormIfVisible() + m.renderHelpIfVisible()
	case ViewZones:
		leftPane = m.renderZonesView()
		rightPane = m.renderTaskDetailPane() + m.renderHelpIfVisible()
	case ViewSeasonal:
		leftPane = m.renderSeasonalView()
		rightPane = m.renderTaskDetailPane() + m.renderHelpIfVisible()
	case ViewHistory:
		leftPane = m.renderHistoryView()
		rightPane = m.renderHelpIfVisible()
	case ViewSettings:
		leftPane = m.renderSettingsView()
		rightPane = m.renderHelpIfVisible()
	}

	data := views.AppData{
		Header:        fmt.Sprintf("homekeep | view: %s | selected: %s", m.CurrentView, m.SelectedTaskID),
		ListPane:      leftPane,
		DetailPane:    rightPane,
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Footer: fmt.Sprintf("keys: %s dashboard | %s zones | %s seasonal | %s history | %s settings | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Zones, m.Keys.Seasonal, m.Keys.History, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
	}
	if len(m.Notifications) > 0 {
		latest := m.Notifications[len(m.Notifications)-1]
		data.Notification = latest.Body
		data.NotificationLevel = latest.Level
	}
	return views.RenderApp(data)
}

func (m *Model) syncSelectedTask() {
	if row, ok := m.currentRow(); ok {
		m.SelectedTaskID = row.ID
	} else {
		m.SelectedTaskID = ""
	}
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{Title: title, Body: body, Level: level, At: time.Now().UTC()})
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}

func clampCursor(cursor, count int) int {
	if count == 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewZones, ViewSeasonal, ViewHistory, ViewSettings:
		return true
	default:
		return false
	}
}
