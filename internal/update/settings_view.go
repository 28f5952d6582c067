package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/settings"
	"github.com/sandeepkv93/homekeep/internal/views"
)

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "space":
		m.Settings.RemindersEnabled = !m.Settings.RemindersEnabled
		m.SettingsDirty = true
	case "+", "=":
		if m.Settings.ReminderHour < settings.MaxReminderHour {
			m.Settings.ReminderHour++
			m.SettingsDirty = true
		}
	case "-":
		if m.Settings.ReminderHour > settings.MinReminderHour {
			m.Settings.ReminderHour--
			m.SettingsDirty = true
		}
	case "w":
		if m.SettingsDirty {
			return m, m.saveSettingsCmd()
		}
		m.Status = StatusBar{Text: "settings unchanged", IsError: false}
	case "R":
		return m, m.resetDefaultsCmd()
	}
	return m, nil
}

func (m Model) renderSettingsView() string {
	return views.RenderSettingsPanel(views.SettingsPanelData{
		RemindersEnabled: m.Settings.RemindersEnabled,
		ReminderHour:     m.Settings.Hour(),
		Authorized:       m.Authorized,
		Dirty:            m.SettingsDirty,
	})
}
