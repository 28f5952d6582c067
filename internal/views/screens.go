package views

import (
	"fmt"
	"strings"
)

type DashboardItemData struct {
	ID        string
	Name      string
	Bucket    string
	DueLabel  string
	Zone      string
	Frequency string
	Enabled   bool
}

type DashboardPanelData struct {
	ListView   string
	Items      []DashboardItemData
	SelectedID string
}

type ZoneTaskData struct {
	ID       string
	Name     string
	DueLabel string
	Enabled  bool
}

type ZonesPanelData struct {
	ZoneName   string
	ZoneIcon   string
	ZoneIndex  int
	ZoneCount  int
	Tasks      []ZoneTaskData
	SelectedID string
}

type SeasonalPanelData struct {
	Season     string
	SeasonIcon string
	IsCurrent  bool
	Tasks      []ZoneTaskData
	SelectedID string
}

type HistoryPanelData struct {
	TableView string
	Count     int
}

type SettingsPanelData struct {
	RemindersEnabled bool
	ReminderHour     int
	Authorized       bool
	Dirty            bool
}

type TaskDetailData struct {
	SelectedID      string
	Name            string
	Zone            string
	Frequency       string
	Season          string
	Timing          string
	Reminders       bool
	LastCompleted   string
	NextDue         string
	NotesEditorView string
	NotesPreview    string
}

type NewTaskFormData struct {
	Active    bool
	NameInput string
	Frequency string
	Zone      string
	Season    string
	ErrorText string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	overdue := make([]DashboardItemData, 0)
	week := make([]DashboardItemData, 0)
	month := make([]DashboardItemData, 0)
	later := make([]DashboardItemData, 0)
	for _, item := range data.Items {
		switch item.Bucket {
		case "Overdue":
			overdue = append(overdue, item)
		case "This Week":
			week = append(week, item)
		case "This Month":
			month = append(month, item)
		default:
			later = append(later, item)
		}
	}

	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString("actions: [j/k]move [c]complete [e]enable/disable [n]new [d]delete\n")
	b.WriteString(data.ListView + "\n")
	renderDashboardSection(&b, "Overdue", overdue, data.SelectedID)
	renderDashboardSection(&b, "This Week", week, data.SelectedID)
	renderDashboardSection(&b, "This Month", month, data.SelectedID)
	renderDashboardSection(&b, "Later", later, data.SelectedID)
	return strings.TrimSpace(b.String())
}

func RenderZonesPanel(data ZonesPanelData) string {
	var b strings.Builder
	b.WriteString("zones:\n")
	b.WriteString(fmt.Sprintf("zone: %s (%s) [%d/%d]\n", data.ZoneName, data.ZoneIcon, data.ZoneIndex+1, data.ZoneCount))
	b.WriteString("actions: [h/l]zone [j/k]task [c]complete [e]enable/disable\n")
	if len(data.Tasks) == 0 {
		b.WriteString("(no tasks in this zone)")
		return b.String()
	}
	renderTaskLines(&b, data.Tasks, data.SelectedID)
	return strings.TrimSpace(b.String())
}

func RenderSeasonalPanel(data SeasonalPanelData) string {
	var b strings.Builder
	b.WriteString("seasonal:\n")
	marker := ""
	if data.IsCurrent {
		marker = " (now)"
	}
	b.WriteString(fmt.Sprintf("season: %s (%s)%s\n", data.Season, data.SeasonIcon, marker))
	b.WriteString("actions: [h/l]season [j/k]task [c]complete [e]enable/disable\n")
	if len(data.Tasks) == 0 {
		b.WriteString("(no tasks for this season)")
		return b.String()
	}
	renderTaskLines(&b, data.Tasks, data.SelectedID)
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	var b strings.Builder
	b.WriteString("history:\n")
	b.WriteString(fmt.Sprintf("completions: %d (newest first)\n", data.Count))
	b.WriteString("actions: [j/k]move\n")
	if data.Count == 0 {
		b.WriteString("(nothing completed yet)")
		return b.String()
	}
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString("actions: [space]reminders on/off [+/-]hour [w]save [R]restore defaults\n")
	state := "off"
	if data.RemindersEnabled {
		state = "on"
	}
	b.WriteString(fmt.Sprintf("reminders: %s\n", state))
	b.WriteString(fmt.Sprintf("reminder hour: %02d:00\n", data.ReminderHour))
	auth := "unavailable"
	if data.Authorized {
		auth = "available"
	}
	b.WriteString(fmt.Sprintf("desktop notifications: %s\n", auth))
	if data.Dirty {
		b.WriteString("(unsaved changes)")
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskDetailPane(data TaskDetailData) string {
	if strings.TrimSpace(data.SelectedID) == "" {
		return "task:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("task:\n")
	b.WriteString(fmt.Sprintf("name: %s\n", data.Name))
	if data.Zone != "" {
		b.WriteString(fmt.Sprintf("zone: %s\n", data.Zone))
	}
	b.WriteString(fmt.Sprintf("frequency: %s\n", data.Frequency))
	if data.Season != "" {
		b.WriteString(fmt.Sprintf("season: %s\n", data.Season))
	}
	reminder := data.Timing
	if !data.Reminders {
		reminder = "off"
	}
	b.WriteString(fmt.Sprintf("reminder: %s\n", reminder))
	if data.LastCompleted != "" {
		b.WriteString(fmt.Sprintf("last completed: %s\n", data.LastCompleted))
	}
	if data.NextDue != "" {
		b.WriteString(fmt.Sprintf("next due: %s\n", data.NextDue))
	}
	b.WriteString("\nnotes-editor:\n")
	b.WriteString(data.NotesEditorView)
	if data.NotesPreview != "" {
		b.WriteString("\n\nnotes-preview:\n")
		b.WriteString(data.NotesPreview)
	}
	return strings.TrimSpace(b.String())
}

func RenderNewTaskForm(data NewTaskFormData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nnew-task:\n")
	b.WriteString("keys: [enter]create [ctrl+f]frequency [ctrl+z]zone [ctrl+s]season [esc]cancel\n")
	b.WriteString(data.NameInput + "\n")
	b.WriteString(fmt.Sprintf("frequency: %s\n", data.Frequency))
	zone := data.Zone
	if zone == "" {
		zone = "(none)"
	}
	b.WriteString(fmt.Sprintf("zone: %s\n", zone))
	season := data.Season
	if season == "" {
		season = "any"
	}
	b.WriteString(fmt.Sprintf("season: %s\n", season))
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderDashboardSection(b *strings.Builder, title string, items []DashboardItemData, selectedID string) {
	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		cursor := " "
		if selectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, urgencyBadge(item.Bucket), item.Name))
		if item.Frequency != "" {
			b.WriteString(fmt.Sprintf(" [%s]", item.Frequency))
		}
		if item.DueLabel != "" {
			b.WriteString(fmt.Sprintf(" due:%s", item.DueLabel))
		}
		if item.Zone != "" {
			b.WriteString(fmt.Sprintf(" @%s", item.Zone))
		}
		if !item.Enabled {
			b.WriteString(" (disabled)")
		}
		b.WriteString("\n")
	}
}

func renderTaskLines(b *strings.Builder, tasks []ZoneTaskData, selectedID string) {
	for _, task := range tasks {
		cursor := " "
		if selectedID == task.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s", cursor, task.Name))
		if task.DueLabel != "" {
			b.WriteString(fmt.Sprintf(" due:%s", task.DueLabel))
		}
		if !task.Enabled {
			b.WriteString(" (disabled)")
		}
		b.WriteString("\n")
	}
}

func urgencyBadge(bucket string) string {
	switch bucket {
	case "Overdue":
		return "[RED]"
	case "This Week":
		return "[YELLOW]"
	case "This Month":
		return "[BLUE]"
	default:
		return "[GREEN]"
	}
}
