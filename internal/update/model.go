package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/seed"
	"github.com/sandeepkv93/homekeep/internal/service"
	"github.com/sandeepkv93/homekeep/internal/settings"
	"github.com/sandeepkv93/homekeep/internal/views"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewZones     View = "Zones"
	ViewSeasonal  View = "Seasonal"
	ViewHistory   View = "History"
	ViewSettings  View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Zones     string
	Seasonal  string
	History   string
	Settings  string
	Help      string
	Quit      string
}

// TaskRow is the view-facing projection of a task, shared by the
// dashboard, zone, and seasonal screens.
type TaskRow struct {
	ID            string
	Name          string
	Bucket        string
	DueLabel      string
	ZoneID        string
	ZoneName      string
	Frequency     string
	Season        string
	Timing        string
	Enabled       bool
	Custom        bool
	Reminders     bool
	LastCompleted string
	NextDue       string
	Notes         string
}

type DashboardState struct {
	Items  []TaskRow
	Cursor int
}

type ZoneRow struct {
	ID   string
	Name string
	Icon string
}

type ZonesState struct {
	Zones      []ZoneRow
	ZoneCursor int
	Tasks      []TaskRow
	Cursor     int
}

type SeasonalState struct {
	Seasons      []model.Season
	SeasonCursor int
	Tasks        []TaskRow
	Cursor       int
}

type HistoryRow struct {
	TaskName    string
	CompletedAt string
	Notes       string
}

type HistoryState struct {
	Entries []HistoryRow
	Cursor  int
}

type NewTaskFormState struct {
	Active    bool
	Frequency model.Frequency
	ZoneIdx   int
	Season    model.Season
	Err       string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type Model struct {
	CurrentView    View
	SelectedTaskID string
	Dashboard      DashboardState
	Zones          ZonesState
	Seasonal       SeasonalState
	History        HistoryState
	Form           NewTaskFormState
	Settings       settings.Settings
	SettingsPath   string
	SettingsDirty  bool
	Authorized     bool
	HelpVisible    bool
	Notifications  []Notification
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	svc            *service.TaskService
	seeder         *seed.Seeder
	// Bubble components used for rich TUI controls
	dashboardList  list.Model
	historyTable   table.Model
	nameInput      textinput.Model
	notesArea      textarea.Model
	helpModel      help.Model
	detailViewport viewport.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DashboardLoadedMsg struct {
	Rows []TaskRow
}

type ZoneDataLoadedMsg struct {
	Zones []ZoneRow
	Tasks []TaskRow
}

type SeasonTasksLoadedMsg struct {
	Season model.Season
	Tasks  []TaskRow
}

type HistoryLoadedMsg struct {
	Entries []HistoryRow
}

type TaskCompletedMsg struct {
	Name string
}

type TaskMutatedMsg struct {
	Text string
}

type SettingsSavedMsg struct{}

func NewModel(svc *service.TaskService, seeder *seed.Seeder, cfg settings.Settings, settingsPath string, authorized bool) Model {
	m := Model{
		CurrentView: ViewDashboard,
		Seasonal: SeasonalState{
			Seasons: model.Seasons,
		},
		Settings:     cfg,
		SettingsPath: settingsPath,
		Authorized:   authorized,
		svc:          svc,
		seeder:       seeder,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Zones:     "2",
			Seasonal:  "3",
			History:   "4",
			Settings:  "5",
			Help:      "?",
			Quit:      "q",
		},
		Form: NewTaskFormState{Frequency: model.FrequencyMonthly},
	}
	for i, season := range m.Seasonal.Seasons {
		if season == model.CurrentSeason(time.Now()) {
			m.Seasonal.SeasonCursor = i
		}
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.dashboardList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.dashboardList.Title = "Tasks (list)"
	m.dashboardList.SetShowHelp(false)
	m.dashboardList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Task", Width: 28},
		{Title: "Notes", Width: 14},
	}
	m.historyTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.nameInput = textinput.New()
	m.nameInput.Prompt = "name> "
	m.nameInput.CharLimit = 256
	m.nameInput.Width = 42

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(6)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Task notes (markdown)"

	m.helpModel = help.New()
	m.detailViewport = viewport.New(54, 10)
}

func (m *Model) syncBubbleData() {
	items := make([]list.Item, 0, len(m.Dashboard.Items))
	for _, row := range m.Dashboard.Items {
		items = append(items, listItem{title: row.Name, description: row.Bucket + " | " + row.DueLabel})
	}
	m.dashboardList.SetItems(items)
	if len(items) > 0 && m.Dashboard.Cursor < len(items) {
		m.dashboardList.Select(m.Dashboard.Cursor)
	}

	rows := make([]table.Row, 0, len(m.History.Entries))
	for _, entry := range m.History.Entries {
		rows = append(rows, table.Row{entry.CompletedAt, entry.TaskName, entry.Notes})
	}
	m.historyTable.SetRows(rows)
	if len(rows) > 0 && m.History.Cursor < len(rows) {
		m.historyTable.SetCursor(m.History.Cursor)
	}

	if m.Form.Active {
		m.nameInput.Focus()
	}

	if row, ok := m.currentRow(); ok {
		md := row.Notes
		if md == "" {
			md = "_No notes_"
		}
		m.notesArea.SetValue(md)
		m.detailViewport.SetContent(views.RenderMarkdown(md))
	}
}

// currentRow resolves the selected task in whichever screen is active.
func (m Model) currentRow() (TaskRow, bool) {
	switch m.CurrentView {
	case ViewDashboard:
		return rowAt(m.Dashboard.Items, m.Dashboard.Cursor)
	case ViewZones:
		return rowAt(m.Zones.Tasks, m.Zones.Cursor)
	case ViewSeasonal:
		return rowAt(m.Seasonal.Tasks, m.Seasonal.Cursor)
	default:
		return TaskRow{}, false
	}
}

func rowAt(rows []TaskRow, cursor int) (TaskRow, bool) {
	if cursor < 0 || cursor >= len(rows) {
		return TaskRow{}, false
	}
	return rows[cursor], true
}
