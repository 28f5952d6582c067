package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/service"
	"github.com/sandeepkv93/homekeep/internal/settings"
)

func (m Model) loadDashboardCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		overview, err := svc.Overview(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		zones, err := svc.Zones(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		names := zoneNames(zones)
		now := time.Now()

		rows := make([]TaskRow, 0, len(overview.Overdue)+len(overview.DueThisWeek)+len(overview.DueThisMonth)+len(overview.Later))
		for _, task := range overview.Overdue {
			rows = append(rows, taskRow(task, "Overdue", names, now))
		}
		for _, task := range overview.DueThisWeek {
			rows = append(rows, taskRow(task, "This Week", names, now))
		}
		for _, task := range overview.DueThisMonth {
			rows = append(rows, taskRow(task, "This Month", names, now))
		}
		for _, task := range overview.Later {
			rows = append(rows, taskRow(task, "Later", names, now))
		}
		return DashboardLoadedMsg{Rows: rows}
	}
}

func (m Model) loadZoneDataCmd(zoneIdx int) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		zones, err := svc.Zones(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		zoneRows := make([]ZoneRow, 0, len(zones))
		for _, zone := range zones {
			zoneRows = append(zoneRows, ZoneRow{ID: zone.ID, Name: zone.Name, Icon: zone.Icon})
		}
		msg := ZoneDataLoadedMsg{Zones: zoneRows}
		if zoneIdx >= 0 && zoneIdx < len(zoneRows) {
			tasks, err := svc.TasksForZone(ctx, zoneRows[zoneIdx].ID)
			if err != nil {
				return AppErrorMsg{Err: err}
			}
			names := zoneNames(zones)
			now := time.Now()
			for _, task := range tasks {
				msg.Tasks = append(msg.Tasks, taskRow(task, bucketFor(task, now), names, now))
			}
		}
		return msg
	}
}

func (m Model) loadSeasonTasksCmd(season model.Season) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		tasks, err := svc.TasksForSeason(ctx, season)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		zones, err := svc.Zones(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		names := zoneNames(zones)
		now := time.Now()
		msg := SeasonTasksLoadedMsg{Season: season}
		for _, task := range tasks {
			msg.Tasks = append(msg.Tasks, taskRow(task, bucketFor(task, now), names, now))
		}
		return msg
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		records, err := svc.RecentHistory(ctx, 100)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		tasks, err := svc.Tasks(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		names := make(map[string]string, len(tasks))
		for _, task := range tasks {
			names[task.ID] = task.Name
		}
		entries := make([]HistoryRow, 0, len(records))
		for _, record := range records {
			name := names[record.TaskID]
			if name == "" {
				name = "(deleted task)"
			}
			entries = append(entries, HistoryRow{
				TaskName:    name,
				CompletedAt: record.CompletedAt.Local().Format("2006-01-02"),
				Notes:       record.Notes,
			})
		}
		return HistoryLoadedMsg{Entries: entries}
	}
}

func (m Model) completeTaskCmd(taskID, name string) tea.Cmd {
	svc := m.svc
	cfg := m.Settings
	return func() tea.Msg {
		if _, err := svc.Complete(context.Background(), taskID, "", cfg); err != nil {
			return AppErrorMsg{Err: err}
		}
		return TaskCompletedMsg{Name: name}
	}
}

func (m Model) toggleEnabledCmd(taskID string, enabled bool) tea.Cmd {
	svc := m.svc
	cfg := m.Settings
	return func() tea.Msg {
		task, err := svc.SetEnabled(context.Background(), taskID, enabled, cfg)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		verb := "disabled"
		if task.Enabled {
			verb = "enabled"
		}
		return TaskMutatedMsg{Text: fmt.Sprintf("%s %s", verb, task.Name)}
	}
}

func (m Model) createTaskCmd(in service.NewTaskInput) tea.Cmd {
	svc := m.svc
	cfg := m.Settings
	return func() tea.Msg {
		task, err := svc.CreateCustomTask(context.Background(), in, cfg)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return TaskMutatedMsg{Text: "created " + task.Name}
	}
}

func (m Model) deleteTaskCmd(taskID, name string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		if err := svc.DeleteCustomTask(context.Background(), taskID); err != nil {
			return AppErrorMsg{Err: err}
		}
		return TaskMutatedMsg{Text: "deleted " + name}
	}
}

func (m Model) saveSettingsCmd() tea.Cmd {
	svc := m.svc
	cfg := m.Settings
	path := m.SettingsPath
	return func() tea.Msg {
		if err := settings.Save(path, cfg); err != nil {
			return AppErrorMsg{Err: err}
		}
		if err := svc.RescheduleAll(context.Background(), cfg); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SettingsSavedMsg{}
	}
}

// resetDefaultsCmd restores the default catalog and rebuilds the reminder set.
func (m Model) resetDefaultsCmd() tea.Cmd {
	svc := m.svc
	seeder := m.seeder
	cfg := m.Settings
	return func() tea.Msg {
		ctx := context.Background()
		if err := seeder.ResetDefaults(ctx); err != nil {
			return AppErrorMsg{Err: err}
		}
		if err := svc.RescheduleAll(ctx, cfg); err != nil {
			return AppErrorMsg{Err: err}
		}
		return TaskMutatedMsg{Text: "catalog restored to defaults"}
	}
}

// reloadCurrentCmd refreshes whichever screen the user is looking at.
func (m Model) reloadCurrentCmd() tea.Cmd {
	switch m.CurrentView {
	case ViewZones:
		return m.loadZoneDataCmd(m.Zones.ZoneCursor)
	case ViewSeasonal:
		return m.loadSeasonTasksCmd(m.currentSeason())
	case ViewHistory:
		return m.loadHistoryCmd()
	default:
		return m.loadDashboardCmd()
	}
}

func taskRow(task model.Task, bucket string, zoneName map[string]string, now time.Time) TaskRow {
	row := TaskRow{
		ID:        task.ID,
		Name:      task.Name,
		Bucket:    bucket,
		DueLabel:  dueLabel(task, now),
		ZoneID:    task.ZoneID,
		ZoneName:  zoneName[task.ZoneID],
		Frequency: string(task.Frequency),
		Season:    string(task.Season),
		Timing:    string(task.ReminderTiming),
		Enabled:   task.Enabled,
		Custom:    task.Custom,
		Reminders: task.RemindersEnabled,
		Notes:     task.Notes,
	}
	if task.LastCompleted != nil {
		row.LastCompleted = task.LastCompleted.Local().Format("2006-01-02")
	}
	if task.NextDue != nil {
		row.NextDue = task.NextDue.Local().Format("2006-01-02")
	}
	return row
}

func bucketFor(task model.Task, now time.Time) string {
	switch {
	case task.IsOverdue(now):
		return "Overdue"
	case task.IsDueThisWeek(now):
		return "This Week"
	case task.IsDueThisMonth(now):
		return "This Month"
	default:
		return "Later"
	}
}

func zoneNames(zones []model.Zone) map[string]string {
	out := make(map[string]string, len(zones))
	for _, zone := range zones {
		out[zone.ID] = zone.Name
	}
	return out
}
