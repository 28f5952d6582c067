package service

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/reminder"
	"github.com/sandeepkv93/homekeep/internal/settings"
	"github.com/sandeepkv93/homekeep/internal/storage"
)

type fakeNotifier struct {
	mu        sync.Mutex
	scheduled map[string]time.Time
	cancelled []string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{scheduled: make(map[string]time.Time)}
}

func (f *fakeNotifier) RequestAuthorization(context.Context) (bool, error) { return true, nil }
func (f *fakeNotifier) AuthorizationStatus(context.Context) bool           { return true }

func (f *fakeNotifier) ScheduleAt(id string, fireAt time.Time, title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled[id] = fireAt
	return nil
}

func (f *fakeNotifier) Cancel(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.scheduled, id)
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeNotifier) CancelAll() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = make(map[string]time.Time)
	return nil
}

func (f *fakeNotifier) pendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.scheduled)
}

func setupService(t *testing.T, now time.Time) (*TaskService, *fakeNotifier) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "homekeep-service.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	log := slog.New(slog.DiscardHandler)
	notifier := newFakeNotifier()
	sched := reminder.NewScheduler(notifier, log).WithClock(func() time.Time { return now })
	svc := NewTaskService(repo, sched, log).WithClock(func() time.Time { return now })
	return svc, notifier
}

func TestCreateCustomTaskRejectsBlankName(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc, notifier := setupService(t, now)

	_, err := svc.CreateCustomTask(context.Background(), NewTaskInput{Name: "   "}, settings.Default())
	if err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got: %v", err)
	}
	if notifier.pendingCount() != 0 {
		t.Fatalf("nothing should be scheduled for a rejected task")
	}
}

func TestCreateCustomTaskDefaultsAndSchedules(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc, notifier := setupService(t, now)
	ctx := context.Background()

	task, err := svc.CreateCustomTask(ctx, NewTaskInput{
		Name:      "  Sharpen Mower Blade ",
		Frequency: model.Frequency("every other day"),
	}, settings.Default())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Name != "Sharpen Mower Blade" {
		t.Fatalf("name not trimmed: %q", task.Name)
	}
	if !task.Custom {
		t.Fatalf("expected custom flag")
	}
	if task.Frequency != model.FrequencyMonthly {
		t.Fatalf("invalid frequency should fall back to monthly, got %q", task.Frequency)
	}
	if task.NextDue == nil {
		t.Fatalf("new task must have a due date")
	}

	stored, err := svc.Task(ctx, task.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Name != task.Name || !stored.Custom {
		t.Fatalf("persisted task differs: %#v", stored)
	}
	if notifier.pendingCount() != 1 {
		t.Fatalf("expected one scheduled reminder, got %d", notifier.pendingCount())
	}
}

func TestCompleteRollsDueDateAndRecordsHistory(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := setupService(t, now)
	ctx := context.Background()

	task, err := svc.CreateCustomTask(ctx, NewTaskInput{
		Name:      "Replace HVAC Filter",
		Frequency: model.FrequencyMonthly,
	}, settings.Default())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	record, err := svc.Complete(ctx, task.ID, "used MERV 13", settings.Default())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if record.TaskID != task.ID || record.Notes != "used MERV 13" {
		t.Fatalf("unexpected record: %#v", record)
	}
	if !record.CompletedAt.Equal(now) {
		t.Fatalf("completion time = %v, want %v", record.CompletedAt, now)
	}

	updated, err := svc.Task(ctx, task.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if updated.LastCompleted == nil || !updated.LastCompleted.Equal(now) {
		t.Fatalf("last completed not set: %#v", updated.LastCompleted)
	}
	wantDue := now.AddDate(0, 0, 30)
	if updated.NextDue == nil || !updated.NextDue.Equal(wantDue) {
		t.Fatalf("next due = %v, want %v", updated.NextDue, wantDue)
	}

	history, err := svc.History(ctx, task.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != record.ID {
		t.Fatalf("unexpected history: %#v", history)
	}
}

func TestSetFrequencyRecomputesFromLastCompletion(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := setupService(t, now)
	ctx := context.Background()

	task, err := svc.CreateCustomTask(ctx, NewTaskInput{
		Name:      "Clean Range Hood Filter",
		Frequency: model.FrequencyMonthly,
	}, settings.Default())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Complete(ctx, task.ID, "", settings.Default()); err != nil {
		t.Fatalf("complete: %v", err)
	}

	updated, err := svc.SetFrequency(ctx, task.ID, model.FrequencyWeekly, settings.Default())
	if err != nil {
		t.Fatalf("set frequency: %v", err)
	}
	wantDue := now.AddDate(0, 0, 7)
	if updated.NextDue == nil || !updated.NextDue.Equal(wantDue) {
		t.Fatalf("next due = %v, want %v", updated.NextDue, wantDue)
	}
}

func TestDeleteCustomTaskRejectsDefaults(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := setupService(t, now)
	ctx := context.Background()

	// A reconciler-owned task, inserted directly.
	stored := storage.FromModelTask(model.NewTask("task-default", "Test Smoke Detectors", model.FrequencyMonthly, now))
	if err := svc.repo.CreateTask(ctx, stored); err != nil {
		t.Fatalf("create default task: %v", err)
	}

	if err := svc.DeleteCustomTask(ctx, "task-default"); err != ErrNotCustom {
		t.Fatalf("expected ErrNotCustom, got: %v", err)
	}
	if _, err := svc.Task(ctx, "task-default"); err != nil {
		t.Fatalf("default task should survive: %v", err)
	}
}

func TestDeleteCustomTaskRemovesTaskAndReminder(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc, notifier := setupService(t, now)
	ctx := context.Background()

	task, err := svc.CreateCustomTask(ctx, NewTaskInput{
		Name:      "Water Plants",
		Frequency: model.FrequencyWeekly,
	}, settings.Default())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if notifier.pendingCount() != 1 {
		t.Fatalf("reminder not scheduled on create")
	}

	if err := svc.DeleteCustomTask(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Task(ctx, task.ID); err != storage.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if notifier.pendingCount() != 0 {
		t.Fatalf("reminder should be cancelled on delete")
	}
}

func TestOverviewBucketsAreDisjointAndSkipDisabled(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	svc, _ := setupService(t, now)
	ctx := context.Background()

	mkTask := func(id, name string, due time.Time, enabled bool) {
		t.Helper()
		task := model.NewTask(id, name, model.FrequencyMonthly, now)
		task.Enabled = enabled
		task.NextDue = &due
		if err := svc.repo.CreateTask(ctx, storage.FromModelTask(task)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	mkTask("t-overdue", "Clean Gutters", now.AddDate(0, 0, -3), true)
	mkTask("t-week", "Mow Lawn", now.AddDate(0, 0, 4), true)
	mkTask("t-month", "Flush Water Heater", now.AddDate(0, 0, 20), true)
	mkTask("t-later", "Service Furnace", now.AddDate(0, 3, 0), true)
	mkTask("t-off", "Winterize Sprinklers", now.AddDate(0, 0, -10), false)

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Overdue) != 1 || overview.Overdue[0].ID != "t-overdue" {
		t.Fatalf("overdue bucket: %#v", overview.Overdue)
	}
	if len(overview.DueThisWeek) != 1 || overview.DueThisWeek[0].ID != "t-week" {
		t.Fatalf("week bucket: %#v", overview.DueThisWeek)
	}
	if len(overview.DueThisMonth) != 1 || overview.DueThisMonth[0].ID != "t-month" {
		t.Fatalf("month bucket: %#v", overview.DueThisMonth)
	}
	if len(overview.Later) != 1 || overview.Later[0].ID != "t-later" {
		t.Fatalf("later bucket: %#v", overview.Later)
	}
}

func TestRescheduleAllRebuildsPendingSet(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc, notifier := setupService(t, now)
	ctx := context.Background()

	for _, name := range []string{"Check Fire Extinguisher", "Test CO Detectors"} {
		if _, err := svc.CreateCustomTask(ctx, NewTaskInput{
			Name:      name,
			Frequency: model.FrequencyMonthly,
		}, settings.Default()); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	if notifier.pendingCount() != 2 {
		t.Fatalf("expected 2 scheduled, got %d", notifier.pendingCount())
	}

	off := settings.Settings{RemindersEnabled: false, ReminderHour: 9}
	if err := svc.RescheduleAll(ctx, off); err != nil {
		t.Fatalf("reschedule all: %v", err)
	}
	if notifier.pendingCount() != 0 {
		t.Fatalf("disabling reminders should clear the pending set, got %d", notifier.pendingCount())
	}

	if err := svc.RescheduleAll(ctx, settings.Default()); err != nil {
		t.Fatalf("reschedule all: %v", err)
	}
	if notifier.pendingCount() != 2 {
		t.Fatalf("expected 2 rescheduled, got %d", notifier.pendingCount())
	}
}
