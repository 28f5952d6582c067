// Package service coordinates the store, the due-date engine, and the
// reminder scheduler. All mutations run through here on the single
// coordinating goroutine; persistence failures after a state change are
// logged and the in-memory result is kept (best effort, never fatal).
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/reminder"
	"github.com/sandeepkv93/homekeep/internal/settings"
	"github.com/sandeepkv93/homekeep/internal/storage"
)

var (
	ErrNameRequired = errors.New("service: task name is required")
	ErrNotCustom    = errors.New("service: only custom tasks can be deleted")
)

type TaskService struct {
	repo  storage.Repository
	sched *reminder.Scheduler
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

func NewTaskService(repo storage.Repository, sched *reminder.Scheduler, log *slog.Logger) *TaskService {
	if log == nil {
		log = slog.Default()
	}
	return &TaskService{
		repo:  repo,
		sched: sched,
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// WithClock overrides the time source, for tests.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

type NewTaskInput struct {
	Name        string
	Description string
	Frequency   model.Frequency
	ZoneID      string
	Season      model.Season
	Notes       string
	Icon        string
}

// CreateCustomTask creates a user-authored task. A blank name is rejected
// here, before anything is persisted.
func (s *TaskService) CreateCustomTask(ctx context.Context, in NewTaskInput, cfg settings.Settings) (model.Task, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Task{}, ErrNameRequired
	}
	frequency := in.Frequency
	if !frequency.IsValid() {
		frequency = model.FrequencyMonthly
	}

	task := model.NewTask(s.newID(), strings.TrimSpace(in.Name), frequency, s.now())
	task.Custom = true
	task.Description = in.Description
	task.ZoneID = in.ZoneID
	task.Season = in.Season
	task.Notes = in.Notes
	if in.Icon != "" {
		task.Icon = in.Icon
	}

	if err := s.repo.CreateTask(ctx, storage.FromModelTask(task)); err != nil {
		return model.Task{}, err
	}
	s.sched.ScheduleReminder(task, cfg)
	return task, nil
}

// Complete records a completion for the task and rolls its due date forward.
// Disabled and overdue tasks complete like any other.
func (s *TaskService) Complete(ctx context.Context, taskID, note string, cfg settings.Settings) (model.CompletionRecord, error) {
	stored, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return model.CompletionRecord{}, err
	}

	task := stored.ToModel()
	record := task.MarkComplete(s.newID(), note, s.now())

	if err := s.repo.CreateCompletion(ctx, storage.FromModelCompletion(record)); err != nil {
		s.log.Error("completion save failed", "task", task.Name, "error", err)
	}
	if err := s.repo.UpdateTask(ctx, storage.FromModelTask(task)); err != nil {
		s.log.Error("task save failed after completion", "task", task.Name, "error", err)
	}
	s.sched.ScheduleReminder(task, cfg)
	return record, nil
}

// SetFrequency changes the recurrence interval and recomputes the due date
// from the last completion.
func (s *TaskService) SetFrequency(ctx context.Context, taskID string, frequency model.Frequency, cfg settings.Settings) (model.Task, error) {
	return s.mutate(ctx, taskID, cfg, func(task *model.Task) {
		task.Frequency = frequency
		task.RefreshNextDue(s.now())
	})
}

func (s *TaskService) SetEnabled(ctx context.Context, taskID string, enabled bool, cfg settings.Settings) (model.Task, error) {
	return s.mutate(ctx, taskID, cfg, func(task *model.Task) {
		task.Enabled = enabled
	})
}

func (s *TaskService) SetReminderPrefs(ctx context.Context, taskID string, timing model.ReminderTiming, enabled bool, cfg settings.Settings) (model.Task, error) {
	return s.mutate(ctx, taskID, cfg, func(task *model.Task) {
		task.ReminderTiming = timing
		task.RemindersEnabled = enabled
	})
}

func (s *TaskService) SetNotes(ctx context.Context, taskID, notes string, cfg settings.Settings) (model.Task, error) {
	return s.mutate(ctx, taskID, cfg, func(task *model.Task) {
		task.Notes = notes
	})
}

func (s *TaskService) mutate(ctx context.Context, taskID string, cfg settings.Settings, apply func(*model.Task)) (model.Task, error) {
	stored, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return model.Task{}, err
	}
	task := stored.ToModel()
	apply(&task)
	if err := s.repo.UpdateTask(ctx, storage.FromModelTask(task)); err != nil {
		return model.Task{}, err
	}
	s.sched.ScheduleReminder(task, cfg)
	return task, nil
}

// DeleteCustomTask removes a user-authored task and its history. Default
// tasks are never deleted, only reconciled.
func (s *TaskService) DeleteCustomTask(ctx context.Context, taskID string) error {
	stored, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if !stored.Custom {
		return ErrNotCustom
	}
	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	s.sched.CancelReminder(stored.ToModel())
	return nil
}

func (s *TaskService) Task(ctx context.Context, taskID string) (model.Task, error) {
	stored, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return model.Task{}, err
	}
	return stored.ToModel(), nil
}

func (s *TaskService) Tasks(ctx context.Context) ([]model.Task, error) {
	stored, err := s.repo.ListTasks(ctx, storage.TaskListFilter{})
	if err != nil {
		return nil, err
	}
	return toModelTasks(stored), nil
}

func (s *TaskService) TasksForZone(ctx context.Context, zoneID string) ([]model.Task, error) {
	stored, err := s.repo.ListTasks(ctx, storage.TaskListFilter{ZoneID: zoneID})
	if err != nil {
		return nil, err
	}
	return toModelTasks(stored), nil
}

func (s *TaskService) TasksForSeason(ctx context.Context, season model.Season) ([]model.Task, error) {
	stored, err := s.repo.ListTasks(ctx, storage.TaskListFilter{Season: string(season)})
	if err != nil {
		return nil, err
	}
	return toModelTasks(stored), nil
}

func (s *TaskService) Zones(ctx context.Context) ([]model.Zone, error) {
	stored, err := s.repo.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Zone, 0, len(stored))
	for _, zone := range stored {
		out = append(out, zone.ToModel())
	}
	return out, nil
}

// History returns the task's completion records, newest first.
func (s *TaskService) History(ctx context.Context, taskID string) ([]model.CompletionRecord, error) {
	stored, err := s.repo.ListCompletions(ctx, storage.CompletionListFilter{TaskID: taskID})
	if err != nil {
		return nil, err
	}
	out := make([]model.CompletionRecord, 0, len(stored))
	for _, record := range stored {
		out = append(out, record.ToModel())
	}
	return out, nil
}

// RecentHistory returns the newest completion records across all tasks.
func (s *TaskService) RecentHistory(ctx context.Context, limit int) ([]model.CompletionRecord, error) {
	stored, err := s.repo.ListCompletions(ctx, storage.CompletionListFilter{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]model.CompletionRecord, 0, len(stored))
	for _, record := range stored {
		out = append(out, record.ToModel())
	}
	return out, nil
}

// Overview groups enabled tasks into the urgency buckets. A task lands in
// exactly one of them.
type Overview struct {
	Overdue      []model.Task
	DueThisWeek  []model.Task
	DueThisMonth []model.Task
	Later        []model.Task
}

func (s *TaskService) Overview(ctx context.Context) (Overview, error) {
	enabled := true
	stored, err := s.repo.ListTasks(ctx, storage.TaskListFilter{Enabled: &enabled})
	if err != nil {
		return Overview{}, err
	}
	now := s.now()
	var out Overview
	for _, row := range stored {
		task := row.ToModel()
		switch {
		case task.IsOverdue(now):
			out.Overdue = append(out.Overdue, task)
		case task.IsDueThisWeek(now):
			out.DueThisWeek = append(out.DueThisWeek, task)
		case task.IsDueThisMonth(now):
			out.DueThisMonth = append(out.DueThisMonth, task)
		default:
			out.Later = append(out.Later, task)
		}
	}
	return out, nil
}

// RescheduleAll rebuilds the full pending-reminder set from current task
// state and settings.
func (s *TaskService) RescheduleAll(ctx context.Context, cfg settings.Settings) error {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return err
	}
	s.sched.RescheduleAll(tasks, cfg)
	return nil
}

func toModelTasks(stored []storage.Task) []model.Task {
	out := make([]model.Task, 0, len(stored))
	for _, row := range stored {
		out = append(out, row.ToModel())
	}
	return out
}
