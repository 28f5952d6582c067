// Package reminder derives reminder fire times from task state and global
// settings, and manages the logical set of pending notifications. Scheduling
// is fire-and-forget: the core never inspects delivery results, and a denied
// or failing notification backend leaves due-date state untouched.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/settings"
)

const notificationTitle = "HomeKeep Reminder"

// Notifier is the external notification collaborator. Notifications are
// keyed by task id; scheduling the same id twice replaces the pending entry.
type Notifier interface {
	RequestAuthorization(ctx context.Context) (bool, error)
	AuthorizationStatus(ctx context.Context) bool
	ScheduleAt(id string, fireAt time.Time, title, body string) error
	Cancel(id string) error
	CancelAll() error
}

type Scheduler struct {
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

func NewScheduler(notifier Notifier, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// FireTime computes the absolute reminder instant for a task: the due date
// minus the timing offset, at the configured hour (minute zero). The second
// return is false when no reminder should be pending: reminders disabled
// globally or per task, the task disabled, no due date, or a fire time not
// strictly in the future.
//
// The calendar day and hour are taken in now's location. Due dates loaded
// from storage carry UTC, so interpreting them in their own location would
// shift the fire hour (and near midnight the day) by the UTC offset.
func FireTime(task model.Task, cfg settings.Settings, now time.Time) (time.Time, bool) {
	if !cfg.RemindersEnabled || !task.Enabled || !task.RemindersEnabled || task.NextDue == nil {
		return time.Time{}, false
	}
	reminderDate := task.NextDue.In(now.Location()).AddDate(0, 0, -task.ReminderTiming.OffsetDays())
	y, m, d := reminderDate.Date()
	fireAt := time.Date(y, m, d, cfg.Hour(), 0, 0, 0, reminderDate.Location())
	if !fireAt.After(now) {
		return time.Time{}, false
	}
	return fireAt, true
}

// ScheduleReminder cancels any pending reminder for the task, then schedules
// a fresh one when the preconditions hold. At most one reminder is pending
// per task at any time.
func (s *Scheduler) ScheduleReminder(task model.Task, cfg settings.Settings) {
	s.CancelReminder(task)

	fireAt, ok := FireTime(task, cfg, s.now())
	if !ok {
		return
	}
	if err := s.notifier.ScheduleAt(task.ID, fireAt, notificationTitle, reminderBody(task)); err != nil {
		s.log.Error("reminder schedule failed", "task", task.Name, "error", err)
	}
}

// CancelReminder removes any pending reminder for the task. Safe to call
// when none exists.
func (s *Scheduler) CancelReminder(task model.Task) {
	if err := s.notifier.Cancel(task.ID); err != nil {
		s.log.Error("reminder cancel failed", "task", task.Name, "error", err)
	}
}

// RescheduleAll drops every pending reminder and rebuilds the set from
// scratch. Each task re-validates its own preconditions, so disabled tasks
// simply end up with nothing scheduled.
func (s *Scheduler) RescheduleAll(tasks []model.Task, cfg settings.Settings) {
	if err := s.notifier.CancelAll(); err != nil {
		s.log.Error("reminder cancel-all failed", "error", err)
	}
	if !cfg.RemindersEnabled {
		return
	}
	for _, task := range tasks {
		s.ScheduleReminder(task, cfg)
	}
}

func reminderBody(task model.Task) string {
	switch task.ReminderTiming {
	case model.TimingDayOf:
		return task.Name + " is due today."
	case model.TimingWeekBefore:
		return task.Name + " is due in one week."
	default:
		return task.Name + " is due tomorrow."
	}
}
