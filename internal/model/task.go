package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidFrequency      = errors.New("model: invalid task frequency")
	ErrInvalidSeason         = errors.New("model: invalid season")
	ErrInvalidReminderTiming = errors.New("model: invalid reminder timing")
)

type Frequency string

const (
	FrequencyWeekly    Frequency = "Weekly"
	FrequencyBiweekly  Frequency = "Every 2 Weeks"
	FrequencyMonthly   Frequency = "Monthly"
	FrequencyQuarterly Frequency = "Every 3 Months"
	FrequencyBiannual  Frequency = "Every 6 Months"
	FrequencyAnnual    Frequency = "Yearly"
)

// Frequencies lists every recurrence interval in ascending order.
var Frequencies = []Frequency{
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyBiannual,
	FrequencyAnnual,
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyBiannual, FrequencyAnnual:
		return true
	default:
		return false
	}
}

// Days returns the recurrence interval as a fixed day count.
func (f Frequency) Days() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyBiweekly:
		return 14
	case FrequencyMonthly:
		return 30
	case FrequencyQuarterly:
		return 90
	case FrequencyBiannual:
		return 182
	case FrequencyAnnual:
		return 365
	default:
		return 0
	}
}

func (f Frequency) ShortLabel() string {
	switch f {
	case FrequencyWeekly:
		return "1w"
	case FrequencyBiweekly:
		return "2w"
	case FrequencyMonthly:
		return "1mo"
	case FrequencyQuarterly:
		return "3mo"
	case FrequencyBiannual:
		return "6mo"
	case FrequencyAnnual:
		return "1yr"
	default:
		return "?"
	}
}

type Season string

const (
	SeasonNone   Season = ""
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
)

var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

func (s Season) IsValid() bool {
	switch s {
	case SeasonNone, SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		return true
	default:
		return false
	}
}

func (s Season) Icon() string {
	switch s {
	case SeasonSpring:
		return "leaf"
	case SeasonSummer:
		return "sun"
	case SeasonFall:
		return "wind"
	case SeasonWinter:
		return "snowflake"
	default:
		return ""
	}
}

// CurrentSeason maps the calendar month of now onto a season:
// March through May is spring, June through August summer,
// September through November fall, everything else winter.
func CurrentSeason(now time.Time) Season {
	switch m := now.Month(); {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

type ReminderTiming string

const (
	TimingDayOf      ReminderTiming = "Day of"
	TimingDayBefore  ReminderTiming = "1 day before"
	TimingWeekBefore ReminderTiming = "1 week before"
)

var ReminderTimings = []ReminderTiming{TimingDayOf, TimingDayBefore, TimingWeekBefore}

func (r ReminderTiming) IsValid() bool {
	switch r {
	case TimingDayOf, TimingDayBefore, TimingWeekBefore:
		return true
	default:
		return false
	}
}

// OffsetDays is subtracted from the due date to get the reminder date.
func (r ReminderTiming) OffsetDays() int {
	switch r {
	case TimingDayOf:
		return 0
	case TimingDayBefore:
		return 1
	case TimingWeekBefore:
		return 7
	default:
		return 0
	}
}

// Task is a recurring home-maintenance chore. ZoneID is a weak reference:
// deleting the zone clears it and never deletes the task. Completion history
// is owned exclusively by the task and cascade-deleted with it.
type Task struct {
	ID               string
	Name             string
	Description      string
	Frequency        Frequency
	ZoneID           string
	Season           Season
	Enabled          bool
	Custom           bool
	LastCompleted    *time.Time
	NextDue          *time.Time
	ReminderTiming   ReminderTiming
	RemindersEnabled bool
	Notes            string
	Icon             string
	CreatedAt        time.Time
}

// NewTask builds a task with the standard defaults and seeds the first due
// date from the creation time plus one recurrence interval.
func NewTask(id, name string, frequency Frequency, createdAt time.Time) Task {
	t := Task{
		ID:               id,
		Name:             name,
		Frequency:        frequency,
		Enabled:          true,
		ReminderTiming:   TimingDayBefore,
		RemindersEnabled: true,
		Icon:             "wrench",
		CreatedAt:        createdAt,
	}
	due := createdAt.AddDate(0, 0, frequency.Days())
	t.NextDue = &due
	return t
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	if !t.Frequency.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, t.Frequency)
	}
	if !t.Season.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSeason, t.Season)
	}
	if !t.ReminderTiming.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidReminderTiming, t.ReminderTiming)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// IsOverdue reports whether the due date has already passed at now.
func (t Task) IsOverdue(now time.Time) bool {
	if t.NextDue == nil {
		return false
	}
	return t.NextDue.Before(now)
}

// IsDueThisWeek reports whether the due date falls within the next seven days
// of now, inclusive on both ends.
func (t Task) IsDueThisWeek(now time.Time) bool {
	if t.NextDue == nil {
		return false
	}
	due := *t.NextDue
	return !due.Before(now) && !due.After(now.AddDate(0, 0, 7))
}

// IsDueThisMonth reports whether the due date falls beyond the this-week
// window but within one calendar month of now. Calendar-month addition uses
// Go's AddDate normalization, so Jan 31 + 1 month lands in early March.
// Together with IsOverdue and IsDueThisWeek the buckets are disjoint.
func (t Task) IsDueThisMonth(now time.Time) bool {
	if t.NextDue == nil {
		return false
	}
	due := *t.NextDue
	return due.After(now.AddDate(0, 0, 7)) && !due.After(now.AddDate(0, 1, 0))
}

// DaysUntilDue returns the whole-day distance between the start of now's day
// and the start of the due date's day. A task due at 00:01 today reports 0,
// not -1. The second return is false when no due date is set. Both days are
// taken in now's location so a storage-loaded UTC due date counts the same
// days as a freshly created local one.
func (t Task) DaysUntilDue(now time.Time) (int, bool) {
	if t.NextDue == nil {
		return 0, false
	}
	from := startOfDay(now)
	to := startOfDay(t.NextDue.In(now.Location()))
	// Rounding keeps DST-shortened or -lengthened civil days at one day.
	return int(math.Round(to.Sub(from).Hours() / 24)), true
}

// EnsureNextDue seeds the due date when it is missing, anchored on the last
// completion if there is one, otherwise on now. No-op when already set.
func (t *Task) EnsureNextDue(now time.Time) {
	if t.NextDue != nil {
		return
	}
	t.RefreshNextDue(now)
}

// RefreshNextDue unconditionally recomputes the due date from the last
// completion (or now, if never completed) plus one recurrence interval.
// Called whenever the frequency changes.
func (t *Task) RefreshNextDue(now time.Time) {
	anchor := now
	if t.LastCompleted != nil {
		anchor = *t.LastCompleted
	}
	due := anchor.AddDate(0, 0, t.Frequency.Days())
	t.NextDue = &due
}

// MarkComplete records a completion at the given time, rolls the due date
// forward one interval from it, and returns the new history record.
// Completing a disabled or overdue task is allowed.
func (t *Task) MarkComplete(recordID, notes string, completedAt time.Time) CompletionRecord {
	record := CompletionRecord{
		ID:          recordID,
		TaskID:      t.ID,
		CompletedAt: completedAt,
		Notes:       notes,
	}
	t.LastCompleted = &completedAt
	due := completedAt.AddDate(0, 0, t.Frequency.Days())
	t.NextDue = &due
	return record
}

func startOfDay(v time.Time) time.Time {
	y, m, d := v.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, v.Location())
}
