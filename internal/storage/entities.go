package storage

import "time"

type Zone struct {
	ID        string
	Name      string
	Icon      string
	SortOrder int
	CreatedAt time.Time
}

type Task struct {
	ID               string
	Name             string
	Description      string
	Frequency        string
	ZoneID           string
	Season           string
	Enabled          bool
	Custom           bool
	LastCompleted    *time.Time
	NextDue          *time.Time
	ReminderTiming   string
	RemindersEnabled bool
	Notes            string
	Icon             string
	CreatedAt        time.Time
}

type CompletionRecord struct {
	ID          string
	TaskID      string
	CompletedAt time.Time
	Notes       string
}

type TaskListFilter struct {
	ZoneID  string
	Season  string
	Custom  *bool
	Enabled *bool
	Limit   int
	Offset  int
}

type CompletionListFilter struct {
	TaskID string
	Limit  int
	Offset int
}
