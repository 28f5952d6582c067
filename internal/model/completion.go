package model

import (
	"errors"
	"strings"
	"time"
)

// CompletionRecord is one entry in a task's completion history. Records are
// created by MarkComplete, immutable afterwards, and deleted only together
// with their owning task.
type CompletionRecord struct {
	ID          string
	TaskID      string
	CompletedAt time.Time
	Notes       string
}

func (r CompletionRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: completion record id is required")
	}
	if strings.TrimSpace(r.TaskID) == "" {
		return errors.New("model: completion record task_id is required")
	}
	if r.CompletedAt.IsZero() {
		return errors.New("model: completion record completed_at is required")
	}
	return nil
}
