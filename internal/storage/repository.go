package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the persistence contract the engines run against. Completion
// records are append-only: they are written once by the completion engine and
// removed only by the cascade when their task is deleted.
type Repository interface {
	CreateZone(ctx context.Context, in Zone) error
	GetZone(ctx context.Context, id string) (Zone, error)
	UpdateZone(ctx context.Context, in Zone) error
	DeleteZone(ctx context.Context, id string) error
	ListZones(ctx context.Context) ([]Zone, error)

	CreateTask(ctx context.Context, in Task) error
	GetTask(ctx context.Context, id string) (Task, error)
	UpdateTask(ctx context.Context, in Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error)

	CreateCompletion(ctx context.Context, in CompletionRecord) error
	ListCompletions(ctx context.Context, filter CompletionListFilter) ([]CompletionRecord, error)
}
