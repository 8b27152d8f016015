package ledger

import (
	"context"
	"time"
)

// Range bounds a query by entry date; nil ends are open.
type Range struct {
	From *time.Time
	To   *time.Time
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByEntryID(ctx context.Context, entryID string) (*Entry, error)
	ListByProject(ctx context.Context, projectID string, r Range) ([]Entry, error)
	ListByProjects(ctx context.Context, projectIDs []string, r Range) ([]Entry, error)
	List(ctx context.Context, r Range) ([]Entry, error)
}
