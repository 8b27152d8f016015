package cachemock

import "context"

// Progress is a function-backed mock for the progress cache interfaces in the
// project and deliverable usecases. Nil funcs behave like a cold cache.
type Progress struct {
	GetFn        func(ctx context.Context, projectID string) (int, bool, error)
	SetFn        func(ctx context.Context, projectID string, progress int) error
	InvalidateFn func(ctx context.Context, projectID string) error
}

func (m *Progress) Get(ctx context.Context, projectID string) (int, bool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, projectID)
	}
	return 0, false, nil
}
func (m *Progress) Set(ctx context.Context, projectID string, progress int) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, projectID, progress)
	}
	return nil
}
func (m *Progress) Invalidate(ctx context.Context, projectID string) error {
	if m.InvalidateFn != nil {
		return m.InvalidateFn(ctx, projectID)
	}
	return nil
}
