// Package errs defines the error kinds the lifecycle engine surfaces to its
// callers. Raw storage errors never leave the usecase layer; they are
// translated into one of these before being returned.
package errs

import (
	"fmt"
	"strings"
)

// Violation is a single broken field rule. Constructors collect every
// violation so callers can display all problems at once.
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type ValidationError struct {
	Entity     string      `json:"entity"`
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Rule)
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(parts, "; "))
}

// NewValidation returns nil when there are no violations.
func NewValidation(entity string, violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Violations: violations}
}

type NotFoundError struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

type InvalidTransitionError struct {
	Entity string `json:"entity"`
	From   string `json:"from"`
	To     string `json:"to"`
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition %s -> %s", e.Entity, e.From, e.To)
}

// ConcurrencyConflictError means an atomic write lost to a concurrent
// conflicting write; the caller should re-read and retry.
type ConcurrencyConflictError struct {
	Op  string
	Err error
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: concurrent write conflict", e.Op)
	}
	return fmt.Sprintf("%s: concurrent write conflict: %v", e.Op, e.Err)
}

func (e *ConcurrencyConflictError) Unwrap() error { return e.Err }

// InvariantViolationError is a cross-entity rule that failed at commit time,
// e.g. contract dates drifting outside the project span.
type InvariantViolationError struct {
	Entity string `json:"entity"`
	Rule   string `json:"rule"`
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Entity, e.Rule)
}
