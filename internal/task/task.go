// Package task defines the task entity and the filter/sort vocabulary
// shared by the store, the derived view, and the UI.
package task

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Rank defines the total order pending < in_progress < completed.
func (s Status) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	}
	return -1
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank defines the total order low < medium < high.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	}
	return -1
}

// Task is the sole persistent entity. Times round-trip through JSON as
// RFC3339 strings; encoding/json restores them as time.Time on load.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Clone returns a copy that shares no mutable state with the receiver.
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	return c
}

var ErrValidation = errors.New("validation failed")

// CreateInput carries the caller-supplied fields for a new task.
type CreateInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	Tags        []string
}

func (in CreateInput) Validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	if !in.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, in.Priority)
	}
	return nil
}

// UpdateInput is a partial update. Nil fields are left untouched;
// ClearDueDate removes an existing due date.
type UpdateInput struct {
	Title        *string
	Description  *string
	Status       *Status
	Priority     *Priority
	DueDate      *time.Time
	ClearDueDate bool
	Tags         []string
}

func (in UpdateInput) Validate() error {
	if in.Title != nil && *in.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if in.Status != nil && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *in.Status)
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, *in.Priority)
	}
	return nil
}

// Apply merges the partial update into t. The caller refreshes UpdatedAt.
func (in UpdateInput) Apply(t *Task) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.ClearDueDate {
		t.DueDate = nil
	} else if in.DueDate != nil {
		due := *in.DueDate
		t.DueDate = &due
	}
	if in.Tags != nil {
		t.Tags = append([]string(nil), in.Tags...)
	}
}
