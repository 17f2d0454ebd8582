// Package query provides read-only projections over the task collection,
// independent of the active filter criteria. The dashboard counts come
// from here, not from the filtered list view.
package query

import (
	"time"

	"taskdeck/internal/task"
)

type Source interface {
	Tasks() []task.Task
}

type Queries struct {
	src Source
	now func() time.Time
}

func New(src Source) *Queries {
	return &Queries{src: src, now: time.Now}
}

func (q *Queries) ByID(id string) (task.Task, bool) {
	for _, t := range q.src.Tasks() {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// ByPrefix resolves a task by unique id prefix, for CLI ergonomics.
// ok is false when the prefix matches zero or several tasks.
func (q *Queries) ByPrefix(prefix string) (task.Task, bool) {
	var found task.Task
	n := 0
	for _, t := range q.src.Tasks() {
		if len(t.ID) >= len(prefix) && t.ID[:len(prefix)] == prefix {
			found = t
			n++
		}
	}
	return found, n == 1
}

func (q *Queries) ByStatus(st task.Status) []task.Task {
	var out []task.Task
	for _, t := range q.src.Tasks() {
		if t.Status == st {
			out = append(out, t)
		}
	}
	return out
}

func (q *Queries) ByPriority(p task.Priority) []task.Task {
	var out []task.Task
	for _, t := range q.src.Tasks() {
		if t.Priority == p {
			out = append(out, t)
		}
	}
	return out
}

// Overdue returns tasks with a due date in the past that are not yet
// completed.
func (q *Queries) Overdue() []task.Task {
	now := q.now()
	var out []task.Task
	for _, t := range q.src.Tasks() {
		if t.DueDate != nil && t.DueDate.Before(now) && t.Status != task.StatusCompleted {
			out = append(out, t)
		}
	}
	return out
}

// DueToday returns tasks due within [start of today, start of tomorrow)
// in local time. Status is deliberately ignored here, so a completed task
// due today still counts.
func (q *Queries) DueToday() []task.Task {
	now := q.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	var out []task.Task
	for _, t := range q.src.Tasks() {
		if t.DueDate == nil {
			continue
		}
		if !t.DueDate.Before(today) && t.DueDate.Before(tomorrow) {
			out = append(out, t)
		}
	}
	return out
}

// Stats aggregates the dashboard counters.
type Stats struct {
	Total          int
	Pending        int
	InProgress     int
	Completed      int
	Overdue        int
	DueToday       int
	CompletionRate float64
}

func (q *Queries) Stats() Stats {
	st := Stats{
		Total:      len(q.src.Tasks()),
		Pending:    len(q.ByStatus(task.StatusPending)),
		InProgress: len(q.ByStatus(task.StatusInProgress)),
		Completed:  len(q.ByStatus(task.StatusCompleted)),
		Overdue:    len(q.Overdue()),
		DueToday:   len(q.DueToday()),
	}
	if st.Total > 0 {
		st.CompletionRate = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}
