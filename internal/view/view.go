// Package view computes the visible ordered task subset from the
// canonical collection and the active criteria. Apply is pure; Derived
// wraps it with subscription-driven invalidation.
package view

import (
	"sort"
	"strings"
	"time"

	"taskdeck/internal/task"
)

// Apply filters tasks by the conjunction of all supplied criteria, then
// sorts by the sort field. The input slice is not modified.
func Apply(tasks []task.Task, f task.Filters, s task.Sort) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, f) {
			out = append(out, t)
		}
	}
	sortTasks(out, s)
	return out
}

func matches(t task.Task, f task.Filters) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		inTitle := strings.Contains(strings.ToLower(t.Title), needle)
		inDesc := t.Description != "" && strings.Contains(strings.ToLower(t.Description), needle)
		if !inTitle && !inDesc {
			return false
		}
	}
	if len(f.Tags) > 0 && !intersects(t.Tags, f.Tags) {
		return false
	}
	if f.DueDateRange != nil && t.DueDate != nil {
		// Range bounds only apply to tasks that have a due date.
		if f.DueDateRange.Start != nil && t.DueDate.Before(*f.DueDateRange.Start) {
			return false
		}
		if f.DueDateRange.End != nil && t.DueDate.After(*f.DueDateRange.End) {
			return false
		}
	}
	return true
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortTasks orders tasks by the sort field. Tasks without a value for the
// field sort strictly after tasks with one, in both directions. Ties keep
// their original relative order.
func sortTasks(tasks []task.Task, s task.Sort) {
	sort.SliceStable(tasks, func(i, j int) bool {
		c, aok, bok := compareField(tasks[i], tasks[j], s.Field)
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		if s.Order == task.Desc {
			c = -c
		}
		return c < 0
	})
}

// compareField compares a and b on one field with a type-appropriate
// comparator: chronological for times, rank order for the enums,
// lexicographic for strings. aok/bok report whether each side has a
// value for the field at all.
func compareField(a, b task.Task, field task.SortField) (c int, aok, bok bool) {
	switch field {
	case task.SortByID:
		return strings.Compare(a.ID, b.ID), true, true
	case task.SortByTitle:
		return strings.Compare(a.Title, b.Title), true, true
	case task.SortByDescription:
		return strings.Compare(a.Description, b.Description), a.Description != "", b.Description != ""
	case task.SortByStatus:
		return cmpInt(a.Status.Rank(), b.Status.Rank()), true, true
	case task.SortByPriority:
		return cmpInt(a.Priority.Rank(), b.Priority.Rank()), true, true
	case task.SortByDueDate:
		if a.DueDate == nil || b.DueDate == nil {
			return 0, a.DueDate != nil, b.DueDate != nil
		}
		return cmpTime(*a.DueDate, *b.DueDate), true, true
	case task.SortByUpdatedAt:
		return cmpTime(a.UpdatedAt, b.UpdatedAt), true, true
	default:
		return cmpTime(a.CreatedAt, b.CreatedAt), true, true
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
