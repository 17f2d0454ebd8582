package query

import (
	"testing"
	"time"

	"taskdeck/internal/task"
)

type sliceSource []task.Task

func (s sliceSource) Tasks() []task.Task { return s }

// now is a Tuesday at 10:00 local time.
var now = time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

func newQueries(tasks ...task.Task) *Queries {
	q := New(sliceSource(tasks))
	q.now = func() time.Time { return now }
	return q
}

func mkTask(id string, st task.Status, p task.Priority, due *time.Time) task.Task {
	return task.Task{
		ID:        id,
		Title:     "task " + id,
		Status:    st,
		Priority:  p,
		DueDate:   due,
		Tags:      []string{},
		CreatedAt: now.AddDate(0, 0, -10),
		UpdatedAt: now.AddDate(0, 0, -10),
	}
}

func at(t time.Time) *time.Time { return &t }

func TestByID(t *testing.T) {
	q := newQueries(
		mkTask("a", task.StatusPending, task.PriorityLow, nil),
		mkTask("b", task.StatusPending, task.PriorityLow, nil),
	)

	if got, ok := q.ByID("b"); !ok || got.ID != "b" {
		t.Fatalf("ByID failed: %v %v", got, ok)
	}
	if _, ok := q.ByID("missing"); ok {
		t.Fatal("missing id must report not found")
	}
}

func TestByPrefix(t *testing.T) {
	q := newQueries(
		mkTask("abc-123", task.StatusPending, task.PriorityLow, nil),
		mkTask("abd-456", task.StatusPending, task.PriorityLow, nil),
	)

	if got, ok := q.ByPrefix("abc"); !ok || got.ID != "abc-123" {
		t.Fatalf("unique prefix must resolve: %v %v", got, ok)
	}
	if _, ok := q.ByPrefix("ab"); ok {
		t.Fatal("ambiguous prefix must not resolve")
	}
	if _, ok := q.ByPrefix("zzz"); ok {
		t.Fatal("unknown prefix must not resolve")
	}
}

func TestByStatusAndPriority(t *testing.T) {
	q := newQueries(
		mkTask("a", task.StatusPending, task.PriorityHigh, nil),
		mkTask("b", task.StatusCompleted, task.PriorityHigh, nil),
		mkTask("c", task.StatusPending, task.PriorityLow, nil),
	)

	if got := q.ByStatus(task.StatusPending); len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("ByStatus wrong: %v", got)
	}
	if got := q.ByPriority(task.PriorityHigh); len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("ByPriority wrong: %v", got)
	}
}

func TestOverdueExcludesCompleted(t *testing.T) {
	past := at(now.AddDate(0, 0, -5))
	future := at(now.AddDate(0, 0, 5))
	q := newQueries(
		mkTask("late", task.StatusPending, task.PriorityLow, past),
		mkTask("done-late", task.StatusCompleted, task.PriorityLow, past),
		mkTask("upcoming", task.StatusPending, task.PriorityLow, future),
		mkTask("undated", task.StatusPending, task.PriorityLow, nil),
	)

	got := q.Overdue()
	if len(got) != 1 || got[0].ID != "late" {
		t.Fatalf("overdue wrong: %v", got)
	}
}

func TestDueTodayWindow(t *testing.T) {
	todayAfternoon := at(time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local))
	tomorrowMorning := at(time.Date(2026, 9, 2, 6, 0, 0, 0, time.Local))
	q := newQueries(
		mkTask("today", task.StatusPending, task.PriorityLow, todayAfternoon),
		mkTask("tomorrow", task.StatusPending, task.PriorityLow, tomorrowMorning),
	)

	got := q.DueToday()
	if len(got) != 1 || got[0].ID != "today" {
		t.Fatalf("due today wrong: %v", got)
	}
}

func TestDueTodayIgnoresStatus(t *testing.T) {
	// Unlike Overdue, a completed task due today still counts.
	todayNoon := at(time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local))
	q := newQueries(
		mkTask("done-today", task.StatusCompleted, task.PriorityLow, todayNoon),
	)

	if got := q.DueToday(); len(got) != 1 {
		t.Fatalf("completed task due today must be included: %v", got)
	}
}

func TestDueTodayBoundaries(t *testing.T) {
	startOfDay := at(time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local))
	startOfTomorrow := at(time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local))
	q := newQueries(
		mkTask("midnight", task.StatusPending, task.PriorityLow, startOfDay),
		mkTask("next-midnight", task.StatusPending, task.PriorityLow, startOfTomorrow),
	)

	got := q.DueToday()
	if len(got) != 1 || got[0].ID != "midnight" {
		t.Fatalf("window must be [start of today, start of tomorrow): %v", got)
	}
}

func TestStats(t *testing.T) {
	past := at(now.AddDate(0, 0, -2))
	todayNoon := at(time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local))
	q := newQueries(
		mkTask("a", task.StatusPending, task.PriorityLow, past),
		mkTask("b", task.StatusInProgress, task.PriorityLow, nil),
		mkTask("c", task.StatusCompleted, task.PriorityLow, todayNoon),
		mkTask("d", task.StatusCompleted, task.PriorityLow, nil),
	)

	st := q.Stats()
	want := Stats{Total: 4, Pending: 1, InProgress: 1, Completed: 2, Overdue: 1, DueToday: 1, CompletionRate: 50}
	if st != want {
		t.Fatalf("stats wrong:\ngot  %+v\nwant %+v", st, want)
	}
}

func TestStatsEmpty(t *testing.T) {
	st := newQueries().Stats()
	if st.Total != 0 || st.CompletionRate != 0 {
		t.Fatalf("empty stats wrong: %+v", st)
	}
}
