package query

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"taskdeck/internal/store"
	"taskdeck/internal/task"
)

type nopKV struct{}

func (nopKV) Save(string, any) error { return nil }
func (nopKV) Load(string, any) error { return nil }
func (nopKV) Remove(string) error    { return nil }

func TestOverdueReflectsStoreUpdates(t *testing.T) {
	tasks := store.NewTaskStore(nopKV{}, zap.NewNop())
	q := New(tasks)
	q.now = func() time.Time { return now }

	due := now.AddDate(0, 0, -5)
	created, err := tasks.Create(task.CreateInput{
		Title:    "late report",
		Status:   task.StatusPending,
		Priority: task.PriorityHigh,
		DueDate:  &due,
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := q.Overdue(); len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("overdue must see the new task: %v", got)
	}

	st := task.StatusCompleted
	if _, ok, err := tasks.Update(created.ID, task.UpdateInput{Status: &st}); err != nil || !ok {
		t.Fatalf("update failed: ok=%v err=%v", ok, err)
	}

	if got := q.Overdue(); len(got) != 0 {
		t.Fatalf("completing a task must clear it from overdue: %v", got)
	}
	if got := q.ByStatus(task.StatusCompleted); len(got) != 1 {
		t.Fatalf("facade must see the status change: %v", got)
	}
}
