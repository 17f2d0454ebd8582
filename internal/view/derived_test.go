package view

import (
	"testing"

	"go.uber.org/zap"

	"taskdeck/internal/store"
	"taskdeck/internal/task"
)

type nopKV struct{}

func (nopKV) Save(string, any) error { return nil }
func (nopKV) Load(string, any) error { return nil }
func (nopKV) Remove(string) error    { return nil }

func TestDerivedRecomputesOnStoreChange(t *testing.T) {
	tasks := store.NewTaskStore(nopKV{}, zap.NewNop())
	criteria := store.NewCriteriaStore()
	d := NewDerived(tasks, criteria)

	if got := d.Tasks(); len(got) != 0 {
		t.Fatalf("want empty view, got %d", len(got))
	}

	if _, err := tasks.Create(task.CreateInput{Title: "one", Status: task.StatusPending, Priority: task.PriorityLow}); err != nil {
		t.Fatal(err)
	}
	if got := d.Tasks(); len(got) != 1 || got[0].Title != "one" {
		t.Fatalf("view did not pick up mutation: %v", got)
	}

	st := task.StatusCompleted
	criteria.SetFilters(task.Filters{Status: &st})
	if got := d.Tasks(); len(got) != 0 {
		t.Fatalf("view did not pick up criteria change: %v", got)
	}
}
