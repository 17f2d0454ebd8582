package view

import "taskdeck/internal/task"

type TaskSource interface {
	Tasks() []task.Task
	Subscribe(func())
}

type CriteriaSource interface {
	Filters() task.Filters
	Sort() task.Sort
	Subscribe(func())
}

// Derived memoizes Apply over the two stores and recomputes only after
// one of them reports a change. Recomputation is a pure performance
// concern; callers may drop the cache and call Apply directly.
type Derived struct {
	tasks    TaskSource
	criteria CriteriaSource
	cached   []task.Task
	dirty    bool
}

func NewDerived(ts TaskSource, cs CriteriaSource) *Derived {
	d := &Derived{tasks: ts, criteria: cs, dirty: true}
	ts.Subscribe(d.invalidate)
	cs.Subscribe(d.invalidate)
	return d
}

func (d *Derived) invalidate() { d.dirty = true }

// Tasks returns the visible ordered subset, recomputing if stale.
func (d *Derived) Tasks() []task.Task {
	if d.dirty {
		d.cached = Apply(d.tasks.Tasks(), d.criteria.Filters(), d.criteria.Sort())
		d.dirty = false
	}
	return d.cached
}
