package store

import "taskdeck/internal/task"

// CriteriaStore holds the active filters and sort. It is ephemeral:
// criteria reset to defaults on every launch.
type CriteriaStore struct {
	filters task.Filters
	sort    task.Sort
	subs    []func()
}

func NewCriteriaStore() *CriteriaStore {
	return &CriteriaStore{sort: task.DefaultSort()}
}

func (c *CriteriaStore) Filters() task.Filters { return c.filters }
func (c *CriteriaStore) Sort() task.Sort       { return c.sort }

func (c *CriteriaStore) Subscribe(fn func()) {
	c.subs = append(c.subs, fn)
}

func (c *CriteriaStore) SetFilters(f task.Filters) {
	c.filters = f
	c.notify()
}

func (c *CriteriaStore) SetSort(s task.Sort) {
	if s.Field == "" {
		s.Field = task.SortByCreatedAt
	}
	if s.Order == "" {
		s.Order = task.Desc
	}
	c.sort = s
	c.notify()
}

func (c *CriteriaStore) Reset() {
	c.filters = task.Filters{}
	c.sort = task.DefaultSort()
	c.notify()
}

func (c *CriteriaStore) notify() {
	for _, fn := range c.subs {
		fn()
	}
}
