// Package store holds the canonical application state: the ordered task
// collection, the active filter/sort criteria, and the persisted settings.
//
// All stores are owned by the single UI event loop; mutations run to
// completion before the next one starts, so there is no locking.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskdeck/internal/storage"
	"taskdeck/internal/task"
)

// ErrNotFound is returned by Duplicate when the source id does not exist.
// Update and Delete deliberately do not share this behavior: an unknown id
// there is a silent no-op.
var ErrNotFound = errors.New("task not found")

// KV is the durable key-value store the task store persists through.
type KV interface {
	Save(key string, value any) error
	Load(key string, dst any) error
	Remove(key string) error
}

// Pending reports which mutation kinds are currently in flight. The flags
// are independent and only observable from subscriber callbacks, since
// mutations are synchronous.
type Pending struct {
	Creating    bool
	Updating    bool
	Deleting    bool
	Reordering  bool
	Duplicating bool
}

// TaskStore is the sole writer of the task collection. Every mutation
// updates the in-memory list, persists it, then notifies subscribers.
// Persistence failures are logged and swallowed: the in-memory state
// stays authoritative for the running session.
type TaskStore struct {
	kv    KV
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	tasks   []task.Task
	subs    []func()
	pending Pending
}

func NewTaskStore(kv KV, log *zap.Logger) *TaskStore {
	s := &TaskStore{
		kv:    kv,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	var loaded []task.Task
	if err := kv.Load(storage.TasksKey, &loaded); err != nil {
		log.Warn("load tasks, starting empty", zap.Error(err))
		loaded = nil
	}
	for i := range loaded {
		if loaded[i].Tags == nil {
			loaded[i].Tags = []string{}
		}
	}
	s.tasks = loaded
	return s
}

// Tasks returns a snapshot of the collection in canonical order.
func (s *TaskStore) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (s *TaskStore) Len() int { return len(s.tasks) }

// Subscribe registers fn to run after every mutation.
func (s *TaskStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *TaskStore) Pending() Pending { return s.pending }

// Create validates the input, assigns a fresh id and timestamps, and
// appends the task to the end of the collection.
func (s *TaskStore) Create(in task.CreateInput) (task.Task, error) {
	if err := in.Validate(); err != nil {
		return task.Task{}, err
	}
	s.pending.Creating = true
	defer func() { s.pending.Creating = false }()

	now := s.now()
	t := task.Task{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		Tags:        append([]string{}, in.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.DueDate != nil {
		due := *in.DueDate
		t.DueDate = &due
	}
	s.tasks = append(s.tasks, t)
	s.persist()
	s.notify()
	return t.Clone(), nil
}

// Update merges the partial input into the task with the given id and
// refreshes UpdatedAt. An unknown id is a silent no-op: ok is false and
// the collection is untouched.
func (s *TaskStore) Update(id string, in task.UpdateInput) (task.Task, bool, error) {
	if err := in.Validate(); err != nil {
		return task.Task{}, false, err
	}
	s.pending.Updating = true
	defer func() { s.pending.Updating = false }()

	idx := s.index(id)
	if idx < 0 {
		return task.Task{}, false, nil
	}
	in.Apply(&s.tasks[idx])
	s.tasks[idx].UpdatedAt = s.now()
	s.persist()
	s.notify()
	return s.tasks[idx].Clone(), true, nil
}

// Delete removes the task with the given id if present; unknown ids are
// a silent no-op. The collection is persisted either way.
func (s *TaskStore) Delete(id string) {
	s.pending.Deleting = true
	defer func() { s.pending.Deleting = false }()

	idx := s.index(id)
	if idx >= 0 {
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	}
	s.persist()
	s.notify()
}

// Reorder replaces the collection order verbatim. The caller is trusted
// to supply a permutation of the existing tasks.
func (s *TaskStore) Reorder(ordered []task.Task) {
	s.pending.Reordering = true
	defer func() { s.pending.Reordering = false }()

	next := make([]task.Task, len(ordered))
	for i, t := range ordered {
		next[i] = t.Clone()
	}
	s.tasks = next
	s.persist()
	s.notify()
}

// Duplicate copies the task with the given id under a fresh id, with the
// title suffixed " (Copy)" and both timestamps set to now, appended to the
// end. Unlike Update and Delete, an unknown id is an error.
func (s *TaskStore) Duplicate(id string) (task.Task, error) {
	s.pending.Duplicating = true
	defer func() { s.pending.Duplicating = false }()

	idx := s.index(id)
	if idx < 0 {
		return task.Task{}, ErrNotFound
	}
	now := s.now()
	dup := s.tasks[idx].Clone()
	dup.ID = s.newID()
	dup.Title = dup.Title + " (Copy)"
	dup.CreatedAt = now
	dup.UpdatedAt = now
	s.tasks = append(s.tasks, dup)
	s.persist()
	s.notify()
	return dup.Clone(), nil
}

func (s *TaskStore) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) persist() {
	if err := s.kv.Save(storage.TasksKey, s.tasks); err != nil {
		s.log.Warn("persist tasks", zap.Error(err))
	}
}

func (s *TaskStore) notify() {
	for _, fn := range s.subs {
		fn()
	}
}
