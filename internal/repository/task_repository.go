package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/JheyDev/Kanban/internal/model"
	"github.com/JheyDev/Kanban/internal/storage"
)

const idPrefix = "task-"

// TaskRepository owns the canonical task list and mirrors it, as one JSON
// document, into a key/value store after every mutation.
//
// It is not safe for concurrent use; the board controller serializes access.
type TaskRepository struct {
	kv      storage.KeyValueStore
	key     string
	tasks   []*model.Task
	counter int
	now     func() time.Time
}

type Option func(*TaskRepository)

// WithClock overrides the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *TaskRepository) { r.now = now }
}

func NewTaskRepository(kv storage.KeyValueStore, key string, opts ...Option) *TaskRepository {
	r := &TaskRepository{
		kv:    kv,
		key:   key,
		tasks: []*model.Task{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// All returns the tasks in insertion order.
func (r *TaskRepository) All() []*model.Task {
	out := make([]*model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(id string) (*model.Task, error) {
	if i := r.indexOf(id); i >= 0 {
		return r.tasks[i], nil
	}
	return nil, ErrTaskNotFound
}

// Upsert creates the task when its id is empty or unknown, assigning a
// fresh id, or overwrites the mutable fields of the existing record in place.
// The boolean reports whether a task was created.
func (r *TaskRepository) Upsert(ctx context.Context, task model.Task) (*model.Task, bool, error) {
	if existing, err := r.FindByID(task.ID); task.ID != "" && err == nil {
		updated, err := r.Update(ctx, existing.ID, func(t *model.Task) error {
			t.Title = task.Title
			t.Description = task.Description
			t.Type = task.Type
			t.Urgency = task.Urgency
			t.EstimatedDue = task.EstimatedDue
			t.Responsible = task.Responsible
			t.Observation = task.Observation
			t.Status = task.Status
			t.IsCompleted = task.IsCompleted
			t.PreviousStatus = task.PreviousStatus
			t.ReporterName = task.ReporterName
			return nil
		})
		return updated, false, err
	}

	r.counter++
	created := task
	created.ID = idPrefix + strconv.Itoa(r.counter)
	if created.CreationDate.IsZero() {
		created.CreationDate = r.now().UTC()
	}
	if created.Comments == nil {
		created.Comments = []model.Comment{}
	}

	r.tasks = append(r.tasks, &created)
	if err := r.Persist(ctx); err != nil {
		// The counter is not rolled back: ids are never reused.
		r.tasks = r.tasks[:len(r.tasks)-1]
		return nil, false, err
	}
	return &created, true, nil
}

// Update applies fn to the task and persists the result. If fn or the write
// fails, the task is left exactly as it was.
func (r *TaskRepository) Update(ctx context.Context, id string, fn func(*model.Task) error) (*model.Task, error) {
	task, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	before := *task
	next := *task
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.ID = before.ID
	next.CreationDate = before.CreationDate

	*task = next
	if err := r.Persist(ctx); err != nil {
		*task = before
		return nil, err
	}
	return task, nil
}

// AppendComment adds c to the end of the task's comment list.
func (r *TaskRepository) AppendComment(ctx context.Context, id string, c model.Comment) (*model.Task, error) {
	return r.Update(ctx, id, func(t *model.Task) error {
		t.Comments = append(t.Comments[:len(t.Comments):len(t.Comments)], c)
		return nil
	})
}

// Remove deletes a task and its comments. Removing an unknown id is a no-op.
func (r *TaskRepository) Remove(ctx context.Context, id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return nil
	}

	before := r.tasks
	next := make([]*model.Task, 0, len(r.tasks)-1)
	next = append(next, r.tasks[:i]...)
	next = append(next, r.tasks[i+1:]...)

	r.tasks = next
	if err := r.Persist(ctx); err != nil {
		r.tasks = before
		return err
	}
	return nil
}

// Persist writes the full task list to the store.
func (r *TaskRepository) Persist(ctx context.Context) error {
	data, err := json.Marshal(r.tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

// Restore replaces the in-memory list with the stored one, repairing
// completion state and advancing the id counter past every stored id.
func (r *TaskRepository) Restore(ctx context.Context) error {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if !ok {
		r.tasks = []*model.Task{}
		return nil
	}

	var stored []*model.Task
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	tasks := make([]*model.Task, 0, len(stored))
	seen := make(map[string]bool, len(stored))
	var unnamed []*model.Task
	for _, t := range stored {
		if t == nil {
			continue
		}
		if t.ID == "" {
			unnamed = append(unnamed, t)
		} else if seen[t.ID] {
			log.Printf("⚠️  Dropping duplicate stored task %q", t.ID)
			continue
		}
		seen[t.ID] = true

		repair(t)
		if n, ok := idNumber(t.ID); ok && n > r.counter {
			r.counter = n
		}
		tasks = append(tasks, t)
	}

	// Ids are handed out only once the counter is past every stored id.
	for _, t := range unnamed {
		r.counter++
		t.ID = idPrefix + strconv.Itoa(r.counter)
		log.Printf("⚠️  Stored task without id restored as %s", t.ID)
	}

	r.tasks = tasks
	return nil
}

// repair realigns a stored task with the completion invariants.
func repair(t *model.Task) {
	if !t.Status.Valid() {
		log.Printf("⚠️  Task %q has unknown status %q, moving it to %s", t.ID, t.Status, model.StatusBacklog)
		t.Status = model.StatusBacklog
	}
	if t.Status == model.StatusDone {
		if !t.PreviousStatus.Valid() || t.PreviousStatus == model.StatusDone {
			t.PreviousStatus = model.StatusBacklog
		}
	} else {
		t.PreviousStatus = ""
	}
	t.IsCompleted = t.Status == model.StatusDone
	if t.Comments == nil {
		t.Comments = []model.Comment{}
	}
}

func idNumber(id string) (int, bool) {
	suffix, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r *TaskRepository) indexOf(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
