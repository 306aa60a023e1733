// Package board keeps the visual board consistent with the task store and
// turns user gestures into task state transitions.
package board

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/JheyDev/Kanban/internal/model"
	"github.com/JheyDev/Kanban/internal/repository"

	"github.com/google/uuid"
)

// TaskStore is the task collection the controller mutates.
type TaskStore interface {
	All() []*model.Task
	FindByID(id string) (*model.Task, error)
	Upsert(ctx context.Context, task model.Task) (*model.Task, bool, error)
	Update(ctx context.Context, id string, fn func(*model.Task) error) (*model.Task, error)
	AppendComment(ctx context.Context, id string, c model.Comment) (*model.Task, error)
	Remove(ctx context.Context, id string) error
	Restore(ctx context.Context) error
}

var _ TaskStore = (*repository.TaskRepository)(nil)

// Controller owns the drag state and the open detail view. Every exported
// method runs to completion under one lock, so concurrent callers observe
// the same one-event-at-a-time behavior as a UI event loop.
type Controller struct {
	mu sync.Mutex

	store  TaskStore
	view   Renderer
	now    func() time.Time
	nextID func() string
	author string

	dragged     string
	detailsOpen string
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithCommentAuthor sets the author recorded on new comments.
func WithCommentAuthor(author string) Option {
	return func(c *Controller) { c.author = author }
}

// WithCommentIDs overrides comment id generation.
func WithCommentIDs(next func() string) Option {
	return func(c *Controller) { c.nextID = next }
}

func NewController(store TaskStore, view Renderer, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		view:   view,
		now:    time.Now,
		nextID: func() string { return "comment-" + uuid.NewString() },
		author: "Client",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load restores the store and renders every task.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Restore(ctx); err != nil {
		return err
	}
	for _, t := range c.store.All() {
		if err := c.render(t); err != nil {
			log.Printf("⚠️  Could not render task %s: %v", t.ID, err)
		}
	}
	return nil
}

// Render places the task's card in the column matching its status.
func (c *Controller) Render(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.find(id, "render")
	if err != nil {
		return err
	}
	return c.render(t)
}

func (c *Controller) render(t *model.Task) error {
	column, ok := c.view.CardColumn(t.ID)
	if ok && column != t.Status {
		c.view.RemoveCard(t.ID)
		ok = false
	}
	if !ok {
		if err := c.view.CreateCard(t.Status, t.ID); err != nil {
			return fmt.Errorf("render %s: %w", t.ID, err)
		}
	}
	c.view.FillCard(CardFor(t))
	return nil
}

// Tasks returns a copy of every task in insertion order.
func (c *Controller) Tasks() []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := c.store.All()
	out := make([]model.Task, len(all))
	for i, t := range all {
		out[i] = t.Clone()
	}
	return out
}

func (c *Controller) Task(id string) (model.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.store.FindByID(id)
	if err != nil {
		return model.Task{}, err
	}
	return t.Clone(), nil
}

// Comments returns the task's comments newest first.
func (c *Controller) Comments(id string) ([]model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	return t.CommentsNewestFirst(), nil
}

// Create validates the form and adds a new task.
func (c *Controller) Create(ctx context.Context, form TaskForm) (model.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := form.Validate(); err != nil {
		return model.Task{}, err
	}

	t, _, err := c.store.Upsert(ctx, NewTask(form))
	if err != nil {
		return model.Task{}, err
	}
	return c.rendered(t)
}

// Edit applies the form to an existing task.
func (c *Controller) Edit(ctx context.Context, id string, form TaskForm) (model.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := form.Validate(); err != nil {
		return model.Task{}, err
	}
	existing, err := c.find(id, "edit")
	if err != nil {
		return model.Task{}, err
	}

	t, _, err := c.store.Upsert(ctx, ApplyForm(*existing, form))
	if err != nil {
		return model.Task{}, err
	}
	if c.detailsOpen == id {
		c.closeDetails()
	}
	return c.rendered(t)
}

// Move drops the task into column.
func (c *Controller) Move(ctx context.Context, id string, column model.Status) (model.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.move(ctx, id, column)
}

func (c *Controller) move(ctx context.Context, id string, column model.Status) (model.Task, error) {
	if !column.Valid() {
		return model.Task{}, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	return c.transition(ctx, id, "move", func(t model.Task) model.Task {
		return MoveTo(t, column)
	})
}

// ToggleComplete marks the task done, or reopens it in its previous column.
func (c *Controller) ToggleComplete(ctx context.Context, id string) (model.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.transition(ctx, id, "toggle completion", ToggleCompletion)
}

func (c *Controller) transition(ctx context.Context, id, op string, fn func(model.Task) model.Task) (model.Task, error) {
	if _, err := c.find(id, op); err != nil {
		return model.Task{}, err
	}

	t, err := c.store.Update(ctx, id, func(t *model.Task) error {
		*t = fn(*t)
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	if c.detailsOpen == id {
		c.showDetails(t)
	}
	return c.rendered(t)
}

// Remove deletes a confirmed task, its comments and its card. It reports
// false without error when the task no longer exists.
func (c *Controller) Remove(ctx context.Context, id string, confirmed bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !confirmed {
		return false, ErrRemovalNotConfirmed
	}
	if _, err := c.find(id, "remove"); err != nil {
		return false, nil
	}

	if err := c.store.Remove(ctx, id); err != nil {
		return false, err
	}
	c.view.RemoveCard(id)
	if c.detailsOpen == id {
		c.closeDetails()
	}
	if c.dragged == id {
		c.dragged = ""
	}
	return true, nil
}

// AddComment appends a comment to the task. Blank text is ignored and
// yields a nil comment.
func (c *Controller) AddComment(ctx context.Context, id, text string) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if _, err := c.find(id, "comment"); err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID:        c.nextID(),
		Text:      text,
		Author:    c.author,
		Timestamp: c.now().UTC(),
	}
	if _, err := c.store.AppendComment(ctx, id, comment); err != nil {
		return nil, err
	}
	if c.detailsOpen == id {
		c.view.PrependComment(comment)
	}
	return &comment, nil
}

// LoadComments redraws the visible comment list for the task, newest on top.
func (c *Controller) LoadComments(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.find(id, "load comments")
	if err != nil {
		c.view.ClearComments()
		return err
	}
	c.loadComments(t)
	return nil
}

func (c *Controller) loadComments(t *model.Task) {
	c.view.ClearComments()
	for _, comment := range t.Comments {
		c.view.PrependComment(comment)
	}
}

// OpenDetails shows the detail view for the task together with its comments.
func (c *Controller) OpenDetails(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.find(id, "open details")
	if err != nil {
		c.closeDetails()
		return err
	}
	c.showDetails(t)
	return nil
}

func (c *Controller) showDetails(t *model.Task) {
	c.detailsOpen = t.ID
	c.view.ShowDetails(DetailsFor(t))
	c.loadComments(t)
}

func (c *Controller) CloseDetails() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeDetails()
}

func (c *Controller) closeDetails() {
	c.detailsOpen = ""
	c.view.HideDetails()
	c.view.ClearComments()
}

// DragStart picks up the task's card. Any earlier drag that never ended is
// ended first.
func (c *Controller) DragStart(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.find(id, "drag"); err != nil {
		return err
	}
	c.endDrag()
	c.closeDetails()
	c.dragged = id
	c.view.SetDragging(id, true)
	return nil
}

// DragOver highlights the column under the dragged card.
func (c *Controller) DragOver(column model.Status) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !column.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	c.view.SetHighlight(column, true)
	return nil
}

func (c *Controller) DragLeave(column model.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.SetHighlight(column, false)
}

// Drop moves the dragged task into column. The drag itself stays active
// until DragEnd.
func (c *Controller) Drop(ctx context.Context, column model.Status) (model.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.SetHighlight(column, false)
	if c.dragged == "" {
		return model.Task{}, ErrNoDragInProgress
	}
	return c.move(ctx, c.dragged, column)
}

// DragEnd restores the card and clears every highlight, whether or not a
// drop happened.
func (c *Controller) DragEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.endDrag()
}

func (c *Controller) endDrag() {
	if c.dragged != "" {
		c.view.SetDragging(c.dragged, false)
	}
	c.dragged = ""
	c.view.ClearHighlights()
}

// find resolves id, logging a miss so callers can abort quietly.
func (c *Controller) find(id, op string) (*model.Task, error) {
	t, err := c.store.FindByID(id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		log.Printf("⚠️  Task %q not found, skipping %s", id, op)
	}
	return t, err
}

func (c *Controller) rendered(t *model.Task) (model.Task, error) {
	if err := c.render(t); err != nil {
		return model.Task{}, err
	}
	return t.Clone(), nil
}
