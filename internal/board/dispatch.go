package board

import (
	"context"
	"fmt"

	"github.com/JheyDev/Kanban/internal/model"
)

// Intent is one user action on the board.
type Intent interface {
	intent()
}

type CreateIntent struct {
	Form TaskForm
}

type EditIntent struct {
	TaskID string
	Form   TaskForm
}

type MoveIntent struct {
	TaskID string
	Column model.Status
}

type ToggleCompleteIntent struct {
	TaskID string
}

type RemoveIntent struct {
	TaskID    string
	Confirmed bool
}

type AddCommentIntent struct {
	TaskID string
	Text   string
}

func (CreateIntent) intent()         {}
func (EditIntent) intent()           {}
func (MoveIntent) intent()           {}
func (ToggleCompleteIntent) intent() {}
func (RemoveIntent) intent()         {}
func (AddCommentIntent) intent()     {}

// Result carries whatever the dispatched intent produced.
type Result struct {
	Task    *model.Task
	Comment *model.Comment
	Removed bool
}

// Dispatch routes an intent to the matching controller operation.
func (c *Controller) Dispatch(ctx context.Context, in Intent) (Result, error) {
	switch in := in.(type) {
	case CreateIntent:
		return taskResult(c.Create(ctx, in.Form))
	case EditIntent:
		return taskResult(c.Edit(ctx, in.TaskID, in.Form))
	case MoveIntent:
		return taskResult(c.Move(ctx, in.TaskID, in.Column))
	case ToggleCompleteIntent:
		return taskResult(c.ToggleComplete(ctx, in.TaskID))
	case RemoveIntent:
		removed, err := c.Remove(ctx, in.TaskID, in.Confirmed)
		return Result{Removed: removed}, err
	case AddCommentIntent:
		comment, err := c.AddComment(ctx, in.TaskID, in.Text)
		return Result{Comment: comment}, err
	default:
		return Result{}, fmt.Errorf("unsupported intent %T", in)
	}
}

func taskResult(t model.Task, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Task: &t}, nil
}
