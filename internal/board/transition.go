package board

import (
	"github.com/JheyDev/Kanban/internal/model"
)

// The functions in this file are the only places that change a task's
// status. Each keeps IsCompleted equal to (Status == done) and keeps
// PreviousStatus set to a non-done column exactly while the task is done.

// MoveTo drops the task into column.
func MoveTo(t model.Task, column model.Status) model.Task {
	if column == model.StatusDone {
		if t.Status != model.StatusDone {
			t.PreviousStatus = t.Status
			if !t.PreviousStatus.Valid() {
				t.PreviousStatus = model.StatusBacklog
			}
		}
	} else {
		t.PreviousStatus = ""
	}
	t.Status = column
	t.IsCompleted = column == model.StatusDone
	return t
}

// ToggleCompletion marks an open task done, or reopens a done task in the
// column it was completed from.
func ToggleCompletion(t model.Task) model.Task {
	if !t.IsCompleted {
		return MoveTo(t, model.StatusDone)
	}

	restore := t.PreviousStatus
	if !restore.Valid() || restore == model.StatusDone {
		restore = model.StatusBacklog
	}
	t.Status = restore
	t.PreviousStatus = ""
	t.IsCompleted = false
	return t
}

// NewTask builds an unsaved task from a validated form.
func NewTask(f TaskForm) model.Task {
	f = f.Normalize()
	t := model.Task{Status: model.StatusBacklog, Comments: []model.Comment{}}
	t = fill(t, f)
	if f.Status != "" && f.Status != t.Status {
		t = MoveTo(t, f.Status)
	}
	return t
}

// ApplyForm copies the edit form onto t. A status change goes through
// MoveTo so editing a task into or out of done records or clears the
// restorable status just like dragging it would.
func ApplyForm(t model.Task, f TaskForm) model.Task {
	f = f.Normalize()
	t = fill(t, f)
	if f.Status != "" && f.Status != t.Status {
		t = MoveTo(t, f.Status)
	}
	t.IsCompleted = t.Status == model.StatusDone
	return t
}

func fill(t model.Task, f TaskForm) model.Task {
	t.Title = f.Title
	t.Description = f.Description
	t.Type = f.Type
	t.Urgency = f.Urgency
	t.EstimatedDue = f.EstimatedDue
	t.Responsible = f.Responsible
	t.Observation = f.Observation
	t.ReporterName = f.ReporterName
	return t
}
