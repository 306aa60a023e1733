package board

import (
	"strings"
	"time"

	"github.com/JheyDev/Kanban/internal/model"
)

// TaskForm is the user-submitted content of the add/edit task form.
type TaskForm struct {
	Title        string
	Description  string
	Type         model.TaskType
	Urgency      model.Urgency
	Status       model.Status // empty means backlog on create, unchanged on edit
	EstimatedDue *time.Time
	Responsible  string
	Observation  string
	ReporterName string
}

// Normalize trims free text and drops sub-minute precision from the due date.
func (f TaskForm) Normalize() TaskForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Responsible = strings.TrimSpace(f.Responsible)
	f.Observation = strings.TrimSpace(f.Observation)
	f.ReporterName = strings.TrimSpace(f.ReporterName)
	if f.EstimatedDue != nil {
		due := f.EstimatedDue.UTC().Truncate(time.Minute)
		f.EstimatedDue = &due
	}
	return f
}

// Validate checks the form in field order and reports the first problem.
func (f TaskForm) Validate() error {
	f = f.Normalize()
	switch {
	case f.Title == "":
		return &ValidationError{Field: "title", Reason: "is required"}
	case f.Description == "":
		return &ValidationError{Field: "description", Reason: "is required"}
	case f.Type == "":
		return &ValidationError{Field: "type", Reason: "is required"}
	case !f.Type.Valid():
		return &ValidationError{Field: "type", Reason: "has an unknown value"}
	case f.Urgency == "":
		return &ValidationError{Field: "urgency", Reason: "is required"}
	case !f.Urgency.Valid():
		return &ValidationError{Field: "urgency", Reason: "has an unknown value"}
	case f.Status != "" && !f.Status.Valid():
		return &ValidationError{Field: "status", Reason: "has an unknown value"}
	}
	return nil
}
