package board_test

import (
	"errors"
	"testing"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/model"

	"github.com/stretchr/testify/assert"
)

func validForm() board.TaskForm {
	return board.TaskForm{
		Title:       "Fix login bug",
		Description: "Users can't log in",
		Type:        model.TypeBug,
		Urgency:     model.UrgencyHigh,
		Status:      model.StatusBacklog,
	}
}

func TestTaskForm_Validate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*board.TaskForm)
		field string
	}{
		{"valid", func(*board.TaskForm) {}, ""},
		{"blank title", func(f *board.TaskForm) { f.Title = "   " }, "title"},
		{"missing description", func(f *board.TaskForm) { f.Description = "" }, "description"},
		{"missing type", func(f *board.TaskForm) { f.Type = "" }, "type"},
		{"unknown type", func(f *board.TaskForm) { f.Type = "chore" }, "type"},
		{"missing urgency", func(f *board.TaskForm) { f.Urgency = "" }, "urgency"},
		{"unknown urgency", func(f *board.TaskForm) { f.Urgency = "urgent" }, "urgency"},
		{"unknown status", func(f *board.TaskForm) { f.Status = "concluido" }, "status"},
		{"empty status", func(f *board.TaskForm) { f.Status = "" }, ""},
		{"title reported first", func(f *board.TaskForm) { f.Title = ""; f.Description = "" }, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.edit(&form)

			err := form.Validate()

			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *board.ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tt.field, verr.Field)
			}
		})
	}
}
