package view_test

import (
	"testing"
	"time"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/model"
	"github.com/JheyDev/Kanban/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "Not defined", view.FormatTimestamp(nil, "Not defined"))

	ts := time.Date(2025, 7, 4, 15, 5, 0, 0, time.Local)
	assert.Equal(t, "04/07/25 03:05 PM", view.FormatTimestamp(&ts, ""))
}

func TestText_ListsColumnsAndCards(t *testing.T) {
	l := view.NewLayout(model.Columns)
	task := &model.Task{ID: "task-1", Title: "Fix login bug", Type: model.TypeBug, Urgency: model.UrgencyHigh, Status: model.StatusBacklog}
	require.NoError(t, l.CreateCard(model.StatusBacklog, task.ID))
	l.FillCard(board.CardFor(task))

	out := view.Text(l.Snapshot(), 28)

	for _, s := range model.Columns {
		assert.Contains(t, out, s.Label())
	}
	assert.Contains(t, out, "Fix login bug")
	assert.Contains(t, out, "Unassigned")
}

func TestDetailsText(t *testing.T) {
	l := view.NewLayout(model.Columns)
	assert.Empty(t, view.DetailsText(l.Snapshot()))

	task := &model.Task{ID: "task-1", Title: "Fix login bug", Description: "Users can't log in", Status: model.StatusTesting}
	l.ShowDetails(board.DetailsFor(task))
	l.PrependComment(model.Comment{ID: "c1", Text: "Looks good", Author: "Client", Timestamp: time.Now()})

	out := view.DetailsText(l.Snapshot())

	assert.Contains(t, out, "Users can't log in")
	assert.Contains(t, out, "In Testing")
	assert.Contains(t, out, "Looks good")
}
