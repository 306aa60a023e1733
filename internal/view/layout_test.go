package view_test

import (
	"testing"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/model"
	"github.com/JheyDev/Kanban/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_CardLifecycle(t *testing.T) {
	l := view.NewLayout(model.Columns)

	require.NoError(t, l.CreateCard(model.StatusBacklog, "task-1"))
	l.FillCard(board.Card{TaskID: "task-1", Title: "Fix login bug", StyleClass: "status-backlog"})

	col, ok := l.CardColumn("task-1")
	assert.True(t, ok)
	assert.Equal(t, model.StatusBacklog, col)

	snap := l.Snapshot()
	require.Len(t, snap.Columns, len(model.Columns))
	require.Len(t, snap.Columns[0].Cards, 1)
	assert.Equal(t, "Fix login bug", snap.Columns[0].Cards[0].Title)
	assert.Equal(t, "Backlog", snap.Columns[0].Title)

	l.RemoveCard("task-1")
	_, ok = l.CardColumn("task-1")
	assert.False(t, ok)
	// the earlier snapshot is unaffected
	assert.Len(t, snap.Columns[0].Cards, 1)
}

func TestLayout_CreateCardInUnknownColumn(t *testing.T) {
	l := view.NewLayout(model.Columns)

	err := l.CreateCard(model.Status("archived"), "task-1")

	assert.Error(t, err)
}

func TestLayout_DragCuesAndHighlights(t *testing.T) {
	l := view.NewLayout(model.Columns)
	require.NoError(t, l.CreateCard(model.StatusTesting, "task-1"))

	l.SetDragging("task-1", true)
	l.SetHighlight(model.StatusDone, true)
	l.SetHighlight(model.StatusAnalysis, true)
	l.SetHighlight(model.StatusAnalysis, false)

	snap := l.Snapshot()
	assert.True(t, snap.Columns[3].Cards[0].Dragging)
	assert.True(t, snap.Columns[5].Highlighted)
	assert.False(t, snap.Columns[1].Highlighted)

	l.ClearHighlights()
	assert.False(t, l.Snapshot().Columns[5].Highlighted)
}

func TestLayout_CommentsPrependNewestFirst(t *testing.T) {
	l := view.NewLayout(model.Columns)

	l.ShowDetails(board.Details{TaskID: "task-1", Title: "Fix login bug"})
	l.PrependComment(model.Comment{ID: "c1"})
	l.PrependComment(model.Comment{ID: "c2"})

	snap := l.Snapshot()
	require.NotNil(t, snap.Details)
	assert.Equal(t, "task-1", snap.Details.TaskID)
	assert.Equal(t, "c2", snap.Comments[0].ID)
	assert.Equal(t, "c1", snap.Comments[1].ID)

	l.HideDetails()
	l.ClearComments()
	snap = l.Snapshot()
	assert.Nil(t, snap.Details)
	assert.Empty(t, snap.Comments)
}
