// Package view holds the in-memory board the controller renders into, and
// a terminal rendering of it.
package view

import (
	"fmt"
	"sync"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/model"
)

// CardView is a rendered card.
type CardView struct {
	board.Card
	Dragging bool `json:"dragging"`
}

type ColumnView struct {
	Status      model.Status `json:"status"`
	Title       string       `json:"title"`
	Highlighted bool         `json:"highlighted"`
	Cards       []CardView   `json:"cards"`
}

// Snapshot is a point-in-time copy of the whole board.
type Snapshot struct {
	Columns  []ColumnView    `json:"columns"`
	Details  *board.Details  `json:"details,omitempty"`
	Comments []model.Comment `json:"comments"`
}

// Layout is a board.Renderer that keeps the board in memory.
type Layout struct {
	mu       sync.RWMutex
	columns  []*ColumnView
	byStatus map[model.Status]*ColumnView
	details  *board.Details
	comments []model.Comment
}

var _ board.Renderer = (*Layout)(nil)

// NewLayout builds an empty board with one column per status.
func NewLayout(columns []model.Status) *Layout {
	l := &Layout{byStatus: make(map[model.Status]*ColumnView, len(columns))}
	for _, s := range columns {
		col := &ColumnView{Status: s, Title: s.Label(), Cards: []CardView{}}
		l.columns = append(l.columns, col)
		l.byStatus[s] = col
	}
	return l
}

func (l *Layout) CardColumn(taskID string) (model.Status, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	col, _ := l.locate(taskID)
	if col == nil {
		return "", false
	}
	return col.Status, true
}

func (l *Layout) CreateCard(column model.Status, taskID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	col, ok := l.byStatus[column]
	if !ok {
		return fmt.Errorf("no column %q on the board", column)
	}
	col.Cards = append(col.Cards, CardView{Card: board.Card{TaskID: taskID}})
	return nil
}

func (l *Layout) RemoveCard(taskID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	col, i := l.locate(taskID)
	if col == nil {
		return
	}
	col.Cards = append(col.Cards[:i], col.Cards[i+1:]...)
}

func (l *Layout) FillCard(card board.Card) {
	l.mu.Lock()
	defer l.mu.Unlock()

	col, i := l.locate(card.TaskID)
	if col == nil {
		return
	}
	col.Cards[i].Card = card
}

func (l *Layout) SetDragging(taskID string, dragging bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if col, i := l.locate(taskID); col != nil {
		col.Cards[i].Dragging = dragging
	}
}

func (l *Layout) SetHighlight(column model.Status, on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if col, ok := l.byStatus[column]; ok {
		col.Highlighted = on
	}
}

func (l *Layout) ClearHighlights() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, col := range l.columns {
		col.Highlighted = false
	}
}

func (l *Layout) ShowDetails(details board.Details) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.details = &details
}

func (l *Layout) HideDetails() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.details = nil
}

func (l *Layout) ClearComments() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.comments = nil
}

func (l *Layout) PrependComment(c model.Comment) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.comments = append([]model.Comment{c}, l.comments...)
}

// Snapshot copies the current board.
func (l *Layout) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Snapshot{
		Columns:  make([]ColumnView, len(l.columns)),
		Comments: append([]model.Comment{}, l.comments...),
	}
	for i, col := range l.columns {
		s.Columns[i] = *col
		s.Columns[i].Cards = append([]CardView{}, col.Cards...)
	}
	if l.details != nil {
		d := *l.details
		s.Details = &d
	}
	return s
}

func (l *Layout) locate(taskID string) (*ColumnView, int) {
	for _, col := range l.columns {
		for i, card := range col.Cards {
			if card.TaskID == taskID {
				return col, i
			}
		}
	}
	return nil, -1
}
