package model

import (
	"time"
)

// Task is one card on the board.
//
// IsCompleted mirrors Status == StatusDone. PreviousStatus is only set while
// the task is done and holds the column to restore when completion is undone.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Type           TaskType   `json:"type"`
	Urgency        Urgency    `json:"urgency"`
	CreationDate   time.Time  `json:"creationDate"`
	EstimatedDue   *time.Time `json:"estimatedDue"`
	Responsible    string     `json:"responsible"`
	Observation    string     `json:"observation"`
	Status         Status     `json:"status"`
	IsCompleted    bool       `json:"isCompleted"`
	ReporterName   string     `json:"reporterName"`
	Comments       []Comment  `json:"comments"`
	PreviousStatus Status     `json:"previousStatus,omitempty"`
}

// Comment is an append-only note on a task.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// Clone returns a copy that shares no mutable state with t.
func (t Task) Clone() Task {
	c := t
	if t.EstimatedDue != nil {
		due := *t.EstimatedDue
		c.EstimatedDue = &due
	}
	c.Comments = append(make([]Comment, 0, len(t.Comments)), t.Comments...)
	return c
}

// CommentsNewestFirst returns the comments in reverse chronological order.
func (t Task) CommentsNewestFirst() []Comment {
	out := make([]Comment, len(t.Comments))
	for i, c := range t.Comments {
		out[len(t.Comments)-1-i] = c
	}
	return out
}
