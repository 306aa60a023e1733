package board

import (
	"time"

	"github.com/JheyDev/Kanban/internal/model"
)

// Renderer is the visual board the controller keeps in sync with the task
// store. Columns are keyed by status; cards are keyed by task id.
type Renderer interface {
	// CardColumn reports the column currently holding the task's card.
	CardColumn(taskID string) (model.Status, bool)
	// CreateCard appends an empty card to the column. It fails when the
	// column does not exist.
	CreateCard(column model.Status, taskID string) error
	RemoveCard(taskID string)
	// FillCard replaces the card's content, style class and completion flag.
	FillCard(card Card)

	SetDragging(taskID string, dragging bool)
	SetHighlight(column model.Status, on bool)
	ClearHighlights()

	ShowDetails(details Details)
	HideDetails()
	ClearComments()
	// PrependComment puts c at the top of the visible comment list.
	PrependComment(c model.Comment)
}

// Card is everything a board card displays.
type Card struct {
	TaskID       string      `json:"taskId"`
	Title        string      `json:"title"`
	Responsible  string      `json:"responsible"`
	Type         model.Label `json:"type"`
	Urgency      model.Label `json:"urgency"`
	EstimatedDue *time.Time  `json:"estimatedDue,omitempty"`
	CreationDate time.Time   `json:"creationDate"`
	StyleClass   string      `json:"styleClass"`
	Completed    bool        `json:"completed"`
	ToggleLabel  string      `json:"toggleLabel"`
}

// Details is the content of the task detail view.
type Details struct {
	TaskID       string     `json:"taskId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         string     `json:"type"`
	Urgency      string     `json:"urgency"`
	Status       string     `json:"status"`
	Responsible  string     `json:"responsible"`
	Observation  string     `json:"observation"`
	Reporter     string     `json:"reporter"`
	EstimatedDue *time.Time `json:"estimatedDue,omitempty"`
	CreationDate time.Time  `json:"creationDate"`
}

// CardFor derives the card for t.
func CardFor(t *model.Task) Card {
	toggle := "Complete"
	if t.IsCompleted {
		toggle = "Reopen"
	}
	return Card{
		TaskID:       t.ID,
		Title:        t.Title,
		Responsible:  orDefault(t.Responsible, "Unassigned"),
		Type:         t.Type.Label(),
		Urgency:      t.Urgency.Label(),
		EstimatedDue: t.EstimatedDue,
		CreationDate: t.CreationDate,
		StyleClass:   t.Status.StyleClass(),
		Completed:    t.IsCompleted,
		ToggleLabel:  toggle,
	}
}

// DetailsFor derives the detail view for t.
func DetailsFor(t *model.Task) Details {
	typeText := "Not informed"
	if t.Type.Valid() {
		typeText = t.Type.Label().Text
	}
	urgencyText := "Not informed"
	if t.Urgency.Valid() {
		urgencyText = t.Urgency.Label().Text
	}
	return Details{
		TaskID:       t.ID,
		Title:        t.Title,
		Description:  orDefault(t.Description, "N/A"),
		Type:         typeText,
		Urgency:      urgencyText,
		Status:       t.Status.Label(),
		Responsible:  orDefault(t.Responsible, "Unassigned"),
		Observation:  orDefault(t.Observation, "None"),
		Reporter:     orDefault(t.ReporterName, "Not informed"),
		EstimatedDue: t.EstimatedDue,
		CreationDate: t.CreationDate,
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
