package model

// TaskType categorizes a task.
type TaskType string

const (
	TypeBug         TaskType = "bug"
	TypeImprovement TaskType = "improvement"
	TypeNewFeature  TaskType = "new-feature"
	TypeRefactor    TaskType = "refactor"
)

// Urgency is the priority of a task.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Label is a display tag rendered on a card: text plus a style class.
type Label struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

var typeLabels = map[TaskType]Label{
	TypeBug:         {Text: "🪲 Bug", Class: "type-bug"},
	TypeImprovement: {Text: "✨ Improvement", Class: "type-improvement"},
	TypeNewFeature:  {Text: "🚀 New Feature", Class: "type-new-feature"},
	TypeRefactor:    {Text: "🔧 Refactor", Class: "type-refactor"},
}

var urgencyLabels = map[Urgency]Label{
	UrgencyHigh:   {Text: "🔴 High", Class: "priority-high"},
	UrgencyMedium: {Text: "🟡 Medium", Class: "priority-medium"},
	UrgencyLow:    {Text: "🟢 Low", Class: "priority-low"},
}

func (t TaskType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// Label falls back to an "unknown" tag for values outside the enumeration.
func (t TaskType) Label() Label {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return Label{Text: "Not specified", Class: "type-unknown"}
}

func (u Urgency) Valid() bool {
	_, ok := urgencyLabels[u]
	return ok
}

func (u Urgency) Label() Label {
	if l, ok := urgencyLabels[u]; ok {
		return l
	}
	return Label{Text: "Not defined", Class: "priority-unknown"}
}
