package model

// Status is the lifecycle stage of a task. Each status is one board column.
type Status string

const (
	StatusBacklog          Status = "backlog"
	StatusAnalysis         Status = "analysis"
	StatusDevelopment      Status = "development"
	StatusTesting          Status = "testing"
	StatusAwaitingApproval Status = "awaiting-approval"
	StatusDone             Status = "done"
)

// Columns lists the board columns in display order.
var Columns = []Status{
	StatusBacklog,
	StatusAnalysis,
	StatusDevelopment,
	StatusTesting,
	StatusAwaitingApproval,
	StatusDone,
}

var statusLabels = map[Status]string{
	StatusBacklog:          "Backlog",
	StatusAnalysis:         "In Analysis",
	StatusDevelopment:      "In Development",
	StatusTesting:          "In Testing",
	StatusAwaitingApproval: "Awaiting Approval",
	StatusDone:             "Done",
}

// Valid reports whether s is one of the board columns.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label is the human readable column title.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// StyleClass is the card style derived from the status.
func (s Status) StyleClass() string {
	return "status-" + string(s)
}

// ParseStatus converts user input into a Status.
func ParseStatus(v string) (Status, bool) {
	s := Status(v)
	return s, s.Valid()
}
