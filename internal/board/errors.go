package board

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn is returned when a drop or move targets a column that is not on the board.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNoDragInProgress is returned by Drop when no card was picked up.
	ErrNoDragInProgress = errors.New("no drag in progress")

	// ErrRemovalNotConfirmed is returned when a removal was not confirmed by the user.
	ErrRemovalNotConfirmed = errors.New("removal not confirmed")
)

// ValidationError reports a form field that is missing or holds an unknown value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s' %s", e.Field, e.Reason)
}
