package session

import "fmt"

// ValidationError indicates user input that cannot be accepted, such as an
// empty username. Message is suitable for display.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError indicates an entity ID that is not in the session's data.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// StageLockedError indicates an action on content in a locked stage.
type StageLockedError struct {
	StageID int
}

func (e *StageLockedError) Error() string {
	return fmt.Sprintf("stage %d is locked", e.StageID)
}
