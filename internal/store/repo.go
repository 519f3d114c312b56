package store

import (
	"context"
	"time"
)

// QueryOpts configures journal queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// Action names a session activity recorded in the journal.
type Action string

const (
	ActionLogin             Action = "login"
	ActionLogout            Action = "logout"
	ActionLessonCompleted   Action = "lesson_completed"
	ActionCodeRun           Action = "code_run"
	ActionSolutionSubmitted Action = "solution_submitted"
	ActionProjectStarted    Action = "project_started"
	ActionProjectCompleted  Action = "project_completed"
)

// DisplayName returns a human-readable label for the action.
func (a Action) DisplayName() string {
	switch a {
	case ActionLogin:
		return "Logged in"
	case ActionLogout:
		return "Logged out"
	case ActionLessonCompleted:
		return "Completed lesson"
	case ActionCodeRun:
		return "Ran code"
	case ActionSolutionSubmitted:
		return "Submitted solution"
	case ActionProjectStarted:
		return "Started project"
	case ActionProjectCompleted:
		return "Completed project"
	default:
		return string(a)
	}
}

// Icon returns the display icon for the action.
func (a Action) Icon() string {
	switch a {
	case ActionLogin, ActionLogout:
		return "→"
	case ActionLessonCompleted, ActionProjectCompleted:
		return "✓"
	case ActionCodeRun:
		return "▶"
	case ActionSolutionSubmitted:
		return "★"
	case ActionProjectStarted:
		return "◆"
	default:
		return "·"
	}
}

// ActivityEvent is one journal entry.
type ActivityEvent struct {
	Sequence    int64     `json:"sequence"`
	SessionID   string    `json:"sessionId"`
	Username    string    `json:"username"`
	Action      Action    `json:"action"`
	SubjectKind string    `json:"subjectKind,omitempty"`
	SubjectID   int       `json:"subjectId,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ActivityRepo provides append and query access to the session journal.
type ActivityRepo interface {
	// Append records an event. Sequence is assigned by the store and a zero
	// Timestamp is replaced with the current time.
	Append(ctx context.Context, e ActivityEvent) error

	// Query returns a session's events, newest first.
	Query(ctx context.Context, sessionID string, opts QueryOpts) ([]ActivityEvent, error)

	// Counts returns the number of events per action for a session, or
	// for every session when sessionID is empty.
	Counts(ctx context.Context, sessionID string) (map[Action]int, error)

	// Purge deletes events recorded before the given time, or every event
	// when before is zero. It returns the number of deleted events.
	Purge(ctx context.Context, before time.Time) (int64, error)
}
