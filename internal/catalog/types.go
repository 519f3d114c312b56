package catalog

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrInvalidDifficulty is returned when a difficulty string is outside its enumeration.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrInvalidEntity is returned by Validate when a required field is missing or out of range.
	ErrInvalidEntity = errors.New("invalid entity")
)

// User is the logged-in learner.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
}

// StageStatus is the derived progress state of a learning stage.
type StageStatus string

const (
	StageCompleted  StageStatus = "completed"
	StageInProgress StageStatus = "in_progress"
	StageLocked     StageStatus = "locked"
)

// Label returns a human-readable label for the status.
func (s StageStatus) Label() string {
	switch s {
	case StageCompleted:
		return "Completed"
	case StageInProgress:
		return "In Progress"
	case StageLocked:
		return "Locked"
	default:
		return string(s)
	}
}

// Icon returns the display icon for the status.
func (s StageStatus) Icon() string {
	switch s {
	case StageCompleted:
		return "✓"
	case StageInProgress:
		return "◐"
	default:
		return "■"
	}
}

// LearningStage is a named tier of the curriculum.
type LearningStage struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Level            int    `json:"level"`
	Description      string `json:"description"`
	TotalLessons     int    `json:"totalLessons"`
	CompletedLessons int    `json:"completedLessons"`
	IsUnlocked       bool   `json:"isUnlocked"`
}

// Status classifies the stage. A stage with no lessons is never completed.
func (s LearningStage) Status() StageStatus {
	if s.TotalLessons > 0 && s.CompletedLessons == s.TotalLessons {
		return StageCompleted
	}
	if s.IsUnlocked && s.CompletedLessons > 0 {
		return StageInProgress
	}
	return StageLocked
}

// Validate checks required fields and counter bounds.
func (s LearningStage) Validate() error {
	switch {
	case s.ID <= 0:
		return fmt.Errorf("%w: stage id %d", ErrInvalidEntity, s.ID)
	case s.Name == "":
		return fmt.Errorf("%w: stage %d has no name", ErrInvalidEntity, s.ID)
	case s.TotalLessons < 0, s.CompletedLessons < 0, s.CompletedLessons > s.TotalLessons:
		return fmt.Errorf("%w: stage %d lesson counts %d/%d", ErrInvalidEntity, s.ID, s.CompletedLessons, s.TotalLessons)
	}
	return nil
}

// LessonState describes where a lesson sits in the learner's path.
type LessonState string

const (
	LessonCompleted LessonState = "completed"
	LessonAvailable LessonState = "available"
	LessonUpcoming  LessonState = "upcoming"
)

// Label returns a human-readable label for the lesson state.
func (s LessonState) Label() string {
	switch s {
	case LessonCompleted:
		return "Completed"
	case LessonAvailable:
		return "In Progress"
	case LessonUpcoming:
		return "Locked"
	default:
		return string(s)
	}
}

// Icon returns the display icon for the lesson state.
func (s LessonState) Icon() string {
	switch s {
	case LessonCompleted:
		return "✓"
	case LessonAvailable:
		return "▶"
	default:
		return "○"
	}
}

// Lesson is a unit of reading material within a stage.
type Lesson struct {
	ID          int    `json:"id"`
	StageID     int    `json:"stageId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Duration    int    `json:"duration"` // minutes
	Order       int    `json:"order"`
	IsCompleted bool   `json:"isCompleted"`
}

// Validate checks required fields.
func (l Lesson) Validate() error {
	switch {
	case l.ID <= 0:
		return fmt.Errorf("%w: lesson id %d", ErrInvalidEntity, l.ID)
	case l.StageID <= 0:
		return fmt.Errorf("%w: lesson %d has no stage", ErrInvalidEntity, l.ID)
	case l.Title == "":
		return fmt.Errorf("%w: lesson %d has no title", ErrInvalidEntity, l.ID)
	case l.Duration < 0:
		return fmt.Errorf("%w: lesson %d duration %d", ErrInvalidEntity, l.ID, l.Duration)
	}
	return nil
}

// ProblemDifficulty grades a practice problem.
type ProblemDifficulty string

const (
	Easy   ProblemDifficulty = "Easy"
	Medium ProblemDifficulty = "Medium"
	Hard   ProblemDifficulty = "Hard"
)

// Valid reports whether d is one of Easy, Medium or Hard.
func (d ProblemDifficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Problem is a coding exercise hosted by an external judge.
type Problem struct {
	ID          int               `json:"id"`
	StageID     int               `json:"stageId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  ProblemDifficulty `json:"difficulty"`
	Tags        []string          `json:"tags"`
	Source      string            `json:"source"`
	SourceURL   string            `json:"sourceUrl,omitempty"`
	Starter     string            `json:"starter"`
	IsCompleted bool              `json:"isCompleted"`
}

// Validate checks required fields and the difficulty enumeration.
func (p Problem) Validate() error {
	switch {
	case p.ID <= 0:
		return fmt.Errorf("%w: problem id %d", ErrInvalidEntity, p.ID)
	case p.StageID <= 0:
		return fmt.Errorf("%w: problem %d has no stage", ErrInvalidEntity, p.ID)
	case p.Title == "":
		return fmt.Errorf("%w: problem %d has no title", ErrInvalidEntity, p.ID)
	case !p.Difficulty.Valid():
		return fmt.Errorf("%w: problem %d difficulty %q", ErrInvalidDifficulty, p.ID, p.Difficulty)
	}
	return nil
}

// ProjectDifficulty grades a hands-on project.
type ProjectDifficulty string

const (
	Beginner     ProjectDifficulty = "Beginner"
	Intermediate ProjectDifficulty = "Intermediate"
	Advanced     ProjectDifficulty = "Advanced"
)

// Valid reports whether d is one of Beginner, Intermediate or Advanced.
func (d ProjectDifficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Project is a multi-hour build exercise.
type Project struct {
	ID             int               `json:"id"`
	StageID        int               `json:"stageId"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Difficulty     ProjectDifficulty `json:"difficulty"`
	EstimatedHours int               `json:"estimatedTime"`
	Skills         []string          `json:"skills"`
	IsCompleted    bool              `json:"isCompleted"`
}

// Validate checks required fields and the difficulty enumeration.
func (p Project) Validate() error {
	switch {
	case p.ID <= 0:
		return fmt.Errorf("%w: project id %d", ErrInvalidEntity, p.ID)
	case p.StageID <= 0:
		return fmt.Errorf("%w: project %d has no stage", ErrInvalidEntity, p.ID)
	case p.Title == "":
		return fmt.Errorf("%w: project %d has no title", ErrInvalidEntity, p.ID)
	case !p.Difficulty.Valid():
		return fmt.Errorf("%w: project %d difficulty %q", ErrInvalidDifficulty, p.ID, p.Difficulty)
	case p.EstimatedHours < 0:
		return fmt.Errorf("%w: project %d estimated hours %d", ErrInvalidEntity, p.ID, p.EstimatedHours)
	}
	return nil
}

// ResourceKind classifies an external learning resource.
type ResourceKind string

const (
	KindDocumentation ResourceKind = "documentation"
	KindArticle       ResourceKind = "article"
	KindVideo         ResourceKind = "video"
)

// Icon returns the display icon for the resource kind.
func (k ResourceKind) Icon() string {
	switch k {
	case KindVideo:
		return "▶"
	case KindDocumentation:
		return "≡"
	default:
		return "¶"
	}
}

// Valid reports whether k is one of the known kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case KindDocumentation, KindArticle, KindVideo:
		return true
	}
	return false
}

// Resource is a link to outside reading or video material.
type Resource struct {
	ID          int          `json:"id"`
	StageID     int          `json:"stageId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	Kind        ResourceKind `json:"type"`
	IsFree      bool         `json:"isFree"`
}

// Module is the headline card shown for a stage on the dashboard.
type Module struct {
	StageID        int    `json:"stageId"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	EstimatedHours int    `json:"estimatedHours"`
}

// Validate checks the resource's identity, kind and link.
func (r Resource) Validate() error {
	switch {
	case r.ID <= 0:
		return fmt.Errorf("%w: resource id %d", ErrInvalidEntity, r.ID)
	case r.StageID <= 0:
		return fmt.Errorf("%w: resource %d has no stage", ErrInvalidEntity, r.ID)
	case r.Title == "":
		return fmt.Errorf("%w: resource %d has no title", ErrInvalidEntity, r.ID)
	case !r.Kind.Valid():
		return fmt.Errorf("%w: resource %d kind %q", ErrInvalidEntity, r.ID, r.Kind)
	}
	u, err := url.Parse(r.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: resource %d url %q", ErrInvalidEntity, r.ID, r.URL)
	}
	return nil
}

// Validate checks the module card fields.
func (m Module) Validate() error {
	switch {
	case m.StageID <= 0:
		return fmt.Errorf("%w: module has no stage", ErrInvalidEntity)
	case m.Title == "":
		return fmt.Errorf("%w: module for stage %d has no title", ErrInvalidEntity, m.StageID)
	case m.EstimatedHours < 0:
		return fmt.Errorf("%w: module for stage %d estimated hours %d", ErrInvalidEntity, m.StageID, m.EstimatedHours)
	}
	return nil
}
