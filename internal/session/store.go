// Package session holds the mutable per-learner state: the current user and
// a private copy of the curriculum whose completion flags the learner flips.
package session

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/pylearn/internal/catalog"
	"github.com/abhisek/pylearn/internal/store"
)

// Messages shown to the learner after an action.
const (
	MsgUsernameRequired   = "Please enter a username"
	MsgLessonCompleted    = "Lesson completed! Great job!"
	MsgLessonAlreadyDone  = "Lesson already completed."
	MsgSolutionSubmitted  = "Solution submitted successfully!"
	MsgProjectStarted     = "Project started! Check your dashboard for progress."
	MsgProjectCompleted   = "Project completed! Nice work!"
	MsgProjectAlreadyDone = "Project already completed."
	MsgTestPassed         = "Test passed!"
)

const (
	cannedRunOutput = "Output: [0, 1]"
	bonusUsername   = "johndoe"
	bonusPoints     = 1250
)

// Options configures a Store. The zero value is usable.
type Options struct {
	// Data seeds the store instead of catalog.Sample().
	Data *catalog.Data

	// Journal receives an entry for every learner action. Optional.
	Journal store.ActivityRepo

	// Now overrides the clock used for activity tracking.
	Now func() time.Time
}

// Outcome reports the effect of a completion operation.
type Outcome struct {
	Message string `json:"message"`
	Changed bool   `json:"changed"`
}

// RunResult is the output of a code run.
type RunResult struct {
	Output  string `json:"output"`
	Message string `json:"message"`
	Passed  bool   `json:"passed"`
}

// StageEntry is a stage together with its derived status.
type StageEntry struct {
	catalog.LearningStage
	Status catalog.StageStatus `json:"status"`
}

// LessonEntry is a lesson together with its place in the learner's path.
type LessonEntry struct {
	catalog.Lesson
	State catalog.LessonState `json:"state"`
}

// Progress summarizes the session for the dashboard sidebar.
type Progress struct {
	OverallPercent   int          `json:"overallPercent"`
	LessonsCompleted int          `json:"lessonsCompleted"`
	LessonsTotal     int          `json:"lessonsTotal"`
	ProblemsSolved   int          `json:"problemsSolved"`
	ProblemsTotal    int          `json:"problemsTotal"`
	ProjectsDone     int          `json:"projectsDone"`
	ProjectsTotal    int          `json:"projectsTotal"`
	Stages           []StageEntry `json:"stages"`
}

// Store is the state of one learner session. All methods are safe for
// concurrent use and are serialized per store.
type Store struct {
	id      string
	journal store.ActivityRepo
	now     func() time.Time

	mu          sync.Mutex
	seed        *catalog.Data
	initialized bool
	user        *catalog.User
	data        catalog.Data
	lastActive  time.Time
}

// NewStore creates an uninitialized store with a fresh session ID.
func NewStore(opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		id:         uuid.New().String(),
		journal:    opts.Journal,
		now:        now,
		seed:       opts.Data,
		lastActive: now(),
	}
}

// ID returns the session identifier.
func (s *Store) ID() string {
	return s.id
}

// Initialize populates the entity collections if they are absent. The user
// is left as is. Safe to call any number of times.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
}

func (s *Store) initLocked() {
	if s.initialized {
		return
	}
	if s.seed != nil {
		s.data = s.seed.Clone()
		s.seed = nil
	} else {
		s.data = catalog.Sample()
	}
	s.initialized = true
}

// begin locks the store, initializes it and marks activity. Callers must
// defer s.mu.Unlock().
func (s *Store) begin() {
	s.mu.Lock()
	s.initLocked()
	s.lastActive = s.now()
}

// LastActive returns the time of the most recent operation.
func (s *Store) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Login sets the current user. An empty username returns a
// *ValidationError and leaves the session logged out.
func (s *Store) Login(ctx context.Context, username string) (catalog.User, error) {
	s.begin()
	defer s.mu.Unlock()

	username = strings.TrimSpace(username)
	if username == "" {
		return catalog.User{}, &ValidationError{Field: "username", Message: MsgUsernameRequired}
	}

	u := catalog.User{
		Username: username,
		Name:     displayName(username),
	}
	if strings.EqualFold(username, bonusUsername) {
		u.Points = bonusPoints
	}
	s.user = &u

	s.recordLocked(ctx, store.ActionLogin, "", 0, "")
	return u, nil
}

// displayName upper-cases the first rune and lower-cases the rest. Bytes
// that are not valid UTF-8 are copied unchanged.
func displayName(username string) string {
	var b strings.Builder
	b.Grow(len(username))
	for i := 0; len(username) > 0; i++ {
		r, size := utf8.DecodeRuneInString(username)
		switch {
		case r == utf8.RuneError && size <= 1:
			b.WriteString(username[:size])
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
		username = username[size:]
	}
	return b.String()
}

// Logout clears the current user.
func (s *Store) Logout(ctx context.Context) {
	s.begin()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.recordLocked(ctx, store.ActionLogout, "", 0, "")
	s.user = nil
}

// User returns the current user, if any.
func (s *Store) User() (catalog.User, bool) {
	s.begin()
	defer s.mu.Unlock()

	if s.user == nil {
		return catalog.User{}, false
	}
	return *s.user, true
}

// Stages returns all stages ordered by level.
func (s *Store) Stages() []StageEntry {
	s.begin()
	defer s.mu.Unlock()
	return s.stagesLocked()
}

func (s *Store) stagesLocked() []StageEntry {
	out := make([]StageEntry, 0, len(s.data.Stages))
	for _, st := range s.data.Stages {
		out = append(out, StageEntry{LearningStage: st, Status: st.Status()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

// Stage returns a single stage.
func (s *Store) Stage(id int) (StageEntry, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.stageIndex(id)
	if i < 0 {
		return StageEntry{}, &NotFoundError{Kind: "stage", ID: id}
	}
	st := s.data.Stages[i]
	return StageEntry{LearningStage: st, Status: st.Status()}, nil
}

// CurrentStage returns the lowest-level unlocked stage that is not yet
// completed, falling back to the highest unlocked stage.
func (s *Store) CurrentStage() (StageEntry, bool) {
	s.begin()
	defer s.mu.Unlock()

	var (
		last  StageEntry
		found bool
	)
	for _, st := range s.stagesLocked() {
		if !st.IsUnlocked {
			continue
		}
		if st.Status != catalog.StageCompleted {
			return st, true
		}
		last, found = st, true
	}
	return last, found
}

// Module returns the headline module for a stage.
func (s *Store) Module(stageID int) (catalog.Module, bool) {
	s.begin()
	defer s.mu.Unlock()

	for _, m := range s.data.Modules {
		if m.StageID == stageID {
			return m, true
		}
	}
	return catalog.Module{}, false
}

// Lessons returns a stage's lessons in order with their path state. The
// first incomplete lesson of an unlocked stage is available; the rest are
// upcoming.
func (s *Store) Lessons(stageID int) []LessonEntry {
	s.begin()
	defer s.mu.Unlock()
	return s.lessonsLocked(stageID)
}

func (s *Store) lessonsLocked(stageID int) []LessonEntry {
	var lessons []catalog.Lesson
	for _, l := range s.data.Lessons {
		if l.StageID == stageID {
			lessons = append(lessons, l)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })

	unlocked := false
	if i := s.stageIndex(stageID); i >= 0 {
		unlocked = s.data.Stages[i].IsUnlocked
	}

	out := make([]LessonEntry, 0, len(lessons))
	nextFound := false
	for _, l := range lessons {
		state := catalog.LessonUpcoming
		switch {
		case l.IsCompleted:
			state = catalog.LessonCompleted
		case unlocked && !nextFound:
			state = catalog.LessonAvailable
			nextFound = true
		}
		out = append(out, LessonEntry{Lesson: l, State: state})
	}
	return out
}

// Lesson returns a single lesson with its path state.
func (s *Store) Lesson(id int) (LessonEntry, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.lessonIndex(id)
	if i < 0 {
		return LessonEntry{}, &NotFoundError{Kind: "lesson", ID: id}
	}
	for _, e := range s.lessonsLocked(s.data.Lessons[i].StageID) {
		if e.ID == id {
			return e, nil
		}
	}
	return LessonEntry{}, &NotFoundError{Kind: "lesson", ID: id}
}

// Problems returns a stage's problems.
func (s *Store) Problems(stageID int) []catalog.Problem {
	s.begin()
	defer s.mu.Unlock()

	var out []catalog.Problem
	for _, p := range s.data.Problems {
		if p.StageID == stageID {
			out = append(out, cloneProblem(p))
		}
	}
	return out
}

// Problem returns a single problem.
func (s *Store) Problem(id int) (catalog.Problem, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.problemIndex(id)
	if i < 0 {
		return catalog.Problem{}, &NotFoundError{Kind: "problem", ID: id}
	}
	return cloneProblem(s.data.Problems[i]), nil
}

// Projects returns a stage's projects.
func (s *Store) Projects(stageID int) []catalog.Project {
	s.begin()
	defer s.mu.Unlock()

	var out []catalog.Project
	for _, p := range s.data.Projects {
		if p.StageID == stageID {
			out = append(out, cloneProject(p))
		}
	}
	return out
}

// Project returns a single project.
func (s *Store) Project(id int) (catalog.Project, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.projectIndex(id)
	if i < 0 {
		return catalog.Project{}, &NotFoundError{Kind: "project", ID: id}
	}
	return cloneProject(s.data.Projects[i]), nil
}

// Resources returns a stage's learning resources.
func (s *Store) Resources(stageID int) []catalog.Resource {
	s.begin()
	defer s.mu.Unlock()

	var out []catalog.Resource
	for _, r := range s.data.Resources {
		if r.StageID == stageID {
			out = append(out, r)
		}
	}
	return out
}

// Progress computes the session summary from the current data.
func (s *Store) Progress() Progress {
	s.begin()
	defer s.mu.Unlock()

	p := Progress{Stages: s.stagesLocked()}
	for _, st := range s.data.Stages {
		p.LessonsCompleted += st.CompletedLessons
		p.LessonsTotal += st.TotalLessons
	}
	if p.LessonsTotal > 0 {
		p.OverallPercent = p.LessonsCompleted * 100 / p.LessonsTotal
	}
	for _, pr := range s.data.Problems {
		p.ProblemsTotal++
		if pr.IsCompleted {
			p.ProblemsSolved++
		}
	}
	for _, pr := range s.data.Projects {
		p.ProjectsTotal++
		if pr.IsCompleted {
			p.ProjectsDone++
		}
	}
	return p
}

// CompleteLesson marks a lesson complete. The lesson's stage must be
// unlocked. Completing an already completed lesson changes nothing.
func (s *Store) CompleteLesson(ctx context.Context, id int) (Outcome, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.lessonIndex(id)
	if i < 0 {
		return Outcome{}, &NotFoundError{Kind: "lesson", ID: id}
	}
	lesson := &s.data.Lessons[i]

	si := s.stageIndex(lesson.StageID)
	if si < 0 || !s.data.Stages[si].IsUnlocked {
		return Outcome{}, &StageLockedError{StageID: lesson.StageID}
	}
	if lesson.IsCompleted {
		return Outcome{Message: MsgLessonAlreadyDone}, nil
	}

	lesson.IsCompleted = true
	stage := &s.data.Stages[si]
	if stage.CompletedLessons < stage.TotalLessons {
		stage.CompletedLessons++
	}

	s.recordLocked(ctx, store.ActionLessonCompleted, "lesson", id, lesson.Title)
	return Outcome{Message: MsgLessonCompleted, Changed: true}, nil
}

// RunCode "runs" a solution. No code is executed; the output is canned.
func (s *Store) RunCode(ctx context.Context, id int, code string) (RunResult, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.problemIndex(id)
	if i < 0 {
		return RunResult{}, &NotFoundError{Kind: "problem", ID: id}
	}

	s.recordLocked(ctx, store.ActionCodeRun, "problem", id, s.data.Problems[i].Title)
	return RunResult{Output: cannedRunOutput, Message: MsgTestPassed, Passed: true}, nil
}

// SubmitSolution marks a problem solved. The code is not evaluated.
func (s *Store) SubmitSolution(ctx context.Context, id int, code string) (Outcome, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.problemIndex(id)
	if i < 0 {
		return Outcome{}, &NotFoundError{Kind: "problem", ID: id}
	}
	problem := &s.data.Problems[i]
	changed := !problem.IsCompleted
	problem.IsCompleted = true

	s.recordLocked(ctx, store.ActionSolutionSubmitted, "problem", id, problem.Title)
	return Outcome{Message: MsgSolutionSubmitted, Changed: changed}, nil
}

// StartProject acknowledges a project start. Project state is unchanged;
// the start is only recorded in the journal.
func (s *Store) StartProject(ctx context.Context, id int) (string, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.projectIndex(id)
	if i < 0 {
		return "", &NotFoundError{Kind: "project", ID: id}
	}

	s.recordLocked(ctx, store.ActionProjectStarted, "project", id, s.data.Projects[i].Title)
	return MsgProjectStarted, nil
}

// CompleteProject marks a project complete. Completing it again changes
// nothing.
func (s *Store) CompleteProject(ctx context.Context, id int) (Outcome, error) {
	s.begin()
	defer s.mu.Unlock()

	i := s.projectIndex(id)
	if i < 0 {
		return Outcome{}, &NotFoundError{Kind: "project", ID: id}
	}
	project := &s.data.Projects[i]
	if project.IsCompleted {
		return Outcome{Message: MsgProjectAlreadyDone}, nil
	}
	project.IsCompleted = true

	s.recordLocked(ctx, store.ActionProjectCompleted, "project", id, project.Title)
	return Outcome{Message: MsgProjectCompleted, Changed: true}, nil
}

// Activity returns the session's journal entries, newest first.
func (s *Store) Activity(ctx context.Context, limit int) ([]store.ActivityEvent, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.Query(ctx, s.id, store.QueryOpts{Limit: limit})
}

// recordLocked appends a journal entry. Failures are ignored because the
// in-memory change has already been applied.
func (s *Store) recordLocked(ctx context.Context, action store.Action, kind string, id int, detail string) {
	if s.journal == nil {
		return
	}
	var username string
	if s.user != nil {
		username = s.user.Username
	}
	_ = s.journal.Append(ctx, store.ActivityEvent{
		SessionID:   s.id,
		Username:    username,
		Action:      action,
		SubjectKind: kind,
		SubjectID:   id,
		Detail:      detail,
		Timestamp:   s.now(),
	})
}

func (s *Store) stageIndex(id int) int {
	for i, st := range s.data.Stages {
		if st.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) lessonIndex(id int) int {
	for i, l := range s.data.Lessons {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) problemIndex(id int) int {
	for i, p := range s.data.Problems {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) projectIndex(id int) int {
	for i, p := range s.data.Projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneProblem(p catalog.Problem) catalog.Problem {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

func cloneProject(p catalog.Project) catalog.Project {
	p.Skills = append([]string(nil), p.Skills...)
	return p
}
