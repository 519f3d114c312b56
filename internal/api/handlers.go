package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/pylearn/internal/session"
)

// Handler serves the PyLearn endpoints for sessions held by a Manager.
type Handler struct {
	sessions *session.Manager
	tokens   *TokenIssuer
}

// NewHandler creates a Handler.
func NewHandler(sessions *session.Manager, tokens *TokenIssuer) *Handler {
	return &Handler{sessions: sessions, tokens: tokens}
}

type loginRequest struct {
	Username string `json:"username"`
}

type completeRequest struct {
	IsCompleted *bool `json:"isCompleted"`
}

type codeRequest struct {
	Code string `json:"code"`
}

// Login opens a new session. An empty username is rejected and no session
// is created.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	st, user, err := h.sessions.Open(c.UserContext(), req.Username)
	if err != nil {
		return err
	}
	token, err := h.tokens.Issue(st.ID())
	if err != nil {
		h.sessions.Close(c.UserContext(), st.ID())
		return err
	}
	return Success(c, fiber.Map{
		"token":     token,
		"sessionId": st.ID(),
		"user":      user,
	})
}

// Logout ends the current session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	h.sessions.Close(c.UserContext(), currentSession(c).ID())
	return SuccessMessage(c, "Logged out successfully", nil)
}

// GetUser returns the session's user.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, ok := currentSession(c).User()
	if !ok {
		return errUnknownSession
	}
	return Success(c, user)
}

// GetStages lists all stages with their status.
func (h *Handler) GetStages(c *fiber.Ctx) error {
	return Success(c, currentSession(c).Stages())
}

// GetStage returns one stage.
func (h *Handler) GetStage(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	stage, err := currentSession(c).Stage(id)
	if err != nil {
		return err
	}
	return Success(c, stage)
}

// GetStageLessons lists a stage's lessons with their path state.
func (h *Handler) GetStageLessons(c *fiber.Ctx) error {
	return h.withStage(c, func(st *session.Store, id int) interface{} { return st.Lessons(id) })
}

// GetStageProblems lists a stage's problems.
func (h *Handler) GetStageProblems(c *fiber.Ctx) error {
	return h.withStage(c, func(st *session.Store, id int) interface{} { return st.Problems(id) })
}

// GetStageProjects lists a stage's projects.
func (h *Handler) GetStageProjects(c *fiber.Ctx) error {
	return h.withStage(c, func(st *session.Store, id int) interface{} { return st.Projects(id) })
}

// GetStageResources lists a stage's resources.
func (h *Handler) GetStageResources(c *fiber.Ctx) error {
	return h.withStage(c, func(st *session.Store, id int) interface{} { return st.Resources(id) })
}

// withStage validates the :id stage parameter before listing its content.
func (h *Handler) withStage(c *fiber.Ctx, list func(*session.Store, int) interface{}) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	st := currentSession(c)
	if _, err := st.Stage(id); err != nil {
		return err
	}
	return Success(c, list(st, id))
}

// GetLesson returns one lesson.
func (h *Handler) GetLesson(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	lesson, err := currentSession(c).Lesson(id)
	if err != nil {
		return err
	}
	return Success(c, lesson)
}

// GetProblem returns one problem.
func (h *Handler) GetProblem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	problem, err := currentSession(c).Problem(id)
	if err != nil {
		return err
	}
	return Success(c, problem)
}

// GetProject returns one project.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	project, err := currentSession(c).Project(id)
	if err != nil {
		return err
	}
	return Success(c, project)
}

// CompleteLesson marks a lesson complete.
func (h *Handler) CompleteLesson(c *fiber.Ctx) error {
	id, err := completionTarget(c)
	if err != nil {
		return err
	}
	st := currentSession(c)
	out, err := st.CompleteLesson(c.UserContext(), id)
	if err != nil {
		return err
	}
	lesson, err := st.Lesson(id)
	if err != nil {
		return err
	}
	return SuccessMessage(c, out.Message, lesson)
}

// CompleteProblem marks a problem solved.
func (h *Handler) CompleteProblem(c *fiber.Ctx) error {
	id, err := completionTarget(c)
	if err != nil {
		return err
	}
	return h.submit(c, id, "")
}

// SubmitSolution marks a problem solved. The code is not evaluated.
func (h *Handler) SubmitSolution(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	req, err := parseCode(c)
	if err != nil {
		return err
	}
	return h.submit(c, id, req.Code)
}

func (h *Handler) submit(c *fiber.Ctx, id int, code string) error {
	st := currentSession(c)
	out, err := st.SubmitSolution(c.UserContext(), id, code)
	if err != nil {
		return err
	}
	problem, err := st.Problem(id)
	if err != nil {
		return err
	}
	return SuccessMessage(c, out.Message, problem)
}

// RunCode returns the canned run output for a problem.
func (h *Handler) RunCode(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	req, err := parseCode(c)
	if err != nil {
		return err
	}
	res, err := currentSession(c).RunCode(c.UserContext(), id, req.Code)
	if err != nil {
		return err
	}
	return SuccessMessage(c, res.Message, res)
}

// StartProject acknowledges a project start.
func (h *Handler) StartProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	msg, err := currentSession(c).StartProject(c.UserContext(), id)
	if err != nil {
		return err
	}
	return SuccessMessage(c, msg, nil)
}

// CompleteProject marks a project complete.
func (h *Handler) CompleteProject(c *fiber.Ctx) error {
	id, err := completionTarget(c)
	if err != nil {
		return err
	}
	st := currentSession(c)
	out, err := st.CompleteProject(c.UserContext(), id)
	if err != nil {
		return err
	}
	project, err := st.Project(id)
	if err != nil {
		return err
	}
	return SuccessMessage(c, out.Message, project)
}

// GetProgress returns the session's progress summary.
func (h *Handler) GetProgress(c *fiber.Ctx) error {
	return Success(c, currentSession(c).Progress())
}

// GetActivity returns the session's journal, newest first.
func (h *Handler) GetActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "limit must not be negative")
	}
	events, err := currentSession(c).Activity(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return Success(c, events)
}

func paramID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// completionTarget reads the :id parameter and an {"isCompleted": true}
// body. Completion is one-way, so false is refused.
func completionTarget(c *fiber.Ctx) (int, error) {
	id, err := paramID(c)
	if err != nil {
		return 0, err
	}
	var req completeRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.IsCompleted == nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "isCompleted is required")
	}
	if !*req.IsCompleted {
		return 0, errCompletionIrreversible
	}
	return id, nil
}

// parseCode reads an optional {"code": "..."} body.
func parseCode(c *fiber.Ctx) (codeRequest, error) {
	var req codeRequest
	if len(c.Body()) == 0 {
		return req, nil
	}
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return req, nil
}
