package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/pylearn/internal/session"
)

var (
	errCompletionIrreversible = errors.New("completion cannot be undone")
	errUnknownSession         = errors.New("session expired or unknown")
)

// statusFor maps an error to an HTTP status and a message for the client.
func statusFor(err error) (int, string) {
	var (
		verr   *session.ValidationError
		nf     *session.NotFoundError
		locked *session.StageLockedError
		ferr   *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusUnprocessableEntity, verr.Message
	case errors.As(err, &nf):
		return fiber.StatusNotFound, nf.Error()
	case errors.As(err, &locked):
		return fiber.StatusConflict, locked.Error()
	case errors.Is(err, errCompletionIrreversible):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, errInvalidToken), errors.Is(err, errUnknownSession):
		return fiber.StatusUnauthorized, err.Error()
	case errors.As(err, &ferr):
		return ferr.Code, ferr.Message
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

// errorHandler renders every handler error as an ErrorResponse.
func errorHandler(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)
	return Error(c, status, msg)
}
