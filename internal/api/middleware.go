package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/pylearn/internal/session"
)

const sessionKey = "session"

// LoggingMiddleware writes one line per request.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status, _ = statusFor(err)
		}
		logger.Printf(
			"[%s] %s %s %s %d %v",
			time.Now().Format("2006-01-02 15:04:05"),
			c.IP(),
			c.Method(),
			c.Path(),
			status,
			time.Since(start),
		)

		return err
	}
}

// RequireSession resolves the Authorization token to a live session and
// stores it in the request locals.
func RequireSession(tokens *TokenIssuer, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid, err := tokens.Parse(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		st, ok := sessions.Get(sid)
		if !ok {
			return errUnknownSession
		}
		c.Locals(sessionKey, st)
		return c.Next()
	}
}

// currentSession returns the store attached by RequireSession.
func currentSession(c *fiber.Ctx) *session.Store {
	st, _ := c.Locals(sessionKey).(*session.Store)
	return st
}
