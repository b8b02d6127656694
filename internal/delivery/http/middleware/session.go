package middleware

import (
	"log"

	"job-portal/internal/domain/user"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ctxUserKey is where the resolved acting user lives for the rest of the
// request. Absent means anonymous.
const ctxUserKey = "acting_user"

// SessionMiddleware runs once per request, before any guard or handler. It
// reads the session cookie, resolves it to a user record, and attaches that
// user to the request context. It never rejects a request: an unknown or
// stale token just leaves the request anonymous.
type SessionMiddleware struct {
	auth       usecase.AuthUsecase
	cookieName string
	logger     *log.Logger
}

func NewSessionMiddleware(auth usecase.AuthUsecase, cookieName string, logger *log.Logger) *SessionMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &SessionMiddleware{auth: auth, cookieName: cookieName, logger: logger}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(m.cookieName)
		if token == "" {
			return c.Next()
		}

		usr, ok, err := m.auth.Resolve(c.Context(), token)
		if err != nil {
			// a failing session store must not take public routes down with it
			m.logger.Printf("session resolve failed: %v", err)
			return c.Next()
		}
		if ok {
			c.Locals(ctxUserKey, usr)
		}

		return c.Next()
	}
}

// ActingUser returns the identity resolved for this request, if any.
func ActingUser(c fiber.Ctx) (user.User, bool) {
	usr, ok := c.Locals(ctxUserKey).(user.User)
	return usr, ok
}

// SetActingUser exists for handler and guard tests that bypass the session
// cookie machinery.
func SetActingUser(c fiber.Ctx, usr user.User) {
	c.Locals(ctxUserKey, usr)
}
