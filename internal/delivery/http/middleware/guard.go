package middleware

import (
	"net/url"
	"slices"

	"job-portal/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

// Guard is the access control gate. Anonymous requests are redirected to the
// login entry point with the original path preserved; authenticated requests
// holding the wrong role are silently redirected to the landing page. Neither
// case surfaces an error body.
type Guard struct {
	loginPath string
	homePath  string
}

func NewGuard() *Guard {
	return &Guard{loginPath: "/login", homePath: "/"}
}

// RequireRoles gates a route on the acting user's role. With no roles given,
// any authenticated user passes.
func (g *Guard) RequireRoles(roles ...user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		usr, ok := ActingUser(c)
		if !ok {
			target := g.loginPath + "?next=" + url.QueryEscape(c.OriginalURL())
			return c.Redirect().To(target)
		}

		if len(roles) > 0 && !slices.Contains(roles, usr.Role) {
			return c.Redirect().To(g.homePath)
		}

		return c.Next()
	}
}

// RequireAuthenticated passes any logged-in user regardless of role.
func (g *Guard) RequireAuthenticated() fiber.Handler {
	return g.RequireRoles()
}
