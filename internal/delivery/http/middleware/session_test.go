package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-portal/internal/domain/user"
	ucauth "job-portal/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubAuthUsecase struct {
	sessions map[string]user.User
}

func (s *stubAuthUsecase) Register(context.Context, ucauth.RegisterInput) (user.User, string, error) {
	return user.User{}, "", nil
}

func (s *stubAuthUsecase) Login(context.Context, ucauth.LoginInput, string) (user.User, string, error) {
	return user.User{}, "", nil
}

func (s *stubAuthUsecase) Logout(context.Context, string) error { return nil }

func (s *stubAuthUsecase) Resolve(_ context.Context, token string) (user.User, bool, error) {
	usr, ok := s.sessions[token]
	return usr, ok, nil
}

func TestSessionMiddleware_ResolvesActingUser(t *testing.T) {
	rec := user.User{ID: uuid.New(), Email: "r@x.com", Role: user.RoleRecruiter}
	auth := &stubAuthUsecase{sessions: map[string]user.User{"tok-1": rec}}

	app := fiber.New()
	mw := NewSessionMiddleware(auth, "session_token", nil)
	app.Use(mw.Middleware())

	var got user.User
	var ok bool
	app.Get("/", func(c fiber.Ctx) error {
		got, ok = ActingUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok-1"})
	if _, err := app.Test(req); err != nil {
		t.Fatalf("test request: %v", err)
	}
	if !ok {
		t.Fatal("acting user not resolved from session cookie")
	}
	if got.ID != rec.ID || got.Role != user.RoleRecruiter {
		t.Fatalf("wrong acting user: %+v", got)
	}
}

func TestSessionMiddleware_AnonymousWithoutCookie(t *testing.T) {
	auth := &stubAuthUsecase{sessions: map[string]user.User{}}

	app := fiber.New()
	mw := NewSessionMiddleware(auth, "session_token", nil)
	app.Use(mw.Middleware())

	var ok bool
	app.Get("/", func(c fiber.Ctx) error {
		_, ok = ActingUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatalf("test request: %v", err)
	}
	if ok {
		t.Fatal("request without a cookie must stay anonymous")
	}
}

func TestSessionMiddleware_StaleTokenIsAnonymous(t *testing.T) {
	auth := &stubAuthUsecase{sessions: map[string]user.User{}}

	app := fiber.New()
	mw := NewSessionMiddleware(auth, "session_token", nil)
	app.Use(mw.Middleware())

	var ok bool
	app.Get("/", func(c fiber.Ctx) error {
		_, ok = ActingUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "gone"})
	if _, err := app.Test(req); err != nil {
		t.Fatalf("test request: %v", err)
	}
	if ok {
		t.Fatal("stale token must resolve anonymous")
	}
}
