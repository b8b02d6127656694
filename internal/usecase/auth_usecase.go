package usecase

import (
	"context"
	"errors"

	"job-portal/internal/config"
	"job-portal/internal/domain/user"
	"job-portal/internal/infrastructure/session"
	ucauth "job-portal/internal/usecase/auth"
)

var ErrInternal = errors.New("internal error")

// AuthUsecase is the credential manager plus the session lifecycle around it.
// Register and Login return the freshly minted session token alongside the
// user; Resolve is what the per-request identity middleware calls.
type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in ucauth.LoginInput, prevToken string) (user.User, string, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (user.User, bool, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	users    user.Repository
	sessions session.Store
	cfg      config.SessionConfig
}

func NewAuthUsecase(users user.Repository, sessions session.Store, cfg config.SessionConfig) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), users: users, sessions: sessions, cfg: cfg}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.sessions.Create(ctx, usr.ID, u.cfg.TTL)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput, prevToken string) (user.User, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	// any prior session state is discarded on login
	if prevToken != "" {
		_ = u.sessions.Delete(ctx, prevToken)
	}

	token, err := u.sessions.Create(ctx, usr.ID, u.cfg.TTL)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}

func (u *Auth) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return u.sessions.Delete(ctx, token)
}

// Resolve maps a session token to its user record. A token that is unknown,
// expired, or points at a user that no longer exists resolves to anonymous,
// not to an error.
func (u *Auth) Resolve(ctx context.Context, token string) (user.User, bool, error) {
	if token == "" {
		return user.User{}, false, nil
	}

	userID, ok, err := u.sessions.Get(ctx, token)
	if err != nil {
		return user.User{}, false, err
	}
	if !ok {
		return user.User{}, false, nil
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, false, nil
		}
		return user.User{}, false, err
	}

	usr.PasswordHash = ""
	return usr, true, nil
}
