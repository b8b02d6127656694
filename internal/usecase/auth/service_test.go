package auth

import (
	"context"
	"errors"
	"testing"

	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

type memUserRepo struct {
	byEmail map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return errors.New("duplicate key")
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func TestService_Register_Success(t *testing.T) {
	svc := NewService(newMemUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Name: "Rae", Email: "Rae@X.com", Password: "secret", Role: "recruiter",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "rae@x.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.Role != user.RoleRecruiter {
		t.Fatalf("unexpected role: %q", u.Role)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked out of Register")
	}
}

func TestService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := NewService(newMemUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: "candidate"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, RegisterInput{Name: "B", Email: "A@X.COM", Password: "pw", Role: "candidate"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(newMemUserRepo())
	ctx := context.Background()

	cases := []RegisterInput{
		{Name: "", Email: "a@x.com", Password: "pw", Role: "candidate"},
		{Name: "A", Email: "", Password: "pw", Role: "candidate"},
		{Name: "A", Email: "a@x.com", Password: "", Role: "candidate"},
		{Name: "A", Email: "a@x.com", Password: "pw", Role: "owner"},
	}
	for i, in := range cases {
		if _, err := svc.Register(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Register_AdminRejected(t *testing.T) {
	svc := NewService(newMemUserRepo())
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Eve", Email: "eve@x.com", Password: "pw", Role: "admin",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for admin self-registration, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	svc := NewService(newMemUserRepo())
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Rae", Email: "rae@x.com", Password: "secret", Role: "candidate"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Login(ctx, LoginInput{Email: "RAE@x.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != reg.ID {
		t.Fatalf("login returned wrong user: %s != %s", got.ID, reg.ID)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "rae@x.com", Password: "Secret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "secret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
