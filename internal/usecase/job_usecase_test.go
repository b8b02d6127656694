package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

func recruiter() user.User {
	return user.User{ID: uuid.New(), Name: "Rae", Email: "rae@x.com", Role: user.RoleRecruiter}
}

func TestJobUsecase_Create_Success(t *testing.T) {
	repo := &memJobRepo{}
	uc := NewJobUsecase(repo)
	actor := recruiter()

	j, err := uc.Create(context.Background(), actor, CreateJobInput{
		Title: "  Engineer  ", Company: "Acme", Location: "Remote",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if j.Title != "Engineer" {
		t.Fatalf("title not trimmed: %q", j.Title)
	}
	if j.PostedBy == nil || *j.PostedBy != actor.ID {
		t.Fatal("job not owned by acting user")
	}
	if len(repo.jobs) != 1 {
		t.Fatalf("expected 1 persisted job, got %d", len(repo.jobs))
	}
}

func TestJobUsecase_Create_Validation(t *testing.T) {
	uc := NewJobUsecase(&memJobRepo{})
	actor := recruiter()

	if _, err := uc.Create(context.Background(), actor, CreateJobInput{Title: "   ", Company: "Acme"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank title: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Create(context.Background(), actor, CreateJobInput{Title: "Engineer", Company: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty company: expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Create_CandidateForbidden(t *testing.T) {
	repo := &memJobRepo{}
	uc := NewJobUsecase(repo)
	actor := user.User{ID: uuid.New(), Role: user.RoleCandidate}

	if _, err := uc.Create(context.Background(), actor, CreateJobInput{Title: "Engineer", Company: "Acme"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Fatal("forbidden create must not persist a job")
	}
}

func TestJobUsecase_List_NewestFirst(t *testing.T) {
	repo := &memJobRepo{}
	uc := NewJobUsecase(repo)
	actor := recruiter()

	base := time.Now().UTC()
	for i, title := range []string{"first", "second", "third"} {
		j, err := uc.Create(context.Background(), actor, CreateJobInput{Title: title, Company: "Acme"})
		if err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
		// spread creation times so ordering is deterministic
		repo.jobs[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_ = j
	}

	jobs, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	if jobs[0].Title != "third" || jobs[2].Title != "first" {
		t.Fatalf("jobs not ordered newest first: %q, %q, %q", jobs[0].Title, jobs[1].Title, jobs[2].Title)
	}
}
