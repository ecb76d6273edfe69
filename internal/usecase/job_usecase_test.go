package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestJobs_Create_RequiresProfile(t *testing.T) {
	jobs := newMockJobRepo()
	profiles := newMockProfileRepo()
	uc := NewJobUsecase(jobs, profiles)

	_, err := uc.Create(context.Background(), uuid.New(), JobInput{Title: "Backend Engineer"})
	if !errors.Is(err, ErrProfileRequired) {
		t.Fatalf("expected ErrProfileRequired, got %v", err)
	}
}

func TestJobs_Create_Success(t *testing.T) {
	jobs := newMockJobRepo()
	profiles := newMockProfileRepo()
	uc := NewJobUsecase(jobs, profiles)

	recruiterID := uuid.New()
	seedProfile(profiles, recruiterID)

	created, err := uc.Create(context.Background(), recruiterID, JobInput{
		Title:     "  Backend Engineer  ",
		Location:  "Berlin",
		MinSalary: 50000,
		MaxSalary: 70000,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Title != "Backend Engineer" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.RecruiterID != recruiterID {
		t.Fatalf("unexpected recruiter id")
	}
}

func TestJobs_Create_InvalidSalaryRange(t *testing.T) {
	jobs := newMockJobRepo()
	profiles := newMockProfileRepo()
	uc := NewJobUsecase(jobs, profiles)

	recruiterID := uuid.New()
	seedProfile(profiles, recruiterID)

	_, err := uc.Create(context.Background(), recruiterID, JobInput{
		Title:     "Backend Engineer",
		MinSalary: 90000,
		MaxSalary: 70000,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobs_Update_OnlyOwner(t *testing.T) {
	jobs := newMockJobRepo()
	profiles := newMockProfileRepo()
	uc := NewJobUsecase(jobs, profiles)

	recruiterID := uuid.New()
	job := seedJob(jobs, recruiterID)

	_, err := uc.Update(context.Background(), uuid.New(), job.ID, JobInput{Title: "New Title"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := uc.Update(context.Background(), recruiterID, job.ID, JobInput{Title: "New Title"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Title != "New Title" {
		t.Fatalf("title not updated")
	}
}

func TestJobs_Get_NotFound(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), newMockProfileRepo())

	_, err := uc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobs_SetRequiredSkills_RejectsNilID(t *testing.T) {
	jobs := newMockJobRepo()
	uc := NewJobUsecase(jobs, newMockProfileRepo())

	recruiterID := uuid.New()
	job := seedJob(jobs, recruiterID)

	err := uc.SetRequiredSkills(context.Background(), recruiterID, job.ID, []uuid.UUID{uuid.Nil})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
