package usecase

import (
	"context"
	"errors"
	"strings"

	"job-board/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrForbidden   = errors.New("forbidden")
)

type JobInput struct {
	Title       string
	Description string
	Location    string
	MinSalary   int
	MaxSalary   int
}

type JobUsecase interface {
	ListAll(ctx context.Context) ([]repository.Job, error)
	Get(ctx context.Context, jobID uuid.UUID) (repository.Job, error)
	ListOwn(ctx context.Context, recruiterID uuid.UUID) ([]repository.Job, error)
	Create(ctx context.Context, recruiterID uuid.UUID, in JobInput) (repository.Job, error)
	Update(ctx context.Context, recruiterID, jobID uuid.UUID, in JobInput) (repository.Job, error)
	GetRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error)
	SetRequiredSkills(ctx context.Context, recruiterID, jobID uuid.UUID, skillIDs []uuid.UUID) error
}

type Jobs struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
}

func NewJobUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository) *Jobs {
	return &Jobs{jobs: jobs, profiles: profiles}
}

func (u *Jobs) ListAll(ctx context.Context) ([]repository.Job, error) {
	out, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Jobs) Get(ctx context.Context, jobID uuid.UUID) (repository.Job, error) {
	job, err := u.jobs.Find(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Job{}, ErrJobNotFound
		}
		return repository.Job{}, ErrInternal
	}
	return job, nil
}

func (u *Jobs) ListOwn(ctx context.Context, recruiterID uuid.UUID) ([]repository.Job, error) {
	if recruiterID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	out, err := u.jobs.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Jobs) Create(ctx context.Context, recruiterID uuid.UUID, in JobInput) (repository.Job, error) {
	if recruiterID == uuid.Nil {
		return repository.Job{}, ErrInvalidInput
	}
	if err := validateJobInput(in); err != nil {
		return repository.Job{}, err
	}

	hasProfile, err := u.profiles.ExistsByUserID(ctx, recruiterID)
	if err != nil {
		return repository.Job{}, ErrInternal
	}
	if !hasProfile {
		return repository.Job{}, ErrProfileRequired
	}

	created, err := u.jobs.Create(ctx, repository.Job{
		ID:          uuid.New(),
		RecruiterID: recruiterID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		MinSalary:   in.MinSalary,
		MaxSalary:   in.MaxSalary,
	})
	if err != nil {
		return repository.Job{}, ErrInternal
	}
	return created, nil
}

func (u *Jobs) Update(ctx context.Context, recruiterID, jobID uuid.UUID, in JobInput) (repository.Job, error) {
	if err := validateJobInput(in); err != nil {
		return repository.Job{}, err
	}

	job, err := u.ownedJob(ctx, recruiterID, jobID)
	if err != nil {
		return repository.Job{}, err
	}

	job.Title = strings.TrimSpace(in.Title)
	job.Description = strings.TrimSpace(in.Description)
	job.Location = strings.TrimSpace(in.Location)
	job.MinSalary = in.MinSalary
	job.MaxSalary = in.MaxSalary

	updated, err := u.jobs.Update(ctx, job)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Job{}, ErrJobNotFound
		}
		return repository.Job{}, ErrInternal
	}
	return updated, nil
}

func (u *Jobs) GetRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrJobNotFound
	}

	ids, err := u.jobs.FindJobSkillIDs(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return ids, nil
}

func (u *Jobs) SetRequiredSkills(ctx context.Context, recruiterID, jobID uuid.UUID, skillIDs []uuid.UUID) error {
	for _, id := range skillIDs {
		if id == uuid.Nil {
			return ErrInvalidInput
		}
	}

	if _, err := u.ownedJob(ctx, recruiterID, jobID); err != nil {
		return err
	}

	if err := u.jobs.ReplaceJobSkills(ctx, jobID, skillIDs); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Jobs) ownedJob(ctx context.Context, recruiterID, jobID uuid.UUID) (repository.Job, error) {
	if recruiterID == uuid.Nil || jobID == uuid.Nil {
		return repository.Job{}, ErrInvalidInput
	}

	job, err := u.jobs.Find(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Job{}, ErrJobNotFound
		}
		return repository.Job{}, ErrInternal
	}
	if job.RecruiterID != recruiterID {
		return repository.Job{}, ErrForbidden
	}
	return job, nil
}

func validateJobInput(in JobInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidInput
	}
	if in.MinSalary < 0 || in.MaxSalary < 0 {
		return ErrInvalidInput
	}
	if in.MaxSalary > 0 && in.MinSalary > in.MaxSalary {
		return ErrInvalidInput
	}
	return nil
}
