package usecase

import (
	"context"
	"errors"
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
	ErrProfileRequired     = errors.New("applicant profile required")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

type TransitionInput struct {
	Target            application.Status
	RejectionFeedback *string
}

// StatusNotifier receives the outcome of a successful transition. The
// websocket hub implements it; a nil notifier disables notification.
type StatusNotifier interface {
	NotifyStatusChanged(applicantID, jobID uuid.UUID, status application.Status)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error)
	Transition(ctx context.Context, recruiterID, applicantID, jobID uuid.UUID, in TransitionInput) (application.Application, error)
	Withdraw(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error)
	Get(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error)
	ListForApplicant(ctx context.Context, applicantID uuid.UUID, status *application.Status) ([]application.Application, error)
	ListForJob(ctx context.Context, recruiterID, jobID uuid.UUID, status *application.Status) ([]application.Application, error)
}

type Applications struct {
	apps     repository.ApplicationRepository
	jobs     repository.JobRepository
	profiles repository.ProfileRepository

	cache    MatchCache
	notifier StatusNotifier

	now func() time.Time
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	profiles repository.ProfileRepository,
	cache MatchCache,
	notifier StatusNotifier,
) *Applications {
	return &Applications{
		apps:     apps,
		jobs:     jobs,
		profiles: profiles,
		cache:    cache,
		notifier: notifier,
		now:      time.Now,
	}
}

func (u *Applications) Apply(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	if applicantID == uuid.Nil || jobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !exists {
		return application.Application{}, ErrJobNotFound
	}

	hasProfile, err := u.profiles.ExistsByUserID(ctx, applicantID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !hasProfile {
		return application.Application{}, ErrProfileRequired
	}

	created, err := u.apps.Insert(ctx, application.New(applicantID, jobID, u.now()))
	if err != nil {
		if errors.Is(err, repository.ErrApplicationExists) {
			return application.Application{}, ErrApplicationExists
		}
		return application.Application{}, ErrInternal
	}

	u.invalidateShortlist(ctx, applicantID)
	return created, nil
}

func (u *Applications) Transition(ctx context.Context, recruiterID, applicantID, jobID uuid.UUID, in TransitionInput) (application.Application, error) {
	if recruiterID == uuid.Nil || applicantID == uuid.Nil || jobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}
	if !in.Target.Valid() {
		return application.Application{}, application.ErrUnknownStatus
	}

	job, err := u.jobs.Find(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}
	if job.RecruiterID != recruiterID {
		return application.Application{}, ErrForbidden
	}

	updated, err := u.apps.Transition(ctx, applicantID, jobID, func(app *application.Application) error {
		return app.Transition(in.Target, in.RejectionFeedback, u.now())
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrApplicationNotFound):
			return application.Application{}, ErrApplicationNotFound
		case errors.Is(err, application.ErrInvalidTransition):
			return application.Application{}, ErrInvalidTransition
		default:
			return application.Application{}, ErrInternal
		}
	}

	if u.notifier != nil {
		u.notifier.NotifyStatusChanged(applicantID, jobID, updated.Status)
	}
	return updated, nil
}

func (u *Applications) Withdraw(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	if applicantID == uuid.Nil || jobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}

	deleted, err := u.apps.Delete(ctx, applicantID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}

	u.invalidateShortlist(ctx, applicantID)
	return deleted, nil
}

func (u *Applications) Get(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	app, err := u.apps.Find(ctx, applicantID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}
	return app, nil
}

func (u *Applications) ListForApplicant(ctx context.Context, applicantID uuid.UUID, status *application.Status) ([]application.Application, error) {
	if applicantID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	out, err := u.apps.List(ctx, repository.ApplicationFilter{
		ApplicantID: &applicantID,
		Status:      status,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Applications) ListForJob(ctx context.Context, recruiterID, jobID uuid.UUID, status *application.Status) ([]application.Application, error) {
	if recruiterID == uuid.Nil || jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	job, err := u.jobs.Find(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if job.RecruiterID != recruiterID {
		return nil, ErrForbidden
	}

	out, err := u.apps.List(ctx, repository.ApplicationFilter{
		JobID:  &jobID,
		Status: status,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Applications) invalidateShortlist(ctx context.Context, applicantID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, MatchShortlistCacheKey(applicantID))
}
