package usecase

import (
	"context"
	"errors"
	"testing"

	"job-board/internal/domain/application"
	"job-board/internal/repository"

	"github.com/google/uuid"
)

func newApplicationsFixture() (*Applications, *mockAppRepo, *mockJobRepo, *mockProfileRepo, *mockMatchCache, *mockNotifier) {
	apps := newMockAppRepo()
	jobs := newMockJobRepo()
	profiles := newMockProfileRepo()
	cache := newMockMatchCache()
	notifier := &mockNotifier{}
	uc := NewApplicationUsecase(apps, jobs, profiles, cache, notifier)
	return uc, apps, jobs, profiles, cache, notifier
}

func seedJob(jobs *mockJobRepo, recruiterID uuid.UUID) repository.Job {
	j := repository.Job{ID: uuid.New(), RecruiterID: recruiterID, Title: "Backend Engineer"}
	jobs.jobs[j.ID] = j
	return j
}

func seedProfile(profiles *mockProfileRepo, userID uuid.UUID) {
	profiles.profiles[userID] = repository.Profile{UserID: userID, FirstName: "Ada", LastName: "L"}
}

func TestApplications_Apply_Success(t *testing.T) {
	uc, _, jobs, profiles, cache, _ := newApplicationsFixture()

	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job := seedJob(jobs, uuid.New())

	created, err := uc.Apply(context.Background(), applicantID, job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != application.StatusSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", created.Status.Name())
	}
	if created.SubmittedAt.IsZero() {
		t.Fatalf("expected submitted_at stamped")
	}

	key := MatchShortlistCacheKey(applicantID)
	found := false
	for _, k := range cache.deleted {
		if k == key {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected shortlist cache invalidated on apply")
	}
}

func TestApplications_Apply_JobNotFound(t *testing.T) {
	uc, _, _, profiles, _, _ := newApplicationsFixture()

	applicantID := uuid.New()
	seedProfile(profiles, applicantID)

	_, err := uc.Apply(context.Background(), applicantID, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplications_Apply_ProfileRequired(t *testing.T) {
	uc, _, jobs, _, _, _ := newApplicationsFixture()

	job := seedJob(jobs, uuid.New())

	_, err := uc.Apply(context.Background(), uuid.New(), job.ID)
	if !errors.Is(err, ErrProfileRequired) {
		t.Fatalf("expected ErrProfileRequired, got %v", err)
	}
}

func TestApplications_Apply_Duplicate(t *testing.T) {
	uc, _, jobs, profiles, _, _ := newApplicationsFixture()

	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job := seedJob(jobs, uuid.New())

	if _, err := uc.Apply(context.Background(), applicantID, job.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := uc.Apply(context.Background(), applicantID, job.ID)
	if !errors.Is(err, ErrApplicationExists) {
		t.Fatalf("expected ErrApplicationExists, got %v", err)
	}
}

func TestApplications_Transition_Success(t *testing.T) {
	uc, _, jobs, profiles, _, notifier := newApplicationsFixture()

	recruiterID := uuid.New()
	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job := seedJob(jobs, recruiterID)

	if _, err := uc.Apply(context.Background(), applicantID, job.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	updated, err := uc.Transition(context.Background(), recruiterID, applicantID, job.ID, TransitionInput{Target: application.StatusInReview})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != application.StatusInReview {
		t.Fatalf("expected IN_REVIEW, got %s", updated.Status.Name())
	}
	if updated.ReviewedAt == nil {
		t.Fatalf("expected reviewed_at stamped")
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.applicantID != applicantID || ev.jobID != job.ID || ev.status != application.StatusInReview {
		t.Fatalf("unexpected notification %+v", ev)
	}
}

func TestApplications_Transition_NotOwner(t *testing.T) {
	uc, _, jobs, profiles, _, _ := newApplicationsFixture()

	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job := seedJob(jobs, uuid.New())

	if _, err := uc.Apply(context.Background(), applicantID, job.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := uc.Transition(context.Background(), uuid.New(), applicantID, job.ID, TransitionInput{Target: application.StatusInReview})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplications_Transition_Illegal(t *testing.T) {
	uc, apps, jobs, profiles, _, notifier := newApplicationsFixture()

	recruiterID := uuid.New()
	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job := seedJob(jobs, recruiterID)

	if _, err := uc.Apply(context.Background(), applicantID, job.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Transition(context.Background(), recruiterID, applicantID, job.ID, TransitionInput{Target: application.StatusScreening}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := uc.Transition(context.Background(), recruiterID, applicantID, job.ID, TransitionInput{Target: application.StatusInReview})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	stored, _ := apps.Find(context.Background(), applicantID, job.ID)
	if stored.Status != application.StatusScreening {
		t.Fatalf("stored status changed after illegal transition: %s", stored.Status.Name())
	}
	if len(notifier.events) != 1 {
		t.Fatalf("illegal transition must not notify, got %d events", len(notifier.events))
	}
}

func TestApplications_Transition_UnknownTarget(t *testing.T) {
	uc, _, jobs, profiles, _, _ := newApplicationsFixture()

	recruiterID := uuid.New()
	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job := seedJob(jobs, recruiterID)

	_, err := uc.Transition(context.Background(), recruiterID, applicantID, job.ID, TransitionInput{Target: application.Status(42)})
	if !errors.Is(err, application.ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestApplications_Transition_ApplicationNotFound(t *testing.T) {
	uc, _, jobs, _, _, _ := newApplicationsFixture()

	recruiterID := uuid.New()
	job := seedJob(jobs, recruiterID)

	_, err := uc.Transition(context.Background(), recruiterID, uuid.New(), job.ID, TransitionInput{Target: application.StatusInReview})
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplications_Withdraw_AnyStatus(t *testing.T) {
	uc, _, jobs, profiles, cache, _ := newApplicationsFixture()

	recruiterID := uuid.New()
	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job := seedJob(jobs, recruiterID)

	if _, err := uc.Apply(context.Background(), applicantID, job.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Transition(context.Background(), recruiterID, applicantID, job.ID, TransitionInput{Target: application.StatusRejected}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Withdrawal is the applicant's right regardless of status, REJECTED
	// included.
	cache.deleted = nil
	deleted, err := uc.Withdraw(context.Background(), applicantID, job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if deleted.Status != application.StatusRejected {
		t.Fatalf("expected the removed application returned")
	}
	if len(cache.deleted) == 0 {
		t.Fatalf("expected shortlist cache invalidated on withdraw")
	}

	if _, err := uc.Get(context.Background(), applicantID, job.ID); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected application gone, got %v", err)
	}
}

func TestApplications_Withdraw_NotFound(t *testing.T) {
	uc, _, _, _, _, _ := newApplicationsFixture()

	_, err := uc.Withdraw(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplications_ListForApplicant_StatusFilter(t *testing.T) {
	uc, _, jobs, profiles, _, _ := newApplicationsFixture()

	recruiterID := uuid.New()
	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job1 := seedJob(jobs, recruiterID)
	job2 := seedJob(jobs, recruiterID)

	if _, err := uc.Apply(context.Background(), applicantID, job1.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Apply(context.Background(), applicantID, job2.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Transition(context.Background(), recruiterID, applicantID, job2.ID, TransitionInput{Target: application.StatusInReview}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	all, err := uc.ListForApplicant(context.Background(), applicantID, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(all))
	}

	inReview := application.StatusInReview
	filtered, err := uc.ListForApplicant(context.Background(), applicantID, &inReview)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(filtered) != 1 || filtered[0].JobID != job2.ID {
		t.Fatalf("expected only the IN_REVIEW application for job2")
	}
}

func TestApplications_ListForJob_OwnershipChecked(t *testing.T) {
	uc, _, jobs, profiles, _, _ := newApplicationsFixture()

	recruiterID := uuid.New()
	applicantID := uuid.New()
	seedProfile(profiles, applicantID)
	job := seedJob(jobs, recruiterID)

	if _, err := uc.Apply(context.Background(), applicantID, job.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	out, err := uc.ListForJob(context.Background(), recruiterID, job.ID, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 application, got %d", len(out))
	}

	if _, err := uc.ListForJob(context.Background(), uuid.New(), job.ID, nil); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}
