package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Application is one applicant's application for one job. The pair
// (ApplicantID, JobID) is the identity; an applicant holds at most one
// application per job.
type Application struct {
	ApplicantID uuid.UUID
	JobID       uuid.UUID
	Status      Status

	SubmittedAt time.Time
	ReviewedAt  *time.Time
	ScreeningAt *time.Time
	OfferSentAt *time.Time
	RejectedAt  *time.Time

	RejectionFeedback *string
}

// New returns a fresh application at SUBMITTED with its submitted date
// stamped.
func New(applicantID, jobID uuid.UUID, now time.Time) Application {
	return Application{
		ApplicantID: applicantID,
		JobID:       jobID,
		Status:      StatusSubmitted,
		SubmittedAt: now.UTC(),
	}
}

// Transition moves the application to target if the workflow rule allows
// it. The date field for target is stamped only the first time that status
// is entered; replaying the current status is legal and changes no dates.
// Feedback is stored only when target is REJECTED and feedback is non-nil.
func (a *Application) Transition(target Status, feedback *string, now time.Time) error {
	if !CanTransition(a.Status, target) {
		return ErrInvalidTransition
	}

	a.Status = target
	stamp := now.UTC()

	switch target {
	case StatusInReview:
		if a.ReviewedAt == nil {
			a.ReviewedAt = &stamp
		}
	case StatusScreening:
		if a.ScreeningAt == nil {
			a.ScreeningAt = &stamp
		}
	case StatusOfferSent:
		if a.OfferSentAt == nil {
			a.OfferSentAt = &stamp
		}
	case StatusRejected:
		if a.RejectedAt == nil {
			a.RejectedAt = &stamp
		}
		if feedback != nil {
			fb := *feedback
			a.RejectionFeedback = &fb
		}
	}

	return nil
}
