package dto

import (
	"time"

	"job-board/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ApplicantID       uuid.UUID  `json:"applicant_id"`
	JobID             uuid.UUID  `json:"job_id"`
	Status            string     `json:"status"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	ReviewedAt        *time.Time `json:"reviewed_at"`
	ScreeningAt       *time.Time `json:"screening_at"`
	OfferSentAt       *time.Time `json:"offer_sent_at"`
	RejectedAt        *time.Time `json:"rejected_at"`
	RejectionFeedback *string    `json:"rejection_feedback"`
}

func NewApplicationResponse(app application.Application) ApplicationResponse {
	return ApplicationResponse{
		ApplicantID:       app.ApplicantID,
		JobID:             app.JobID,
		Status:            app.Status.Name(),
		SubmittedAt:       app.SubmittedAt,
		ReviewedAt:        app.ReviewedAt,
		ScreeningAt:       app.ScreeningAt,
		OfferSentAt:       app.OfferSentAt,
		RejectedAt:        app.RejectedAt,
		RejectionFeedback: app.RejectionFeedback,
	}
}

func NewApplicationListResponse(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, NewApplicationResponse(app))
	}
	return out
}
