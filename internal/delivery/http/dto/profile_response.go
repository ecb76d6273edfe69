package dto

import (
	"time"

	"job-board/internal/repository"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	HasResume bool      `json:"has_resume"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProfileResponse(p repository.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		HasResume: p.HasResume,
		CreatedAt: p.CreatedAt,
	}
}
