package dto

import (
	"time"

	"job-board/internal/repository"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsRecruiter bool      `json:"is_recruiter"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserResponse(u repository.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsRecruiter: u.IsRecruiter,
		CreatedAt:   u.CreatedAt,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
	TokenResponse
}
