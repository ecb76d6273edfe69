package dto

import (
	"time"

	"job-board/internal/repository"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	RecruiterID uuid.UUID `json:"recruiter_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	MinSalary   int       `json:"min_salary"`
	MaxSalary   int       `json:"max_salary"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewJobResponse(j repository.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		RecruiterID: j.RecruiterID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		MinSalary:   j.MinSalary,
		MaxSalary:   j.MaxSalary,
		CreatedAt:   j.CreatedAt,
	}
}

func NewJobListResponse(jobs []repository.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
