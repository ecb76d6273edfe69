package dto

import (
	"job-board/internal/repository"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewSkillListResponse(skills []repository.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{ID: s.ID, Name: s.Name})
	}
	return out
}

type ApplicationStatusResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewStatusListResponse(statuses []repository.ApplicationStatusRow) []ApplicationStatusResponse {
	out := make([]ApplicationStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, ApplicationStatusResponse{ID: s.ID, Name: s.Name})
	}
	return out
}
