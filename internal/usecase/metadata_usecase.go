package usecase

import (
	"context"

	"job-board/internal/repository"
)

// MetadataUsecase serves the reference catalogs used to populate selection
// lists: the skill taxonomy and the application status catalog.
type MetadataUsecase interface {
	ListSkills(ctx context.Context) ([]repository.Skill, error)
	ListStatuses(ctx context.Context) ([]repository.ApplicationStatusRow, error)
}

type Metadata struct {
	skills   repository.SkillRepository
	statuses repository.StatusRepository
}

func NewMetadataUsecase(skills repository.SkillRepository, statuses repository.StatusRepository) *Metadata {
	return &Metadata{skills: skills, statuses: statuses}
}

func (u *Metadata) ListSkills(ctx context.Context) ([]repository.Skill, error) {
	out, err := u.skills.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Metadata) ListStatuses(ctx context.Context) ([]repository.ApplicationStatusRow, error) {
	out, err := u.statuses.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
