package usecase

import (
	"context"
	"errors"

	"job-board/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound        = errors.New("skill not found")
	ErrSkillAlreadyDeclared = errors.New("skill already declared")
	ErrSkillNotDeclared     = errors.New("skill not declared")
)

type SkillUsecase interface {
	ListDeclared(ctx context.Context, userID uuid.UUID) ([]repository.Skill, error)
	Declare(ctx context.Context, userID, skillID uuid.UUID) ([]repository.Skill, error)
	Remove(ctx context.Context, userID, skillID uuid.UUID) error
}

type Skills struct {
	skills   repository.SkillRepository
	profiles repository.ProfileRepository
	cache    MatchCache
}

func NewSkillUsecase(skills repository.SkillRepository, profiles repository.ProfileRepository, cache MatchCache) *Skills {
	return &Skills{skills: skills, profiles: profiles, cache: cache}
}

func (u *Skills) ListDeclared(ctx context.Context, userID uuid.UUID) ([]repository.Skill, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	out, err := u.skills.ListProfileSkills(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Skills) Declare(ctx context.Context, userID, skillID uuid.UUID) ([]repository.Skill, error) {
	if userID == uuid.Nil || skillID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	hasProfile, err := u.profiles.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if !hasProfile {
		return nil, ErrProfileRequired
	}

	exists, err := u.skills.ExistsByID(ctx, skillID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrSkillNotFound
	}

	if err := u.skills.AddProfileSkill(ctx, userID, skillID); err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileSkillExists):
			return nil, ErrSkillAlreadyDeclared
		case errors.Is(err, repository.ErrSkillNotFound):
			return nil, ErrSkillNotFound
		default:
			return nil, ErrInternal
		}
	}

	u.invalidateShortlist(ctx, userID)
	return u.ListDeclared(ctx, userID)
}

func (u *Skills) Remove(ctx context.Context, userID, skillID uuid.UUID) error {
	if userID == uuid.Nil || skillID == uuid.Nil {
		return ErrInvalidInput
	}

	if err := u.skills.RemoveProfileSkill(ctx, userID, skillID); err != nil {
		if errors.Is(err, repository.ErrProfileSkillNotFound) {
			return ErrSkillNotDeclared
		}
		return ErrInternal
	}

	u.invalidateShortlist(ctx, userID)
	return nil
}

func (u *Skills) invalidateShortlist(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, MatchShortlistCacheKey(userID))
}
