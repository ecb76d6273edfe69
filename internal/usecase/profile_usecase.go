package usecase

import (
	"context"
	"errors"
	"strings"

	"job-board/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

type ProfileInput struct {
	FirstName string
	LastName  string
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (repository.Profile, error)
	Create(ctx context.Context, userID uuid.UUID, in ProfileInput) (repository.Profile, error)
}

type Profiles struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profiles {
	return &Profiles{profiles: profiles}
}

func (u *Profiles) Get(ctx context.Context, userID uuid.UUID) (repository.Profile, error) {
	if userID == uuid.Nil {
		return repository.Profile{}, ErrInvalidInput
	}
	p, err := u.profiles.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Profile{}, ErrProfileNotFound
		}
		return repository.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) Create(ctx context.Context, userID uuid.UUID, in ProfileInput) (repository.Profile, error) {
	if userID == uuid.Nil {
		return repository.Profile{}, ErrInvalidInput
	}

	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return repository.Profile{}, ErrInvalidInput
	}

	created, err := u.profiles.Create(ctx, repository.Profile{
		UserID:    userID,
		FirstName: first,
		LastName:  last,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return repository.Profile{}, ErrProfileExists
		}
		return repository.Profile{}, ErrInternal
	}
	return created, nil
}
