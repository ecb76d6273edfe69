package usecase

import (
	"context"
	"errors"
	"strings"

	"job-board/internal/pkg/jwt"
	"job-board/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInternal           = errors.New("internal error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username or email already taken")
	ErrUserNotFound       = errors.New("user not found")
)

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	IsRecruiter bool
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.User, error)
	Login(ctx context.Context, username, password string) (repository.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Me(ctx context.Context, userID uuid.UUID) (repository.User, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (repository.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if username == "" || email == "" || len(in.Password) < 8 {
		return repository.User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, ErrInternal
	}

	created, err := u.users.Create(ctx, repository.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsRecruiter:  in.IsRecruiter,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return repository.User{}, ErrUsernameTaken
		}
		return repository.User{}, ErrInternal
	}
	return created, nil
}

func (u *Auth) Login(ctx context.Context, username, password string) (repository.User, TokenPair, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return repository.User{}, TokenPair{}, ErrInvalidCredentials
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return repository.User{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return repository.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(user)
	if err != nil {
		return repository.User{}, TokenPair{}, ErrInternal
	}
	return user, pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrUnauthorized
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrUnauthorized
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, ErrInternal
	}

	return u.issueTokens(user)
}

func (u *Auth) Me(ctx context.Context, userID uuid.UUID) (repository.User, error) {
	if userID == uuid.Nil {
		return repository.User{}, ErrUnauthorized
	}
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, ErrInternal
	}
	return user, nil
}

func (u *Auth) issueTokens(user repository.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(user.ID, user.Email, user.IsRecruiter)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := u.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
