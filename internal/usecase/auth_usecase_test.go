package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-board/internal/pkg/jwt"
	"job-board/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]repository.User
	err   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uuid.UUID]repository.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u repository.User) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	for _, existing := range m.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return repository.User{}, repository.ErrUserExists
		}
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func newAuthFixture() (*Auth, *mockUserRepo) {
	users := newMockUserRepo()
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 30*time.Minute, 24*time.Hour)
	return NewAuthUsecase(users, svc), users
}

func TestAuth_Register_Success(t *testing.T) {
	uc, _ := newAuthFixture()

	created, err := uc.Register(context.Background(), RegisterInput{
		Username: "ada",
		Email:    "Ada@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}
	if created.PasswordHash == "correct-horse" {
		t.Fatalf("password stored in plain text")
	}
}

func TestAuth_Register_ShortPassword(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), RegisterInput{Username: "ada", Email: "a@b.c", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Register_DuplicateUsername(t *testing.T) {
	uc, _ := newAuthFixture()

	in := RegisterInput{Username: "ada", Email: "ada@example.com", Password: "correct-horse"}
	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuth_Login_Success(t *testing.T) {
	uc, _ := newAuthFixture()

	if _, err := uc.Register(context.Background(), RegisterInput{Username: "ada", Email: "ada@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	user, pair, err := uc.Login(context.Background(), "ada", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if user.Username != "ada" {
		t.Fatalf("unexpected user %q", user.Username)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens issued")
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	uc, _ := newAuthFixture()

	if _, err := uc.Register(context.Background(), RegisterInput{Username: "ada", Email: "ada@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, _, err := uc.Login(context.Background(), "ada", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	uc, _ := newAuthFixture()

	_, _, err := uc.Login(context.Background(), "nobody", "whatever-pass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Refresh_Success(t *testing.T) {
	uc, _ := newAuthFixture()

	if _, err := uc.Register(context.Background(), RegisterInput{Username: "ada", Email: "ada@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, pair, err := uc.Login(context.Background(), "ada", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	next, err := uc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatalf("expected fresh token pair")
	}
}

func TestAuth_Refresh_RejectsAccessToken(t *testing.T) {
	uc, _ := newAuthFixture()

	if _, err := uc.Register(context.Background(), RegisterInput{Username: "ada", Email: "ada@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, pair, err := uc.Login(context.Background(), "ada", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuth_Me(t *testing.T) {
	uc, _ := newAuthFixture()

	created, err := uc.Register(context.Background(), RegisterInput{Username: "ada", Email: "ada@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	user, err := uc.Me(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user")
	}

	if _, err := uc.Me(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
