package repository

import (
	"context"
	"errors"
	"time"

	"job-board/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

type Profile struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	HasResume bool
	CreatedAt time.Time
}

type ProfileRepository interface {
	Find(ctx context.Context, userID uuid.UUID) (Profile, error)
	ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, p Profile) (Profile, error)
	SetHasResume(ctx context.Context, userID uuid.UUID, hasResume bool) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Find(ctx context.Context, userID uuid.UUID) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, first_name, last_name, has_resume, created_at FROM profiles WHERE user_id = $1`,
		userID,
	)

	var p Profile
	if err := row.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.HasResume, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = $1)`, userID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p Profile) (Profile, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (user_id, first_name, last_name, has_resume) VALUES ($1, $2, $3, $4)`,
		p.UserID, p.FirstName, p.LastName, p.HasResume,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Profile{}, ErrProfileExists
		}
		return Profile{}, err
	}
	return r.Find(ctx, p.UserID)
}

func (r *PostgresProfileRepository) SetHasResume(ctx context.Context, userID uuid.UUID, hasResume bool) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE profiles SET has_resume = $2 WHERE user_id = $1`,
		userID, hasResume,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
