package repository

import (
	"context"
	"errors"

	"job-board/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSkillNotFound        = errors.New("skill not found")
	ErrProfileSkillExists   = errors.New("profile skill already exists")
	ErrProfileSkillNotFound = errors.New("profile skill not found")
)

type Skill struct {
	ID   uuid.UUID
	Name string
}

type SkillRepository interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	FindByName(ctx context.Context, name string) (Skill, error)
	ExistsByID(ctx context.Context, skillID uuid.UUID) (bool, error)
	ListProfileSkills(ctx context.Context, profileID uuid.UUID) ([]Skill, error)
	FindProfileSkillIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error)
	AddProfileSkill(ctx context.Context, profileID, skillID uuid.UUID) error
	RemoveProfileSkill(ctx context.Context, profileID, skillID uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) ListSkills(ctx context.Context) ([]Skill, error) {
	return r.list(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
}

func (r *PostgresSkillRepository) FindByName(ctx context.Context, name string) (Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM skills WHERE name = $1`, name)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, skillID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, skillID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) ListProfileSkills(ctx context.Context, profileID uuid.UUID) ([]Skill, error) {
	return r.list(ctx,
		`SELECT s.id, s.name
		 FROM profile_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.profile_id = $1
		 ORDER BY s.name ASC`,
		profileID,
	)
}

func (r *PostgresSkillRepository) FindProfileSkillIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id FROM profile_skills WHERE profile_id = $1 ORDER BY skill_id ASC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) AddProfileSkill(ctx context.Context, profileID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profile_skills (profile_id, skill_id) VALUES ($1, $2)`,
		profileID, skillID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProfileSkillExists
		}
		if isForeignKeyViolation(err) {
			return ErrSkillNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresSkillRepository) RemoveProfileSkill(ctx context.Context, profileID, skillID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM profile_skills WHERE profile_id = $1 AND skill_id = $2`,
		profileID, skillID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileSkillNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) list(ctx context.Context, q string, args ...any) ([]Skill, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
