package repository

import (
	"context"
	"errors"

	"job-board/internal/database"
	"job-board/internal/domain/application"

	"github.com/jackc/pgx/v5"
)

var ErrStatusNotFound = errors.New("application status not found")

// ApplicationStatusRow is one entry of the immutable status catalog. The id
// is the workflow rank.
type ApplicationStatusRow struct {
	ID   int
	Name string
}

type StatusRepository interface {
	List(ctx context.Context) ([]ApplicationStatusRow, error)
	FindByName(ctx context.Context, name string) (ApplicationStatusRow, error)
}

type PostgresStatusRepository struct {
	db database.DB
}

func NewPostgresStatusRepository(db database.DB) *PostgresStatusRepository {
	return &PostgresStatusRepository{db: db}
}

func (r *PostgresStatusRepository) List(ctx context.Context) ([]ApplicationStatusRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM application_statuses ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicationStatusRow, 0, len(application.Statuses()))
	for rows.Next() {
		var s ApplicationStatusRow
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

func (r *PostgresStatusRepository) FindByName(ctx context.Context, name string) (ApplicationStatusRow, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name FROM application_statuses WHERE name = $1`,
		name,
	)

	var s ApplicationStatusRow
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ApplicationStatusRow{}, ErrStatusNotFound
		}
		return ApplicationStatusRow{}, err
	}
	return s, nil
}
