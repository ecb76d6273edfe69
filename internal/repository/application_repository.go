package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board/internal/database"
	"job-board/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
)

// ApplicationFilter narrows List. Nil fields are ignored.
type ApplicationFilter struct {
	ApplicantID *uuid.UUID
	JobID       *uuid.UUID
	Status      *application.Status
}

type ApplicationRepository interface {
	Find(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error)
	List(ctx context.Context, f ApplicationFilter) ([]application.Application, error)
	Insert(ctx context.Context, app application.Application) (application.Application, error)
	// Transition locks the application row, applies mutate and persists the
	// result in one transaction. Errors returned by mutate abort the
	// transaction and are returned unchanged.
	Transition(ctx context.Context, applicantID, jobID uuid.UUID, mutate func(*application.Application) error) (application.Application, error)
	Delete(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `applicant_id, job_id, status_id, submitted_at, reviewed_at, screening_at, offer_sent_at, rejected_at, rejection_feedback`

func scanApplication(row database.Row) (application.Application, error) {
	var app application.Application
	var statusID int
	err := row.Scan(
		&app.ApplicantID,
		&app.JobID,
		&statusID,
		&app.SubmittedAt,
		&app.ReviewedAt,
		&app.ScreeningAt,
		&app.OfferSentAt,
		&app.RejectedAt,
		&app.RejectionFeedback,
	)
	if err != nil {
		return application.Application{}, err
	}
	app.Status = application.Status(statusID)
	return app, nil
}

func (r *PostgresApplicationRepository) Find(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE applicant_id = $1 AND job_id = $2`,
		applicantID, jobID,
	)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return app, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context, f ApplicationFilter) ([]application.Application, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 3)

	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.ApplicantID != nil {
		add("applicant_id = $%d", *f.ApplicantID)
	}
	if f.JobID != nil {
		add("job_id = $%d", *f.JobID)
	}
	if f.Status != nil {
		add("status_id = $%d", int(*f.Status))
	}

	q := `SELECT ` + applicationColumns + ` FROM applications`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY submitted_at ASC, job_id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Insert(ctx context.Context, app application.Application) (application.Application, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		app.ApplicantID,
		app.JobID,
		int(app.Status),
		app.SubmittedAt,
		app.ReviewedAt,
		app.ScreeningAt,
		app.OfferSentAt,
		app.RejectedAt,
		app.RejectionFeedback,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return application.Application{}, ErrApplicationExists
		}
		return application.Application{}, err
	}
	return r.Find(ctx, app.ApplicantID, app.JobID)
}

func (r *PostgresApplicationRepository) Transition(ctx context.Context, applicantID, jobID uuid.UUID, mutate func(*application.Application) error) (application.Application, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return application.Application{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row := tx.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE applicant_id = $1 AND job_id = $2
		 FOR UPDATE`,
		applicantID, jobID,
	)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}

	if err := mutate(&app); err != nil {
		return application.Application{}, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE applications
		 SET status_id = $3,
		     reviewed_at = $4,
		     screening_at = $5,
		     offer_sent_at = $6,
		     rejected_at = $7,
		     rejection_feedback = $8
		 WHERE applicant_id = $1 AND job_id = $2`,
		applicantID,
		jobID,
		int(app.Status),
		app.ReviewedAt,
		app.ScreeningAt,
		app.OfferSentAt,
		app.RejectedAt,
		app.RejectionFeedback,
	)
	if err != nil {
		return application.Application{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return application.Application{}, err
	}
	return app, nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	app, err := r.Find(ctx, applicantID, jobID)
	if err != nil {
		return application.Application{}, err
	}

	affected, err := r.db.Exec(ctx,
		`DELETE FROM applications WHERE applicant_id = $1 AND job_id = $2`,
		applicantID, jobID,
	)
	if err != nil {
		return application.Application{}, err
	}
	if affected == 0 {
		return application.Application{}, ErrApplicationNotFound
	}
	return app, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
