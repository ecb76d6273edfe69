package repository

import (
	"context"
	"errors"
	"time"

	"job-board/internal/database"
	"job-board/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type Job struct {
	ID          uuid.UUID
	RecruiterID uuid.UUID
	Title       string
	Description string
	Location    string
	MinSalary   int
	MaxSalary   int
	CreatedAt   time.Time
}

type JobRepository interface {
	Find(ctx context.Context, jobID uuid.UUID) (Job, error)
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Job, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Job, error)
	Create(ctx context.Context, j Job) (Job, error)
	Update(ctx context.Context, j Job) (Job, error)
	FindJobSkillIDs(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error)
	ReplaceJobSkills(ctx context.Context, jobID uuid.UUID, skillIDs []uuid.UUID) error
	// FindCandidateJobs returns jobs the applicant has not applied to that
	// share at least one skill with the applicant's declared set, each with
	// the job's full required-skill set. Zero overlap jobs are never
	// produced.
	FindCandidateJobs(ctx context.Context, applicantID uuid.UUID) ([]matching.Candidate, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, recruiter_id, title, description, location, min_salary, max_salary, created_at`

func scanJob(row database.Row) (Job, error) {
	var j Job
	err := row.Scan(
		&j.ID,
		&j.RecruiterID,
		&j.Title,
		&j.Description,
		&j.Location,
		&j.MinSalary,
		&j.MaxSalary,
		&j.CreatedAt,
	)
	return j, err
}

func (r *PostgresJobRepository) Find(ctx context.Context, jobID uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`,
		jobID,
	)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id ASC`)
}

func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Job, error) {
	return r.list(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC, id ASC`,
		recruiterID,
	)
}

func (r *PostgresJobRepository) list(ctx context.Context, q string, args ...any) ([]Job, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Job, error) {
	out := make(map[uuid.UUID]Job, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out[j.ID] = j
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j Job) (Job, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, recruiter_id, title, description, location, min_salary, max_salary)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		j.ID, j.RecruiterID, j.Title, j.Description, j.Location, j.MinSalary, j.MaxSalary,
	)
	if err != nil {
		return Job{}, err
	}
	return r.Find(ctx, j.ID)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j Job) (Job, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, location = $4, min_salary = $5, max_salary = $6
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Location, j.MinSalary, j.MaxSalary,
	)
	if err != nil {
		return Job{}, err
	}
	if affected == 0 {
		return Job{}, ErrJobNotFound
	}
	return r.Find(ctx, j.ID)
}

func (r *PostgresJobRepository) FindJobSkillIDs(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id FROM job_skills WHERE job_id = $1 ORDER BY skill_id ASC`,
		jobID,
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

func (r *PostgresJobRepository) ReplaceJobSkills(ctx context.Context, jobID uuid.UUID, skillIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for _, skillID := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			jobID, skillID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrSkillNotFound
			}
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresJobRepository) FindCandidateJobs(ctx context.Context, applicantID uuid.UUID) ([]matching.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, js.skill_id
		 FROM jobs j
		 JOIN job_skills js ON js.job_id = j.id
		 WHERE EXISTS (
		         SELECT 1 FROM job_skills shared
		         JOIN profile_skills ps ON ps.skill_id = shared.skill_id
		         WHERE shared.job_id = j.id AND ps.profile_id = $1)
		   AND NOT EXISTS (
		         SELECT 1 FROM applications a
		         WHERE a.applicant_id = $1 AND a.job_id = j.id)
		 ORDER BY j.id ASC, js.skill_id ASC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Candidate, 0)
	for rows.Next() {
		var jobID, skillID uuid.UUID
		if err := rows.Scan(&jobID, &skillID); err != nil {
			return nil, err
		}
		if n := len(out); n > 0 && out[n-1].JobID == jobID {
			out[n-1].RequiredSkills = append(out[n-1].RequiredSkills, skillID)
			continue
		}
		out = append(out, matching.Candidate{JobID: jobID, RequiredSkills: []uuid.UUID{skillID}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
