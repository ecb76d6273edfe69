package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"
)

// SkillsSeeder loads a starter skill taxonomy so profiles and job postings
// have something to reference on a fresh database.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"Go",
		"JavaScript",
		"TypeScript",
		"Python",
		"Java",
		"PostgreSQL",
		"Redis",
		"Docker",
		"Kubernetes",
		"AWS",
		"GCP",
		"React",
		"SQL",
		"Linux",
	}

	for _, name := range names {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
