package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"
	"job-board/internal/domain/application"
)

// StatusesSeeder loads the application status catalog. The rows carry fixed
// ids because the id doubles as the workflow rank.
type StatusesSeeder struct{}

func (StatusesSeeder) Name() string { return "application_statuses" }

func (StatusesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "application_statuses", "id", "name"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, s := range application.Statuses() {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO application_statuses (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			int(s),
			s.Name(),
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
