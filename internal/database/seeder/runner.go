package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

// Defaults returns the seeders every deployment needs before the API can
// serve requests.
func Defaults() []Seeder {
	return []Seeder{
		StatusesSeeder{},
		SkillsSeeder{},
	}
}
