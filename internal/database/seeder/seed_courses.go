package seeder

import (
	"context"
	"fmt"

	"career-match/internal/database"
	"career-match/internal/domain/matching"
)

type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses", "id", "title", "provider", "skills", "rating", "url", "position"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, c := range matching.DefaultCourses {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO courses (id, title, provider, duration_label, level_label, skills, rating, url, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Title, c.Provider, c.DurationLabel, c.LevelLabel, c.AddressedSkills, c.Rating, c.URL, i+1,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
