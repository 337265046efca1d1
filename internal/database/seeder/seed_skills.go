package seeder

import (
	"context"
	"fmt"

	"career-match/internal/database"
	"career-match/internal/domain/matching"
)

// VocabularySeeder loads the default skill vocabulary in its canonical order.
type VocabularySeeder struct{}

func (VocabularySeeder) Name() string { return "skills" }

func (VocabularySeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "required_level", "position"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, e := range matching.DefaultVocabularyEntries {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category, required_level, position)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4)
			 ON CONFLICT (lower(name)) DO NOTHING`,
			e.Name,
			string(e.Category),
			e.RequiredLevel,
			i+1,
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
