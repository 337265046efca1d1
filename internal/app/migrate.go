package app

import (
	"context"
	"fmt"

	"career-match/internal/database/migration"
	"career-match/internal/database/seeder"
)

// Prepare applies pending migrations and, when enabled, the default seeders.
func (c *Container) Prepare(ctx context.Context) error {
	runner := migration.Runner{Dir: c.Config.App.MigrationsDir, Logger: c.Logger}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if !c.Config.App.SeedOnStart {
		return nil
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, c.DB); err != nil {
		return err
	}
	c.Logger.Printf("seed status=ok seeders=%d", len(seeder.Defaults()))
	return nil
}
