package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/lucasmt/monitoria/internal/config"
	"github.com/lucasmt/monitoria/internal/db"
	"github.com/lucasmt/monitoria/internal/pkg/credentials"
	"github.com/rs/zerolog"
)

// CreateDefaultAdmin inserts the bootstrap administrator account when no
// admin exists yet. Seeding is skipped unless a seed password is configured,
// so production deployments that manage accounts themselves are unaffected.
func CreateDefaultAdmin(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminPassword == "" {
		lgr.Debug().Msg("No seed admin password configured, skipping admin seeding")
		return nil
	}

	hash, err := credentials.Hash(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM monitors WHERE role = 'admin')`).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO monitors (name, national_id, role, school_id, password_hash)
			VALUES ($1, $2, 'admin', NULL, $3)
		`, cfg.Seed.AdminName, cfg.Seed.AdminID, hash)
		if err != nil {
			return err
		}

		lgr.Info().Str("name", cfg.Seed.AdminName).Msg("Seeded default administrator account")
		return nil
	})
}
