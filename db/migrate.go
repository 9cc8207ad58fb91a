package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"go-user-api/config"
	"go-user-api/logger"
)

// RunMigrations applies any pending schema migrations from the given source
// path (e.g. "file://db/migrations"). Called at startup when
// database.run_migrations is enabled.
func RunMigrations(cfg *config.Config, sourcePath string) error {
	c := cfg.Database

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)

	mig, err := migrate.New(sourcePath, connStr)
	if err != nil {
		return fmt.Errorf("cannot create migrate instance: %w", err)
	}
	defer mig.Close()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}

	logger.Log.Info("Database migrations are up to date")
	return nil
}
