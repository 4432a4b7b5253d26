package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"movies-backend/pkg/logger"
)

// Migrate applies all pending migrations from the given directory.
func (db *PostgresDB) Migrate(sourcePath string) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", sourcePath), db.ConnectionString()+"?sslmode=disable")
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("no pending migrations")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied", nil)
	return nil
}
