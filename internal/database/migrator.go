package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// ErrMigrationsNotFound is returned when the migrations directory is missing
var ErrMigrationsNotFound = errors.New("migrations directory not found")

// ReadinessPolicy bounds how long the runner waits for postgres to accept connections
type ReadinessPolicy struct {
	Attempts int
	Interval time.Duration
}

// DefaultReadinessPolicy waits up to a minute, which covers a cold container start
func DefaultReadinessPolicy() ReadinessPolicy {
	return ReadinessPolicy{Attempts: 30, Interval: 2 * time.Second}
}

// MigrationRunner applies the transaction store SQL migrations to postgres
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	readiness      ReadinessPolicy
	log            *zap.SugaredLogger
}

func NewMigrationRunner(db *sql.DB, migrationsPath string, log *zap.SugaredLogger) *MigrationRunner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		readiness:      DefaultReadinessPolicy(),
		log:            log,
	}
}

// WithReadinessPolicy replaces the wait policy. Non-positive attempts mean a single ping.
func (mr *MigrationRunner) WithReadinessPolicy(policy ReadinessPolicy) *MigrationRunner {
	if policy.Attempts <= 0 {
		policy.Attempts = 1
	}
	mr.readiness = policy
	return mr
}

// Run waits for the database and applies pending migrations
func (mr *MigrationRunner) Run(ctx context.Context) error {
	if err := mr.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := mr.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	return nil
}

// WaitForDatabase pings until the database answers, the attempts run out or ctx ends
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.readiness.Attempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		mr.log.Infow("database not ready",
			"attempt", attempt,
			"max_attempts", mr.readiness.Attempts,
			"error", lastErr,
		)
		if attempt == mr.readiness.Attempts {
			break
		}

		timer := time.NewTimer(mr.readiness.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", mr.readiness.Attempts, lastErr)
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.log.Warnw("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.log.Infow("no new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.log.Infow("applied migrations", "version", newVersion)

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.migrationsPath)
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}
