package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRefused = errors.New("connection refused")

func quickReadiness(attempts int) ReadinessPolicy {
	return ReadinessPolicy{Attempts: attempts, Interval: 5 * time.Millisecond}
}

func newPingMock(t *testing.T) (*MigrationRunner, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMigrationRunner(db, "migrations", nil), mock
}

func TestNewMigrationRunner_Defaults(t *testing.T) {
	runner, _ := newPingMock(t)

	assert.Equal(t, "migrations", runner.migrationsPath)
	assert.Equal(t, DefaultReadinessPolicy(), runner.readiness)
	assert.NotNil(t, runner.log)
}

func TestWithReadinessPolicy_ClampsAttempts(t *testing.T) {
	runner, _ := newPingMock(t)

	runner.WithReadinessPolicy(ReadinessPolicy{Attempts: 0, Interval: time.Second})

	assert.Equal(t, 1, runner.readiness.Attempts)
	assert.Equal(t, time.Second, runner.readiness.Interval)
}

func TestWaitForDatabase(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		pings    []error
		wantErr  bool
	}{
		{name: "ready immediately", attempts: 3, pings: []error{nil}},
		{name: "ready after retry", attempts: 3, pings: []error{errRefused, errRefused, nil}},
		{name: "never ready", attempts: 2, pings: []error{errRefused, errRefused}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, mock := newPingMock(t)
			runner.WithReadinessPolicy(quickReadiness(tt.attempts))
			for _, pingErr := range tt.pings {
				mock.ExpectPing().WillReturnError(pingErr)
			}

			err := runner.WaitForDatabase(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "database not ready after 2 attempts")
				assert.ErrorIs(t, err, errRefused)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWaitForDatabase_ContextCanceledBetweenAttempts(t *testing.T) {
	runner, mock := newPingMock(t)
	runner.WithReadinessPolicy(ReadinessPolicy{Attempts: 5, Interval: time.Hour})
	mock.ExpectPing().WillReturnError(errRefused)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := runner.WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	runner, _ := newPingMock(t)
	runner.migrationsPath = "/nonexistent/path/to/migrations"

	assert.ErrorIs(t, runner.RunMigrations(), ErrMigrationsNotFound)

	_, _, err := runner.GetMigrationStatus()
	assert.ErrorIs(t, err, ErrMigrationsNotFound)
}

func TestRun_StopsWhenDatabaseUnavailable(t *testing.T) {
	runner, mock := newPingMock(t)
	runner.migrationsPath = t.TempDir()
	runner.WithReadinessPolicy(quickReadiness(2))
	mock.ExpectPing().WillReturnError(errRefused)
	mock.ExpectPing().WillReturnError(errRefused)

	err := runner.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestRun_MissingMigrations(t *testing.T) {
	runner, mock := newPingMock(t)
	runner.migrationsPath = "/nonexistent/path/to/migrations"
	mock.ExpectPing()

	err := runner.Run(context.Background())

	assert.ErrorIs(t, err, ErrMigrationsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
