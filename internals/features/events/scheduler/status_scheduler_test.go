// file: internals/features/events/scheduler/status_scheduler_test.go
package scheduler

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestSweepEventStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	// Dua UPDATE massal: completed dulu, baru ongoing.
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := SweepEventStatuses(db, now)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweepEventStatusesPropagatesError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnError(assert.AnError)

	err := SweepEventStatuses(db, time.Now())
	assert.Error(t, err)
}
