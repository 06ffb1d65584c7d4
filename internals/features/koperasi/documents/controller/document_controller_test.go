// file: internals/features/koperasi/documents/controller/document_controller_test.go
package controller

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"koperasiku_backend/internals/features/koperasi/documents/model"
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

// Upload ulang menandai baris lama berjenis sama sebagai RESUBMIT,
// tanpa menyentuh jenis lain.
func TestMarkSupersededUpdatesPriorRows(t *testing.T) {
	db, mock := newMockDB(t)
	koperasiID := uuid.New()

	mock.ExpectExec(`UPDATE "documents" SET "document_status"=\$1`).
		WithArgs(string(model.DocStatusResubmit), sqlmock.AnyArg(), koperasiID.String(),
			string(model.DocAktaPendirian), string(model.DocStatusResubmit)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := markSuperseded(db, koperasiID, model.DocAktaPendirian)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSupersededNoPriorRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "documents" SET "document_status"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := markSuperseded(db, uuid.New(), model.DocBuktiSetoran)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
