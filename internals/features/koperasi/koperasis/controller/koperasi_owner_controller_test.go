// file: internals/features/koperasi/koperasis/controller/koperasi_owner_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"koperasiku_backend/internals/helpers"
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

// newOwnerApp memasang route owner dengan identitas user disuntik,
// meniru hasil middleware auth.
func newOwnerApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctrl := NewKoperasiOwnerController(db, nil)
	app.Patch("/koperasi/:id", ctrl.Patch)
	return app
}

func ownedKoperasiRows(koperasiID, ownerID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"koperasi_id", "koperasi_owner_id", "koperasi_name", "koperasi_type",
		"koperasi_status", "koperasi_total_members",
		"koperasi_contact_phone", "koperasi_contact_email", "koperasi_submission_date",
	}).AddRow(
		koperasiID.String(), ownerID.String(), "Koperasi Maju Bersama", "SIMPAN_PINJAM",
		"AKTIF_SEHAT", 25,
		"081234567890", "pengurus@majubersama.co.id", time.Now(),
	)
}

func TestPatchRejectsTotalMembersBelowMinimum(t *testing.T) {
	db, mock := newMockDB(t)
	ownerID := uuid.New()
	koperasiID := uuid.New()

	// Hanya SELECT kepemilikan; tidak boleh ada UPDATE yang jalan.
	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, ownerID))

	body, _ := json.Marshal(fiber.Map{"total_members": 5})
	app := newOwnerApp(db, ownerID)
	req := httptest.NewRequest("PATCH", "/koperasi/"+koperasiID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), helper.MsgMinMembers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchWritesProfileUpdateActivity(t *testing.T) {
	db, mock := newMockDB(t)
	ownerID := uuid.New()
	koperasiID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, ownerID))

	// Update profil + activity PROFILE_UPDATE dalam satu transaksi.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "koperasis" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	body, _ := json.Marshal(fiber.Map{"name": "Koperasi Sejahtera Abadi"})
	app := newOwnerApp(db, ownerID)
	req := httptest.NewRequest("PATCH", "/koperasi/"+koperasiID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchForeignKoperasiForbidden(t *testing.T) {
	db, mock := newMockDB(t)
	koperasiID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, uuid.New()))

	body, _ := json.Marshal(fiber.Map{"name": "Koperasi Sejahtera Abadi"})
	app := newOwnerApp(db, uuid.New())
	req := httptest.NewRequest("PATCH", "/koperasi/"+koperasiID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
