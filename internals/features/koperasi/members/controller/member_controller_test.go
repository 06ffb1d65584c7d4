// file: internals/features/koperasi/members/controller/member_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"errors"
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

// newMemberApp memasang route member dengan identitas user disuntik,
// meniru hasil middleware auth.
func newMemberApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctrl := NewMemberController(db)
	app.Post("/koperasi/:id/members", ctrl.Create)
	app.Delete("/koperasi/:id/members/:memberId", ctrl.Delete)
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

func memberPayload() []byte {
	body, _ := json.Marshal(fiber.Map{
		"name":          "Budi Santoso",
		"nik":           "3173051203900001",
		"member_number": "KMB-0001",
		"date_of_birth": "1990-03-12",
		"address":       "Jl. Merdeka No. 1, Jakarta",
		"phone":         "081298765432",
	})
	return body
}

func TestCreateMemberIncrementsCounter(t *testing.T) {
	db, mock := newMockDB(t)
	ownerID := uuid.New()
	koperasiID := uuid.New()

	// Cek kepemilikan koperasi
	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, ownerID))

	// Satu transaksi: insert anggota + counter naik + activity
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "members"`).
		WillReturnRows(sqlmock.NewRows([]string{"member_id"}).AddRow(uuid.NewString()))
	mock.ExpectExec(`UPDATE "koperasis" SET "koperasi_total_members"=koperasi_total_members \+ \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	app := newMemberApp(db, ownerID)
	req := httptest.NewRequest("POST", "/koperasi/"+koperasiID.String()+"/members",
		bytes.NewReader(memberPayload()))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMemberDecrementsCounter(t *testing.T) {
	db, mock := newMockDB(t)
	ownerID := uuid.New()
	koperasiID := uuid.New()
	memberID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, ownerID))

	// Satu transaksi: hapus anggota + counter turun tepat 1 + activity
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "members"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "koperasis" SET "koperasi_total_members"=koperasi_total_members - \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	app := newMemberApp(db, ownerID)
	req := httptest.NewRequest("DELETE",
		"/koperasi/"+koperasiID.String()+"/members/"+memberID.String(), nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMemberNotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	ownerID := uuid.New()
	koperasiID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, ownerID))

	// 0 baris terhapus: counter tidak boleh tersentuh.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "members"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	app := newMemberApp(db, ownerID)
	req := httptest.NewRequest("DELETE",
		"/koperasi/"+koperasiID.String()+"/members/"+uuid.NewString(), nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberDuplicateNIK(t *testing.T) {
	db, mock := newMockDB(t)
	ownerID := uuid.New()
	koperasiID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, ownerID))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "members"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_members_member_nik" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	app := newMemberApp(db, ownerID)
	req := httptest.NewRequest("POST", "/koperasi/"+koperasiID.String()+"/members",
		bytes.NewReader(memberPayload()))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "NIK sudah terdaftar")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberRejectsForeignKoperasi(t *testing.T) {
	db, mock := newMockDB(t)
	koperasiID := uuid.New()

	// Koperasi milik orang lain
	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, uuid.New()))

	app := newMemberApp(db, uuid.New())
	req := httptest.NewRequest("POST", "/koperasi/"+koperasiID.String()+"/members",
		bytes.NewReader(memberPayload()))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberInvalidNIK(t *testing.T) {
	db, mock := newMockDB(t)
	ownerID := uuid.New()
	koperasiID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "koperasis"`).
		WillReturnRows(ownedKoperasiRows(koperasiID, ownerID))

	body, _ := json.Marshal(fiber.Map{
		"name":          "Budi Santoso",
		"nik":           "12345", // bukan 16 digit
		"member_number": "KMB-0001",
		"date_of_birth": "1990-03-12",
		"address":       "Jl. Merdeka No. 1",
	})

	app := newMemberApp(db, ownerID)
	req := httptest.NewRequest("POST", "/koperasi/"+koperasiID.String()+"/members",
		bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "16 digit")
	assert.NoError(t, mock.ExpectationsWereMet())
}
