// file: internals/features/koperasi/koperasis/controller/koperasi_owner_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	actmodel "koperasiku_backend/internals/features/koperasi/activities/model"
	"koperasiku_backend/internals/features/koperasi/koperasis/dto"
	"koperasiku_backend/internals/features/koperasi/koperasis/model"
	"koperasiku_backend/internals/features/koperasi/koperasis/service"
	"koperasiku_backend/internals/helpers"
	"koperasiku_backend/internals/helpers/storage"
)

// KoperasiOwnerController: endpoint /api/u/koperasi (role LOW).
type KoperasiOwnerController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewKoperasiOwnerController(db *gorm.DB, st *storage.LocalStorage) *KoperasiOwnerController {
	return &KoperasiOwnerController{DB: db, Storage: st}
}

// respondServiceError memetakan error service → envelope JSON standar.
func respondServiceError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Println("[ERROR] koperasi:", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// POST /api/u/koperasi
func (ctrl *KoperasiOwnerController) Submit(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req dto.KoperasiCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	m, err := service.Submit(ctrl.DB, ownerID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	log.Printf("[INFO] koperasi %s diajukan oleh %s\n", m.KoperasiID, ownerID)
	resp := dto.FromModelKoperasi(m)
	return helper.JsonCreated(c, "Pengajuan koperasi berhasil dibuat", resp)
}

// GET /api/u/koperasi — koperasi milik user yang login.
func (ctrl *KoperasiOwnerController) GetMine(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var m model.KoperasiModel
	if err := ctrl.DB.First(&m, "koperasi_owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anda belum memiliki koperasi")
		}
		return respondServiceError(c, err)
	}

	resp := dto.FromModelKoperasi(&m)
	return helper.JsonOK(c, "", resp)
}

// loadOwned mengambil koperasi :id dan memastikan milik user login.
func (ctrl *KoperasiOwnerController) loadOwned(c *fiber.Ctx) (*model.KoperasiModel, error) {
	ownerID, err := helper.GetUserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID koperasi tidak valid")
	}

	var m model.KoperasiModel
	if err := ctrl.DB.First(&m, "koperasi_id = ?", koperasiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Koperasi tidak ditemukan")
		}
		return nil, err
	}
	if m.KoperasiOwnerID != ownerID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan pemilik koperasi ini")
	}
	return &m, nil
}

// PATCH /api/u/koperasi/:id — update profil (partial).
func (ctrl *KoperasiOwnerController) Patch(c *fiber.Ctx) error {
	m, err := ctrl.loadOwned(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	ownerID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req dto.KoperasiUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	dto.ApplyKoperasiUpdate(m, &req)

	// Validasi ulang field yang tersentuh
	if len(m.KoperasiName) < 3 {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.MsgNameTooShort)
	}
	if !model.ValidKoperasiType(m.KoperasiType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis koperasi tidak valid")
	}
	if !helper.ValidEmail(m.KoperasiContactEmail) {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.MsgEmailInvalid)
	}
	if !helper.ValidPhone(m.KoperasiContactPhone) {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.MsgPhoneInvalid)
	}
	if m.KoperasiTotalMembers < service.MinSubmitMembers {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.MsgMinMembers)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		return tx.Create(&actmodel.ActivityModel{
			ActivityKoperasiID:  m.KoperasiID,
			ActivityActorID:     ownerID,
			ActivityType:        actmodel.ActivityProfileUpdate,
			ActivityDescription: "Profil koperasi diperbarui oleh pemilik",
		}).Error
	}); err != nil {
		return respondServiceError(c, err)
	}

	resp := dto.FromModelKoperasi(m)
	return helper.JsonUpdated(c, "Profil koperasi diperbarui", resp)
}

// PATCH /api/u/koperasi/:id/health — pemilik menonaktifkan koperasinya
// (AKTIF_SEHAT → AKTIF_TIDAK_SEHAT).
func (ctrl *KoperasiOwnerController) Deactivate(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}

	m, err := service.OwnerDeactivate(ctrl.DB, ownerID, koperasiID)
	if err != nil {
		return respondServiceError(c, err)
	}

	resp := dto.FromModelKoperasi(m)
	return helper.JsonUpdated(c, "Koperasi dinonaktifkan", resp)
}

// DELETE /api/u/koperasi/:id — hard delete pengajuan TIDAK_DISETUJUI
// supaya bisa diajukan ulang.
func (ctrl *KoperasiOwnerController) Delete(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}

	filePaths, err := service.ResubmissionDelete(ctrl.DB, ownerID, koperasiID)
	if err != nil {
		return respondServiceError(c, err)
	}

	// Pembersihan berkas best-effort; kegagalan tidak membatalkan delete.
	if ctrl.Storage != nil {
		for _, p := range filePaths {
			if err := ctrl.Storage.Remove(p); err != nil {
				log.Println("[WARN] gagal hapus berkas:", p, err)
			}
		}
	}

	log.Printf("[INFO] koperasi %s dihapus untuk pengajuan ulang oleh %s\n", koperasiID, ownerID)
	return helper.JsonDeleted(c, "Pengajuan dihapus, silakan ajukan ulang", fiber.Map{
		"koperasi_id": koperasiID,
	})
}
