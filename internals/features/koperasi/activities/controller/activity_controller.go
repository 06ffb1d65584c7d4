// file: internals/features/koperasi/activities/controller/activity_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"koperasiku_backend/internals/features/koperasi/activities/model"
	kmodel "koperasiku_backend/internals/features/koperasi/koperasis/model"
	"koperasiku_backend/internals/helpers"
)

// ActivityController: jejak audit, read-only.
type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// GET /api/u/koperasi/:id/activities — pemilik melihat riwayatnya sendiri.
func (ctrl *ActivityController) ListOwner(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}

	var k kmodel.KoperasiModel
	if err := ctrl.DB.First(&k, "koperasi_id = ?", koperasiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Koperasi tidak ditemukan")
		}
		log.Println("[ERROR] activity:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if k.KoperasiOwnerID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan pemilik koperasi ini")
	}

	return ctrl.listForKoperasi(c, koperasiID)
}

// GET /api/a/koperasi/:id/activities — admin melihat riwayat koperasi mana pun.
func (ctrl *ActivityController) ListAdmin(c *fiber.Ctx) error {
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}
	return ctrl.listForKoperasi(c, koperasiID)
}

func (ctrl *ActivityController) listForKoperasi(c *fiber.Ctx, koperasiID uuid.UUID) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ActivityModel{}).Where("activity_koperasi_id = ?", koperasiID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] activity:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	var rows []model.ActivityModel
	if err := q.Order("activity_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] activity:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.Limit))
}
