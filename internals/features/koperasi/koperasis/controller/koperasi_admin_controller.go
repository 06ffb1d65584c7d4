// file: internals/features/koperasi/koperasis/controller/koperasi_admin_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"koperasiku_backend/internals/features/koperasi/koperasis/dto"
	"koperasiku_backend/internals/features/koperasi/koperasis/model"
	"koperasiku_backend/internals/features/koperasi/koperasis/service"
	"koperasiku_backend/internals/helpers"
)

// KoperasiAdminController: endpoint /api/a (role HIGH).
type KoperasiAdminController struct {
	DB *gorm.DB
}

func NewKoperasiAdminController(db *gorm.DB) *KoperasiAdminController {
	return &KoperasiAdminController{DB: db}
}

// GET /api/a/koperasi — semua koperasi, filter ?status= opsional.
func (ctrl *KoperasiAdminController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.KoperasiModel{})
	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("koperasi_status = ?", st)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("koperasi_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return respondServiceError(c, err)
	}

	var rows []model.KoperasiModel
	if err := q.Order("koperasi_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return respondServiceError(c, err)
	}

	out := make([]dto.KoperasiResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelKoperasi(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p.Page, p.Limit))
}

// GET /api/a/koperasi/:id
func (ctrl *KoperasiAdminController) Detail(c *fiber.Ctx) error {
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}

	var m model.KoperasiModel
	if err := ctrl.DB.First(&m, "koperasi_id = ?", koperasiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Koperasi tidak ditemukan")
		}
		return respondServiceError(c, err)
	}

	resp := dto.FromModelKoperasi(&m)
	return helper.JsonOK(c, "", resp)
}

// GET /api/a/approvals — antrian persetujuan + ringkasan per status.
// Default filter PENDING; ?status=ALL untuk semua.
func (ctrl *KoperasiAdminController) ListApprovals(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := service.ListApprovals(ctrl.DB, c.Query("status"), p)
	if err != nil {
		return respondServiceError(c, err)
	}
	summary, err := service.BuildApprovalSummary(ctrl.DB)
	if err != nil {
		return respondServiceError(c, err)
	}

	out := make([]dto.KoperasiResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelKoperasi(&rows[i]))
	}
	return helper.JsonListEx(c, "", out, helper.BuildPagination(total, p.Page, p.Limit), fiber.Map{
		"summary": summary,
	})
}

type processApprovalRequest struct {
	KoperasiID string `json:"koperasi_id"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
	Notes      string `json:"notes"`
}

// POST /api/a/approvals/process — putuskan satu pengajuan PENDING.
func (ctrl *KoperasiAdminController) ProcessApproval(c *fiber.Ctx) error {
	adminID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req processApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	koperasiID, err := uuid.Parse(strings.TrimSpace(req.KoperasiID))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}

	m, err := service.ProcessApproval(ctrl.DB, adminID, koperasiID, req.Action, req.Reason, req.Notes)
	if err != nil {
		return respondServiceError(c, err)
	}

	log.Printf("[INFO] approval %s → %s oleh admin %s\n", koperasiID, m.KoperasiStatus, adminID)
	resp := dto.FromModelKoperasi(m)
	return helper.JsonUpdated(c, "Pengajuan berhasil diproses", resp)
}

type updateStatusRequest struct {
	Status string `json:"status"` // AKTIF_SEHAT | AKTIF_TIDAK_SEHAT
	Notes  string `json:"notes"`
}

// PATCH /api/a/koperasi/:id/status — toggle kesehatan koperasi aktif.
func (ctrl *KoperasiAdminController) UpdateStatus(c *fiber.Ctx) error {
	adminID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	target := model.KoperasiStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	m, err := service.UpdateHealthStatus(ctrl.DB, adminID, koperasiID, target, req.Notes)
	if err != nil {
		return respondServiceError(c, err)
	}

	resp := dto.FromModelKoperasi(m)
	return helper.JsonUpdated(c, "Status koperasi diperbarui", resp)
}
