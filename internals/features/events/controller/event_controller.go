// file: internals/features/events/controller/event_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"koperasiku_backend/internals/features/events/dto"
	"koperasiku_backend/internals/features/events/model"
	"koperasiku_backend/internals/helpers"
)

// EventController: agenda organisasi. CRUD oleh admin, listing untuk
// semua user login.
type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Println("[ERROR] event:", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// POST /api/a/events
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(strings.TrimSpace(req.EventTitle)) < 3 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul event minimal 3 karakter")
	}
	if req.EventStartAt.IsZero() || req.EventEndAt.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu mulai dan selesai wajib diisi")
	}
	if !req.EventEndAt.After(req.EventStartAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu selesai harus setelah waktu mulai")
	}

	m := dto.ToModelEvent(&req)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return respondErr(c, err)
	}

	resp := dto.FromModelEvent(m)
	return helper.JsonCreated(c, "Event berhasil dibuat", resp)
}

// GET /api/u/events & /api/a/events — ?status= opsional.
func (ctrl *EventController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EventModel{})
	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("event_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return respondErr(c, err)
	}

	var rows []model.EventModel
	if err := q.Order("event_start_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return respondErr(c, err)
	}

	out := make([]dto.EventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelEvent(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p.Page, p.Limit))
}

// GET /api/u/events/:id
func (ctrl *EventController) Detail(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	var m model.EventModel
	if err := ctrl.DB.First(&m, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return respondErr(c, err)
	}

	resp := dto.FromModelEvent(&m)
	return helper.JsonOK(c, "", resp)
}

// PATCH /api/a/events/:id
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	var m model.EventModel
	if err := ctrl.DB.First(&m, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return respondErr(c, err)
	}
	if m.EventStatus == model.EventCompleted || m.EventStatus == model.EventCancelled {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Event yang sudah selesai atau dibatalkan tidak bisa diubah")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	dto.ApplyEventUpdate(&m, &req)
	if !m.EventEndAt.After(m.EventStartAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu selesai harus setelah waktu mulai")
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return respondErr(c, err)
	}

	resp := dto.FromModelEvent(&m)
	return helper.JsonUpdated(c, "Event diperbarui", resp)
}

// PATCH /api/a/events/:id/cancel — CANCELLED bersifat terminal.
func (ctrl *EventController) Cancel(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	res := ctrl.DB.Model(&model.EventModel{}).
		Where("event_id = ? AND event_status IN ?",
			eventID, []model.EventStatus{model.EventUpcoming, model.EventOngoing}).
		Update("event_status", model.EventCancelled)
	if res.Error != nil {
		return respondErr(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Event tidak ditemukan atau sudah tidak bisa dibatalkan")
	}

	return helper.JsonUpdated(c, "Event dibatalkan", fiber.Map{"event_id": eventID})
}

// DELETE /api/a/events/:id — soft delete (gorm.DeletedAt).
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	res := ctrl.DB.Delete(&model.EventModel{}, "event_id = ?", eventID)
	if res.Error != nil {
		return respondErr(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Event dihapus", fiber.Map{"event_id": eventID})
}
