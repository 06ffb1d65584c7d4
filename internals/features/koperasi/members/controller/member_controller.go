// file: internals/features/koperasi/members/controller/member_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	actmodel "koperasiku_backend/internals/features/koperasi/activities/model"
	kmodel "koperasiku_backend/internals/features/koperasi/koperasis/model"
	"koperasiku_backend/internals/features/koperasi/members/dto"
	"koperasiku_backend/internals/features/koperasi/members/model"
	"koperasiku_backend/internals/helpers"
)

// MemberController mengelola roster anggota per koperasi.
// Counter koperasi_total_members disinkronkan transaksional di sini.
type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

func isDuplicateNIK(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "SQLSTATE 23505") || strings.Contains(s, "duplicate key")
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Println("[ERROR] member:", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// requireOwnedKoperasi memuat koperasi :id milik user login.
func (ctrl *MemberController) requireOwnedKoperasi(c *fiber.Ctx) (*kmodel.KoperasiModel, uuid.UUID, error) {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID koperasi tidak valid")
	}

	var k kmodel.KoperasiModel
	if err := ctrl.DB.First(&k, "koperasi_id = ?", koperasiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Koperasi tidak ditemukan")
		}
		return nil, uuid.Nil, err
	}
	if k.KoperasiOwnerID != userID {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan pemilik koperasi ini")
	}
	return &k, userID, nil
}

func validateMemberCreate(req *dto.MemberCreateRequest) error {
	if len(strings.TrimSpace(req.MemberName)) < 3 {
		return fiber.NewError(fiber.StatusBadRequest, helper.MsgNameTooShort)
	}
	if nik := strings.TrimSpace(req.MemberNIK); nik != "" && !helper.ValidNIK(nik) {
		return fiber.NewError(fiber.StatusBadRequest, helper.MsgNIKInvalid)
	}
	if phone := strings.TrimSpace(req.MemberPhone); phone != "" && !helper.ValidPhone(phone) {
		return fiber.NewError(fiber.StatusBadRequest, helper.MsgPhoneInvalid)
	}
	if strings.TrimSpace(req.MemberNumber) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor anggota wajib diisi")
	}
	if strings.TrimSpace(req.MemberAddress) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Alamat anggota wajib diisi")
	}
	return nil
}

// POST /api/u/koperasi/:id/members
func (ctrl *MemberController) Create(c *fiber.Ctx) error {
	k, userID, err := ctrl.requireOwnedKoperasi(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateMemberCreate(&req); err != nil {
		return respondErr(c, err)
	}

	m, err := dto.ToModelMember(&req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid (format YYYY-MM-DD)")
	}
	m.MemberKoperasiID = k.KoperasiID

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := tx.Model(&kmodel.KoperasiModel{}).
			Where("koperasi_id = ?", k.KoperasiID).
			Update("koperasi_total_members", gorm.Expr("koperasi_total_members + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Create(&actmodel.ActivityModel{
			ActivityKoperasiID:  k.KoperasiID,
			ActivityActorID:     userID,
			ActivityType:        actmodel.ActivityMemberChange,
			ActivityDescription: fmt.Sprintf("Anggota %q ditambahkan", m.MemberName),
		}).Error
	}); err != nil {
		if isDuplicateNIK(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "NIK sudah terdaftar sebagai anggota koperasi")
		}
		return respondErr(c, err)
	}

	resp := dto.FromModelMember(m)
	return helper.JsonCreated(c, "Anggota berhasil ditambahkan", resp)
}

// GET /api/u/koperasi/:id/members
func (ctrl *MemberController) List(c *fiber.Ctx) error {
	k, _, err := ctrl.requireOwnedKoperasi(c)
	if err != nil {
		return respondErr(c, err)
	}
	return ctrl.listForKoperasi(c, k.KoperasiID)
}

// GET /api/a/koperasi/:id/members — admin membaca roster koperasi mana pun.
func (ctrl *MemberController) ListAdmin(c *fiber.Ctx) error {
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}
	return ctrl.listForKoperasi(c, koperasiID)
}

func (ctrl *MemberController) listForKoperasi(c *fiber.Ctx, koperasiID uuid.UUID) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MemberModel{}).Where("member_koperasi_id = ?", koperasiID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("member_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return respondErr(c, err)
	}

	var rows []model.MemberModel
	if err := q.Order("member_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return respondErr(c, err)
	}

	out := make([]dto.MemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelMember(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p.Page, p.Limit))
}

// PATCH /api/u/koperasi/:id/members/:memberId
func (ctrl *MemberController) Update(c *fiber.Ctx) error {
	k, _, err := ctrl.requireOwnedKoperasi(c)
	if err != nil {
		return respondErr(c, err)
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID anggota tidak valid")
	}

	var m model.MemberModel
	if err := ctrl.DB.First(&m, "member_id = ? AND member_koperasi_id = ?", memberID, k.KoperasiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return respondErr(c, err)
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := dto.ApplyMemberUpdate(&m, &req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid (format YYYY-MM-DD)")
	}
	if m.MemberPhone != nil && !helper.ValidPhone(*m.MemberPhone) {
		return helper.JsonError(c, fiber.StatusBadRequest, helper.MsgPhoneInvalid)
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return respondErr(c, err)
	}

	resp := dto.FromModelMember(&m)
	return helper.JsonUpdated(c, "Data anggota diperbarui", resp)
}

// DELETE /api/u/koperasi/:id/members/:memberId
func (ctrl *MemberController) Delete(c *fiber.Ctx) error {
	k, userID, err := ctrl.requireOwnedKoperasi(c)
	if err != nil {
		return respondErr(c, err)
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID anggota tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.MemberModel{},
			"member_id = ? AND member_koperasi_id = ?", memberID, k.KoperasiID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		if err := tx.Model(&kmodel.KoperasiModel{}).
			Where("koperasi_id = ? AND koperasi_total_members > 0", k.KoperasiID).
			Update("koperasi_total_members", gorm.Expr("koperasi_total_members - ?", 1)).Error; err != nil {
			return err
		}
		return tx.Create(&actmodel.ActivityModel{
			ActivityKoperasiID:  k.KoperasiID,
			ActivityActorID:     userID,
			ActivityType:        actmodel.ActivityMemberChange,
			ActivityDescription: "Anggota dihapus dari roster",
		}).Error
	}); err != nil {
		return respondErr(c, err)
	}

	return helper.JsonDeleted(c, "Anggota dihapus", fiber.Map{"member_id": memberID})
}
