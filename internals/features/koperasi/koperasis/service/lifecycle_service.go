// file: internals/features/koperasi/koperasis/service/lifecycle_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	actmodel "koperasiku_backend/internals/features/koperasi/activities/model"
	docmodel "koperasiku_backend/internals/features/koperasi/documents/model"
	"koperasiku_backend/internals/features/koperasi/koperasis/dto"
	"koperasiku_backend/internals/features/koperasi/koperasis/model"
	memmodel "koperasiku_backend/internals/features/koperasi/members/model"
	"koperasiku_backend/internals/helpers"
)

const (
	// MinSubmitMembers: syarat legal minimal anggota koperasi; dipakai
	// juga oleh controller saat owner mem-patch total_members.
	MinSubmitMembers = 20

	minRejectionReason = 20
)

/* =========================================================
   APPROVAL ACTION MAPPING
========================================================= */

// ApprovalAction = perintah admin pada pengajuan berstatus PENDING.
type ApprovalAction string

const (
	ActionApproveSehat      ApprovalAction = "APPROVE_SEHAT"
	ActionApproveTidakSehat ApprovalAction = "APPROVE_TIDAK_SEHAT"
	ActionReject            ApprovalAction = "REJECT"
)

// MapApprovalAction menerjemahkan action → status tujuan + jenis activity.
func MapApprovalAction(action string) (model.KoperasiStatus, actmodel.ActivityType, error) {
	switch ApprovalAction(strings.ToUpper(strings.TrimSpace(action))) {
	case ActionApproveSehat:
		return model.StatusAktifSehat, actmodel.ActivityApproval, nil
	case ActionApproveTidakSehat:
		return model.StatusAktifTidakSehat, actmodel.ActivityApproval, nil
	case ActionReject:
		return model.StatusTidakDisetujui, actmodel.ActivityRejection, nil
	default:
		return "", "", fiber.NewError(fiber.StatusBadRequest,
			"Action tidak dikenal (APPROVE_SEHAT | APPROVE_TIDAK_SEHAT | REJECT)")
	}
}

/* =========================================================
   SUBMIT (pendaftaran koperasi oleh operator)
========================================================= */

// ValidateSubmit memeriksa field wajib sebelum INSERT.
func ValidateSubmit(req *dto.KoperasiCreateRequest) error {
	if len(strings.TrimSpace(req.KoperasiName)) < 3 {
		return fiber.NewError(fiber.StatusBadRequest, helper.MsgNameTooShort)
	}
	if !model.ValidKoperasiType(model.KoperasiType(strings.ToUpper(strings.TrimSpace(req.KoperasiType)))) {
		return fiber.NewError(fiber.StatusBadRequest, "Jenis koperasi tidak valid")
	}
	if req.KoperasiTotalMembers < MinSubmitMembers {
		return fiber.NewError(fiber.StatusBadRequest, helper.MsgMinMembers)
	}
	if !helper.ValidEmail(req.KoperasiContactEmail) {
		return fiber.NewError(fiber.StatusBadRequest, helper.MsgEmailInvalid)
	}
	if !helper.ValidPhone(req.KoperasiContactPhone) {
		return fiber.NewError(fiber.StatusBadRequest, helper.MsgPhoneInvalid)
	}
	return nil
}

// Submit membuat koperasi baru milik ownerID.
// Satu owner hanya boleh punya satu koperasi (selain jalur resubmission
// yang menghapus pengajuan TIDAK_DISETUJUI terlebih dulu).
func Submit(db *gorm.DB, ownerID uuid.UUID, req *dto.KoperasiCreateRequest) (*model.KoperasiModel, error) {
	if err := ValidateSubmit(req); err != nil {
		return nil, err
	}

	var existing int64
	if err := db.Model(&model.KoperasiModel{}).
		Where("koperasi_owner_id = ?", ownerID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Anda sudah memiliki koperasi terdaftar")
	}

	m := dto.ToModelKoperasi(req)
	m.KoperasiOwnerID = ownerID
	m.KoperasiSubmissionDate = time.Now()

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return recordActivity(tx, m.KoperasiID, ownerID, actmodel.ActivitySubmission,
			fmt.Sprintf("Pengajuan koperasi %q dibuat", m.KoperasiName))
	}); err != nil {
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Anda sudah memiliki koperasi terdaftar")
		}
		return nil, err
	}
	return m, nil
}

/* =========================================================
   PROCESS APPROVAL (admin memutus pengajuan PENDING)
========================================================= */

// ProcessApproval memutus satu pengajuan PENDING secara atomik.
// Guard status dilakukan di klausa WHERE; RowsAffected == 0 berarti
// pengajuan sudah berubah status (race dengan admin lain) atau tidak ada.
func ProcessApproval(db *gorm.DB, adminID, koperasiID uuid.UUID, action, reason, notes string) (*model.KoperasiModel, error) {
	target, actType, err := MapApprovalAction(action)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if target == model.StatusTidakDisetujui && len(reason) < minRejectionReason {
		return nil, fiber.NewError(fiber.StatusBadRequest, helper.MsgReasonTooShort)
	}

	now := time.Now()
	updates := map[string]any{
		"koperasi_status":        target,
		"koperasi_approval_date": now,
	}
	if target == model.StatusTidakDisetujui {
		updates["koperasi_rejection_reason"] = reason
	} else if n := strings.TrimSpace(notes); n != "" {
		updates["koperasi_approval_notes"] = n
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.KoperasiModel{}).
			Where("koperasi_id = ? AND koperasi_status = ?", koperasiID, model.StatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"Koperasi tidak berstatus PENDING")
		}

		desc := fmt.Sprintf("Pengajuan diputus: %s", strings.ToUpper(strings.TrimSpace(action)))
		if target == model.StatusTidakDisetujui {
			desc = "Pengajuan ditolak: " + reason
		}
		return recordActivity(tx, koperasiID, adminID, actType, desc)
	}); err != nil {
		return nil, err
	}

	var out model.KoperasiModel
	if err := db.First(&out, "koperasi_id = ?", koperasiID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

/* =========================================================
   HEALTH TOGGLE (admin) & DEAKTIVASI (owner)
========================================================= */

// UpdateHealthStatus memindahkan koperasi antar dua status aktif.
// Guard di WHERE: hanya koperasi yang sedang aktif yang bisa dipindah.
func UpdateHealthStatus(db *gorm.DB, actorID, koperasiID uuid.UUID, target model.KoperasiStatus, notes string) (*model.KoperasiModel, error) {
	if target != model.StatusAktifSehat && target != model.StatusAktifTidakSehat {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Status kesehatan harus AKTIF_SEHAT atau AKTIF_TIDAK_SEHAT")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.KoperasiModel{}).
			Where("koperasi_id = ? AND koperasi_status IN ?",
				koperasiID, []model.KoperasiStatus{model.StatusAktifSehat, model.StatusAktifTidakSehat}).
			Update("koperasi_status", target)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"Koperasi tidak dalam status aktif")
		}

		desc := fmt.Sprintf("Status kesehatan diperbarui menjadi %s", target)
		if n := strings.TrimSpace(notes); n != "" {
			desc += ": " + n
		}
		return recordActivity(tx, koperasiID, actorID, actmodel.ActivityHealthUpdate, desc)
	}); err != nil {
		return nil, err
	}

	var out model.KoperasiModel
	if err := db.First(&out, "koperasi_id = ?", koperasiID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// OwnerDeactivate: pemilik menurunkan koperasinya sendiri dari
// AKTIF_SEHAT ke AKTIF_TIDAK_SEHAT. Tidak ada jalur sebaliknya untuk
// owner; menaikkan kembali adalah wewenang admin.
func OwnerDeactivate(db *gorm.DB, ownerID, koperasiID uuid.UUID) (*model.KoperasiModel, error) {
	if err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.KoperasiModel{}).
			Where("koperasi_id = ? AND koperasi_owner_id = ? AND koperasi_status = ?",
				koperasiID, ownerID, model.StatusAktifSehat).
			Update("koperasi_status", model.StatusAktifTidakSehat)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"Koperasi tidak ditemukan atau tidak berstatus AKTIF_SEHAT")
		}
		return recordActivity(tx, koperasiID, ownerID, actmodel.ActivityHealthUpdate,
			"Koperasi dinonaktifkan oleh pemilik")
	}); err != nil {
		return nil, err
	}

	var out model.KoperasiModel
	if err := db.First(&out, "koperasi_id = ?", koperasiID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

/* =========================================================
   RESUBMISSION DELETE (hard delete pengajuan TIDAK_DISETUJUI)
========================================================= */

// ResubmissionDelete menghapus permanen pengajuan yang ditolak beserta
// dokumen, anggota, dan activities-nya, supaya owner bisa mengajukan
// ulang dari nol. Mengembalikan path berkas dokumen untuk dibersihkan
// best-effort di luar transaksi.
func ResubmissionDelete(db *gorm.DB, ownerID, koperasiID uuid.UUID) ([]string, error) {
	var filePaths []string

	if err := db.Transaction(func(tx *gorm.DB) error {
		var k model.KoperasiModel
		if err := tx.First(&k, "koperasi_id = ? AND koperasi_owner_id = ?", koperasiID, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Koperasi tidak ditemukan")
			}
			return err
		}
		if k.KoperasiStatus != model.StatusTidakDisetujui {
			return fiber.NewError(fiber.StatusBadRequest,
				"Hanya pengajuan TIDAK_DISETUJUI yang bisa dihapus untuk diajukan ulang")
		}

		if err := tx.Model(&docmodel.DocumentModel{}).
			Where("document_koperasi_id = ?", koperasiID).
			Pluck("document_file_path", &filePaths).Error; err != nil {
			return err
		}

		if err := tx.Where("document_koperasi_id = ?", koperasiID).
			Delete(&docmodel.DocumentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_koperasi_id = ?", koperasiID).
			Delete(&memmodel.MemberModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_koperasi_id = ?", koperasiID).
			Delete(&actmodel.ActivityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.KoperasiModel{}, "koperasi_id = ?", koperasiID).Error
	}); err != nil {
		return nil, err
	}
	return filePaths, nil
}

/* =========================================================
   AUTO-PROMOTE (PENDING_VERIFICATION → PENDING)
========================================================= */

// PromoteIfComplete menaikkan koperasi ke PENDING saat keempat jenis
// dokumen legalitas wajib sudah terunggah dan tidak ditolak. Dipanggil
// di dalam transaksi upload dokumen.
func PromoteIfComplete(tx *gorm.DB, koperasiID uuid.UUID) (bool, error) {
	var have []docmodel.DocumentType
	if err := tx.Model(&docmodel.DocumentModel{}).
		Where("document_koperasi_id = ? AND document_status <> ?", koperasiID, docmodel.DocStatusRejected).
		Distinct("document_type").
		Pluck("document_type", &have).Error; err != nil {
		return false, err
	}

	haveSet := make(map[docmodel.DocumentType]bool, len(have))
	for _, t := range have {
		haveSet[t] = true
	}
	for _, required := range docmodel.RequiredLegalTypes {
		if !haveSet[required] {
			return false, nil
		}
	}

	res := tx.Model(&model.KoperasiModel{}).
		Where("koperasi_id = ? AND koperasi_status = ?", koperasiID, model.StatusPendingVerification).
		Updates(map[string]any{
			"koperasi_status":       model.StatusPending,
			"koperasi_legal_status": model.LegalPendingReview,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

/* =========================================================
   LISTING UNTUK ADMIN (antrian persetujuan + ringkasan)
========================================================= */

type ApprovalSummary struct {
	TotalPending         int64 `json:"total_pending"`
	TotalVerification    int64 `json:"total_verification"`
	TotalAktifSehat      int64 `json:"total_aktif_sehat"`
	TotalAktifTidakSehat int64 `json:"total_aktif_tidak_sehat"`
	TotalDitolak         int64 `json:"total_ditolak"`
}

// ListApprovals mengembalikan antrian pengajuan (default PENDING) plus
// total untuk pagination.
func ListApprovals(db *gorm.DB, status string, p helper.Paging) ([]model.KoperasiModel, int64, error) {
	q := db.Model(&model.KoperasiModel{})
	st := strings.ToUpper(strings.TrimSpace(status))
	if st == "" {
		st = string(model.StatusPending)
	}
	if st != "ALL" {
		q = q.Where("koperasi_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.KoperasiModel
	if err := q.Order("koperasi_submission_date ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// BuildApprovalSummary menghitung jumlah koperasi per status.
func BuildApprovalSummary(db *gorm.DB) (*ApprovalSummary, error) {
	type row struct {
		KoperasiStatus model.KoperasiStatus
		Count          int64
	}
	var rows []row
	if err := db.Model(&model.KoperasiModel{}).
		Select("koperasi_status, COUNT(*) AS count").
		Group("koperasi_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	var s ApprovalSummary
	for _, r := range rows {
		switch r.KoperasiStatus {
		case model.StatusPending:
			s.TotalPending = r.Count
		case model.StatusPendingVerification:
			s.TotalVerification = r.Count
		case model.StatusAktifSehat:
			s.TotalAktifSehat = r.Count
		case model.StatusAktifTidakSehat:
			s.TotalAktifTidakSehat = r.Count
		case model.StatusTidakDisetujui:
			s.TotalDitolak = r.Count
		}
	}
	return &s, nil
}

/* =========================================================
   INTERNAL
========================================================= */

func recordActivity(tx *gorm.DB, koperasiID, actorID uuid.UUID, t actmodel.ActivityType, desc string) error {
	return tx.Create(&actmodel.ActivityModel{
		ActivityKoperasiID:  koperasiID,
		ActivityActorID:     actorID,
		ActivityType:        t,
		ActivityDescription: desc,
	}).Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "SQLSTATE 23505") || strings.Contains(s, "duplicate key")
}
