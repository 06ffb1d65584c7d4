// file: internals/features/koperasi/documents/controller/document_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	actmodel "koperasiku_backend/internals/features/koperasi/activities/model"
	"koperasiku_backend/internals/features/koperasi/documents/dto"
	"koperasiku_backend/internals/features/koperasi/documents/model"
	kmodel "koperasiku_backend/internals/features/koperasi/koperasis/model"
	kservice "koperasiku_backend/internals/features/koperasi/koperasis/service"
	"koperasiku_backend/internals/helpers"
	"koperasiku_backend/internals/helpers/storage"
)

// DocumentController mengelola lifecycle dokumen legalitas & RAT.
type DocumentController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewDocumentController(db *gorm.DB, st *storage.LocalStorage) *DocumentController {
	return &DocumentController{DB: db, Storage: st}
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Println("[ERROR] document:", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// requireOwnedKoperasi: koperasi :id harus milik user login.
func (ctrl *DocumentController) requireOwnedKoperasi(c *fiber.Ctx) (*kmodel.KoperasiModel, uuid.UUID, error) {
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

/* =========================================================
   UPLOAD
========================================================= */

// POST /api/u/koperasi/:id/documents
// Form: file (multipart), type (AKTA_PENDIRIAN | BERITA_ACARA | DAFTAR_PENDIRI | BUKTI_SETORAN)
func (ctrl *DocumentController) UploadGeneral(c *fiber.Ctx) error {
	k, _, err := ctrl.requireOwnedKoperasi(c)
	if err != nil {
		return respondErr(c, err)
	}

	docType := model.DocumentType(strings.ToUpper(strings.TrimSpace(c.FormValue("type"))))
	if !model.IsLegalType(docType) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Jenis dokumen tidak valid untuk upload legalitas")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan pada form")
	}

	relPath, mime, err := ctrl.Storage.SaveDocument(k.KoperasiID, storage.KindDocument, fh)
	if err != nil {
		return respondErr(c, err)
	}

	doc := &model.DocumentModel{
		DocumentKoperasiID: k.KoperasiID,
		DocumentType:       docType,
		DocumentFileName:   fh.Filename,
		DocumentFilePath:   relPath,
		DocumentFileSize:   fh.Size,
		DocumentMimeType:   mime,
		DocumentStatus:     model.DocStatusPending,
	}

	promoted := false
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := markSuperseded(tx, k.KoperasiID, docType); err != nil {
			return err
		}
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		p, err := kservice.PromoteIfComplete(tx, k.KoperasiID)
		if err != nil {
			return err
		}
		promoted = p
		return nil
	}); err != nil {
		// INSERT gagal: bersihkan berkas yang terlanjur tertulis.
		_ = ctrl.Storage.Remove(relPath)
		return respondErr(c, err)
	}

	if promoted {
		log.Printf("[INFO] koperasi %s naik ke PENDING (dokumen lengkap)\n", k.KoperasiID)
	}

	resp := dto.FromModelDocument(doc, ctrl.Storage.PublicURL(relPath))
	return helper.JsonCreated(c, "Dokumen berhasil diunggah", fiber.Map{
		"document":          resp,
		"koperasi_promoted": promoted,
	})
}

// markSuperseded menandai baris lama berjenis sama sebagai RESUBMIT:
// upload ulang tidak menimpa baris, riwayat tetap utuh, dan hanya baris
// terbaru yang dihitung oleh review/promosi.
func markSuperseded(tx *gorm.DB, koperasiID uuid.UUID, t model.DocumentType) error {
	return tx.Model(&model.DocumentModel{}).
		Where("document_koperasi_id = ? AND document_type = ? AND document_status <> ?",
			koperasiID, t, model.DocStatusResubmit).
		Update("document_status", model.DocStatusResubmit).Error
}

// POST /api/u/koperasi/:id/documents/rat
// Form: file (PDF), year (tahun buku RAT)
func (ctrl *DocumentController) UploadRAT(c *fiber.Ctx) error {
	k, _, err := ctrl.requireOwnedKoperasi(c)
	if err != nil {
		return respondErr(c, err)
	}

	year, err := strconv.Atoi(strings.TrimSpace(c.FormValue("year")))
	if err != nil || year < 2000 || year > time.Now().Year() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun RAT tidak valid")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan pada form")
	}

	relPath, mime, err := ctrl.Storage.SaveDocument(k.KoperasiID, storage.KindRATDocument, fh)
	if err != nil {
		return respondErr(c, err)
	}

	doc := &model.DocumentModel{
		DocumentKoperasiID: k.KoperasiID,
		DocumentType:       model.DocRAT,
		DocumentFileName:   fh.Filename,
		DocumentFilePath:   relPath,
		DocumentFileSize:   fh.Size,
		DocumentMimeType:   mime,
		DocumentRATYear:    &year,
		DocumentStatus:     model.DocStatusPending,
	}
	if err := ctrl.DB.Create(doc).Error; err != nil {
		_ = ctrl.Storage.Remove(relPath)
		return respondErr(c, err)
	}

	resp := dto.FromModelDocument(doc, ctrl.Storage.PublicURL(relPath))
	return helper.JsonCreated(c, "Dokumen RAT berhasil diunggah", resp)
}

/* =========================================================
   LISTING
========================================================= */

// GET /api/u/koperasi/:id/documents — milik sendiri.
func (ctrl *DocumentController) List(c *fiber.Ctx) error {
	k, _, err := ctrl.requireOwnedKoperasi(c)
	if err != nil {
		return respondErr(c, err)
	}
	return ctrl.listForKoperasi(c, k.KoperasiID)
}

// GET /api/a/koperasi/:id/documents — admin membaca koperasi mana pun.
func (ctrl *DocumentController) ListAdmin(c *fiber.Ctx) error {
	koperasiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koperasi tidak valid")
	}
	return ctrl.listForKoperasi(c, koperasiID)
}

func (ctrl *DocumentController) listForKoperasi(c *fiber.Ctx, koperasiID uuid.UUID) error {
	q := ctrl.DB.Model(&model.DocumentModel{}).Where("document_koperasi_id = ?", koperasiID)
	if t := strings.ToUpper(strings.TrimSpace(c.Query("type"))); t != "" {
		q = q.Where("document_type = ?", t)
	}
	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("document_status = ?", st)
	}

	var rows []model.DocumentModel
	if err := q.Order("document_uploaded_at DESC").Find(&rows).Error; err != nil {
		return respondErr(c, err)
	}

	out := make([]dto.DocumentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelDocument(&rows[i], ctrl.Storage.PublicURL(rows[i].DocumentFilePath)))
	}
	return helper.JsonOK(c, "", out)
}

/* =========================================================
   REVIEW (admin)
========================================================= */

// PATCH /api/a/documents/:documentId/review
// Keputusan dokumen menggeser koperasi_legal_status:
//   - semua dokumen legalitas APPROVED           → LEGAL
//   - ada dokumen legalitas REJECTED             → REJECTED
//   - selain itu                                 → PENDING_REVIEW
func (ctrl *DocumentController) Review(c *fiber.Ctx) error {
	adminID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	documentID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID dokumen tidak valid")
	}

	var req dto.DocumentReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	newStatus := model.DocumentStatus(strings.ToUpper(strings.TrimSpace(req.DocumentStatus)))
	switch newStatus {
	case model.DocStatusApproved, model.DocStatusRejected, model.DocStatusResubmit:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Status review harus APPROVED, REJECTED, atau RESUBMIT")
	}
	notes := strings.TrimSpace(req.DocumentNotes)
	if newStatus != model.DocStatusApproved && notes == "" {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Catatan wajib diisi untuk keputusan selain APPROVED")
	}

	var doc model.DocumentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&doc, "document_id = ?", documentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Dokumen tidak ditemukan")
			}
			return err
		}

		now := time.Now()
		doc.DocumentStatus = newStatus
		doc.DocumentReviewedBy = &adminID
		doc.DocumentReviewDate = &now
		if notes != "" {
			doc.DocumentReviewNotes = &notes
		}
		if err := tx.Save(&doc).Error; err != nil {
			return err
		}

		if model.IsLegalType(doc.DocumentType) {
			if err := ctrl.refreshLegalStatus(tx, doc.DocumentKoperasiID); err != nil {
				return err
			}
		}

		return tx.Create(&actmodel.ActivityModel{
			ActivityKoperasiID:  doc.DocumentKoperasiID,
			ActivityActorID:     adminID,
			ActivityType:        actmodel.ActivityDocumentReview,
			ActivityDescription: fmt.Sprintf("Dokumen %s direview: %s", doc.DocumentType, newStatus),
		}).Error
	}); err != nil {
		return respondErr(c, err)
	}

	resp := dto.FromModelDocument(&doc, ctrl.Storage.PublicURL(doc.DocumentFilePath))
	return helper.JsonUpdated(c, "Dokumen berhasil direview", resp)
}

// refreshLegalStatus menghitung ulang koperasi_legal_status dari status
// terbaru tiap jenis dokumen legalitas wajib.
func (ctrl *DocumentController) refreshLegalStatus(tx *gorm.DB, koperasiID uuid.UUID) error {
	var docs []model.DocumentModel
	if err := tx.Where("document_koperasi_id = ?", koperasiID).
		Order("document_uploaded_at DESC").
		Find(&docs).Error; err != nil {
		return err
	}

	// Status terbaru per jenis (baris pertama per type = paling baru).
	latest := make(map[model.DocumentType]model.DocumentStatus)
	for _, d := range docs {
		if !model.IsLegalType(d.DocumentType) {
			continue
		}
		if _, seen := latest[d.DocumentType]; !seen {
			latest[d.DocumentType] = d.DocumentStatus
		}
	}

	target := kmodel.LegalApproved
	for _, t := range model.RequiredLegalTypes {
		st, ok := latest[t]
		if !ok {
			target = kmodel.LegalNotSubmitted
			break
		}
		if st == model.DocStatusRejected {
			target = kmodel.LegalRejected
			break
		}
		if st != model.DocStatusApproved {
			target = kmodel.LegalPendingReview
		}
	}

	return tx.Model(&kmodel.KoperasiModel{}).
		Where("koperasi_id = ?", koperasiID).
		Update("koperasi_legal_status", target).Error
}
