// file: internals/features/koperasi/documents/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocAktaPendirian DocumentType = "AKTA_PENDIRIAN"
	DocBeritaAcara   DocumentType = "BERITA_ACARA"
	DocDaftarPendiri DocumentType = "DAFTAR_PENDIRI"
	DocBuktiSetoran  DocumentType = "BUKTI_SETORAN"
	DocRAT           DocumentType = "RAT"
)

// Empat jenis dokumen legalitas yang wajib lengkap sebelum koperasi
// dipromosikan PENDING_VERIFICATION → PENDING.
var RequiredLegalTypes = []DocumentType{
	DocAktaPendirian,
	DocBeritaAcara,
	DocDaftarPendiri,
	DocBuktiSetoran,
}

func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocAktaPendirian, DocBeritaAcara, DocDaftarPendiri, DocBuktiSetoran, DocRAT:
		return true
	}
	return false
}

func IsLegalType(t DocumentType) bool {
	for _, lt := range RequiredLegalTypes {
		if t == lt {
			return true
		}
	}
	return false
}

type DocumentStatus string

const (
	DocStatusPending  DocumentStatus = "PENDING"
	DocStatusApproved DocumentStatus = "APPROVED"
	DocStatusRejected DocumentStatus = "REJECTED"
	DocStatusResubmit DocumentStatus = "RESUBMIT"
)

// DocumentModel merepresentasikan tabel documents. Baris tidak pernah
// dihapus di luar resubmission delete; upload ulang menambah baris baru.
type DocumentModel struct {
	DocumentID         uuid.UUID    `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentKoperasiID uuid.UUID    `gorm:"column:document_koperasi_id;type:uuid;not null;index:idx_documents_koperasi_id" json:"document_koperasi_id"`
	DocumentType       DocumentType `gorm:"column:document_type;type:varchar(20);not null" json:"document_type"`

	// Metadata berkas
	DocumentFileName string `gorm:"column:document_file_name;type:varchar(255);not null" json:"document_file_name"`
	DocumentFilePath string `gorm:"column:document_file_path;type:text;not null" json:"document_file_path"`
	DocumentFileSize int64  `gorm:"column:document_file_size;not null" json:"document_file_size"`
	DocumentMimeType string `gorm:"column:document_mime_type;type:varchar(100);not null" json:"document_mime_type"`
	DocumentRATYear  *int   `gorm:"column:document_rat_year" json:"document_rat_year,omitempty"`

	// Review
	DocumentStatus      DocumentStatus `gorm:"column:document_status;type:varchar(10);not null;default:'PENDING'" json:"document_status"`
	DocumentReviewNotes *string        `gorm:"column:document_review_notes;type:text" json:"document_review_notes,omitempty"`
	DocumentReviewedBy  *uuid.UUID     `gorm:"column:document_reviewed_by;type:uuid" json:"document_reviewed_by,omitempty"`
	DocumentReviewDate  *time.Time     `gorm:"column:document_review_date;type:timestamptz" json:"document_review_date,omitempty"`

	DocumentUploadedAt time.Time `gorm:"column:document_uploaded_at;type:timestamptz;autoCreateTime" json:"document_uploaded_at"`
	DocumentUpdatedAt  time.Time `gorm:"column:document_updated_at;type:timestamptz;autoUpdateTime" json:"document_updated_at"`
}

func (DocumentModel) TableName() string { return "documents" }
