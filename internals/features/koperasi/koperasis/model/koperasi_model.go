// file: internals/features/koperasi/koperasis/model/koperasi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Enum helper supaya konsisten di kode
type KoperasiStatus string

const (
	// Satu-satunya status awal. Promosi ke StatusPending terjadi otomatis
	// saat seluruh dokumen legalitas wajib sudah terunggah.
	StatusPendingVerification KoperasiStatus = "PENDING_VERIFICATION"
	StatusPending             KoperasiStatus = "PENDING"
	StatusAktifSehat          KoperasiStatus = "AKTIF_SEHAT"
	StatusAktifTidakSehat     KoperasiStatus = "AKTIF_TIDAK_SEHAT"
	StatusTidakDisetujui      KoperasiStatus = "TIDAK_DISETUJUI"
)

type KoperasiType string

const (
	TypeSimpanPinjam KoperasiType = "SIMPAN_PINJAM"
	TypeKonsumsi     KoperasiType = "KONSUMSI"
	TypeProduksi     KoperasiType = "PRODUKSI"
	TypeJasa         KoperasiType = "JASA"
	TypeSerbaUsaha   KoperasiType = "SERBA_USAHA"
)

func ValidKoperasiType(t KoperasiType) bool {
	switch t {
	case TypeSimpanPinjam, TypeKonsumsi, TypeProduksi, TypeJasa, TypeSerbaUsaha:
		return true
	}
	return false
}

type LegalStatus string

const (
	LegalNotSubmitted  LegalStatus = "NOT_SUBMITTED"
	LegalPendingReview LegalStatus = "PENDING_REVIEW"
	LegalApproved      LegalStatus = "LEGAL"
	LegalRejected      LegalStatus = "REJECTED"
)

// KoperasiModel merepresentasikan tabel koperasis.
// koperasi_owner_id ber-uniqueIndex: invariant satu koperasi per pemilik
// dijaga di level skema, bukan hanya lookup.
type KoperasiModel struct {
	// PK
	KoperasiID uuid.UUID `gorm:"column:koperasi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"koperasi_id"`

	// Relasi
	KoperasiOwnerID uuid.UUID `gorm:"column:koperasi_owner_id;type:uuid;not null;uniqueIndex" json:"koperasi_owner_id"`

	// Identitas
	KoperasiName        string       `gorm:"column:koperasi_name;type:varchar(150);not null" json:"koperasi_name"`
	KoperasiType        KoperasiType `gorm:"column:koperasi_type;type:varchar(20);not null" json:"koperasi_type"`
	KoperasiDescription *string      `gorm:"column:koperasi_description;type:text" json:"koperasi_description,omitempty"`

	// Status & legalitas
	KoperasiStatus      KoperasiStatus `gorm:"column:koperasi_status;type:varchar(30);not null;default:'PENDING_VERIFICATION';index" json:"koperasi_status"`
	KoperasiLegalStatus LegalStatus    `gorm:"column:koperasi_legal_status;type:varchar(20);not null;default:'NOT_SUBMITTED'" json:"koperasi_legal_status"`

	// Counter anggota (disinkronkan transaksional oleh roster anggota)
	KoperasiTotalMembers int `gorm:"column:koperasi_total_members;not null;default:0" json:"koperasi_total_members"`

	// Alamat & kontak
	KoperasiAddress       *string `gorm:"column:koperasi_address;type:text" json:"koperasi_address,omitempty"`
	KoperasiContactPerson *string `gorm:"column:koperasi_contact_person;type:varchar(100)" json:"koperasi_contact_person,omitempty"`
	KoperasiContactPhone  string  `gorm:"column:koperasi_contact_phone;type:varchar(20);not null" json:"koperasi_contact_phone"`
	KoperasiContactEmail  string  `gorm:"column:koperasi_contact_email;type:varchar(255);not null" json:"koperasi_contact_email"`

	// Tanggal-tanggal lifecycle
	KoperasiEstablishmentDate *time.Time `gorm:"column:koperasi_establishment_date;type:date" json:"koperasi_establishment_date,omitempty"`
	KoperasiSubmissionDate    time.Time  `gorm:"column:koperasi_submission_date;type:timestamptz;not null" json:"koperasi_submission_date"`
	KoperasiApprovalDate      *time.Time `gorm:"column:koperasi_approval_date;type:timestamptz" json:"koperasi_approval_date,omitempty"`
	KoperasiApprovalNotes     *string    `gorm:"column:koperasi_approval_notes;type:text" json:"koperasi_approval_notes,omitempty"`
	KoperasiRejectionReason   *string    `gorm:"column:koperasi_rejection_reason;type:text" json:"koperasi_rejection_reason,omitempty"`

	// Audit
	KoperasiCreatedAt time.Time `gorm:"column:koperasi_created_at;autoCreateTime" json:"koperasi_created_at"`
	KoperasiUpdatedAt time.Time `gorm:"column:koperasi_updated_at;autoUpdateTime" json:"koperasi_updated_at"`
}

func (KoperasiModel) TableName() string { return "koperasis" }
