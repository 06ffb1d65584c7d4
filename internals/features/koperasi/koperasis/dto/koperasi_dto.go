// file: internals/features/koperasi/koperasis/dto/koperasi_dto.go
package dto

import (
	"strings"
	"time"

	"koperasiku_backend/internals/features/koperasi/koperasis/model"
)

/* =========================================================
   REQUEST DTO — CREATE (writable fields only)
   Catatan:
   - status, legal_status, approval_* TIDAK diterima dari client
========================================================= */

type KoperasiCreateRequest struct {
	KoperasiName              string `json:"name"`
	KoperasiType              string `json:"type"`
	KoperasiAddress           string `json:"address"`
	KoperasiContactPerson     string `json:"contact_person"`
	KoperasiContactPhone      string `json:"contact_phone"`
	KoperasiContactEmail      string `json:"contact_email"`
	KoperasiTotalMembers      int    `json:"total_members"`
	KoperasiDescription       string `json:"description"`
	KoperasiEstablishmentDate string `json:"establishment_date"` // "2006-01-02", opsional
}

/* =========================================================
   PARTIAL UPDATE DTO — pointer semua writable fields
========================================================= */

type KoperasiUpdateRequest struct {
	KoperasiName          *string `json:"name"`
	KoperasiType          *string `json:"type"`
	KoperasiAddress       *string `json:"address"`
	KoperasiContactPerson *string `json:"contact_person"`
	KoperasiContactPhone  *string `json:"contact_phone"`
	KoperasiContactEmail  *string `json:"contact_email"`
	KoperasiTotalMembers  *int    `json:"total_members"`
	KoperasiDescription   *string `json:"description"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type KoperasiResponse struct {
	KoperasiID      string `json:"id"`
	KoperasiOwnerID string `json:"owner_id"`

	KoperasiName        string `json:"name"`
	KoperasiType        string `json:"type"`
	KoperasiDescription string `json:"description"`

	KoperasiStatus      string `json:"status"`
	KoperasiLegalStatus string `json:"legal_status"`

	KoperasiTotalMembers int `json:"total_members"`

	KoperasiAddress       string `json:"address"`
	KoperasiContactPerson string `json:"contact_person"`
	KoperasiContactPhone  string `json:"contact_phone"`
	KoperasiContactEmail  string `json:"contact_email"`

	KoperasiEstablishmentDate *time.Time `json:"establishment_date,omitempty"`
	KoperasiSubmissionDate    time.Time  `json:"submission_date"`
	KoperasiApprovalDate      *time.Time `json:"approval_date,omitempty"`
	KoperasiApprovalNotes     string     `json:"approval_notes,omitempty"`
	KoperasiRejectionReason   string     `json:"rejection_reason,omitempty"`

	KoperasiCreatedAt time.Time `json:"created_at"`
	KoperasiUpdatedAt time.Time `json:"updated_at"`
}

/* =========================================================
   KONVERSI MODEL <-> DTO
========================================================= */

func FromModelKoperasi(m *model.KoperasiModel) KoperasiResponse {
	return KoperasiResponse{
		KoperasiID:      m.KoperasiID.String(),
		KoperasiOwnerID: m.KoperasiOwnerID.String(),

		KoperasiName:        m.KoperasiName,
		KoperasiType:        string(m.KoperasiType),
		KoperasiDescription: valOrEmpty(m.KoperasiDescription),

		KoperasiStatus:      string(m.KoperasiStatus),
		KoperasiLegalStatus: string(m.KoperasiLegalStatus),

		KoperasiTotalMembers: m.KoperasiTotalMembers,

		KoperasiAddress:       valOrEmpty(m.KoperasiAddress),
		KoperasiContactPerson: valOrEmpty(m.KoperasiContactPerson),
		KoperasiContactPhone:  m.KoperasiContactPhone,
		KoperasiContactEmail:  m.KoperasiContactEmail,

		KoperasiEstablishmentDate: m.KoperasiEstablishmentDate,
		KoperasiSubmissionDate:    m.KoperasiSubmissionDate,
		KoperasiApprovalDate:      m.KoperasiApprovalDate,
		KoperasiApprovalNotes:     valOrEmpty(m.KoperasiApprovalNotes),
		KoperasiRejectionReason:   valOrEmpty(m.KoperasiRejectionReason),

		KoperasiCreatedAt: m.KoperasiCreatedAt,
		KoperasiUpdatedAt: m.KoperasiUpdatedAt,
	}
}

// ToModelKoperasi: buat instance model dari request (untuk INSERT).
// Validasi field sudah dilakukan service sebelum sampai sini.
func ToModelKoperasi(in *KoperasiCreateRequest) *model.KoperasiModel {
	m := &model.KoperasiModel{
		KoperasiName:          strings.TrimSpace(in.KoperasiName),
		KoperasiType:          model.KoperasiType(strings.ToUpper(strings.TrimSpace(in.KoperasiType))),
		KoperasiDescription:   normalizeOptionalStringToPtr(in.KoperasiDescription),
		KoperasiTotalMembers:  in.KoperasiTotalMembers,
		KoperasiAddress:       normalizeOptionalStringToPtr(in.KoperasiAddress),
		KoperasiContactPerson: normalizeOptionalStringToPtr(in.KoperasiContactPerson),
		KoperasiContactPhone:  strings.TrimSpace(in.KoperasiContactPhone),
		KoperasiContactEmail:  strings.ToLower(strings.TrimSpace(in.KoperasiContactEmail)),
		KoperasiStatus:        model.StatusPendingVerification,
		KoperasiLegalStatus:   model.LegalNotSubmitted,
	}
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(in.KoperasiEstablishmentDate)); err == nil {
		m.KoperasiEstablishmentDate = &t
	}
	return m
}

/* =========================================================
   APPLY UPDATE — patch model dari KoperasiUpdateRequest
========================================================= */

func ApplyKoperasiUpdate(m *model.KoperasiModel, u *KoperasiUpdateRequest) {
	if u.KoperasiName != nil {
		m.KoperasiName = strings.TrimSpace(*u.KoperasiName)
	}
	if u.KoperasiType != nil {
		m.KoperasiType = model.KoperasiType(strings.ToUpper(strings.TrimSpace(*u.KoperasiType)))
	}
	if u.KoperasiAddress != nil {
		m.KoperasiAddress = normalizeOptionalStringToPtr(*u.KoperasiAddress)
	}
	if u.KoperasiContactPerson != nil {
		m.KoperasiContactPerson = normalizeOptionalStringToPtr(*u.KoperasiContactPerson)
	}
	if u.KoperasiContactPhone != nil {
		m.KoperasiContactPhone = strings.TrimSpace(*u.KoperasiContactPhone)
	}
	if u.KoperasiContactEmail != nil {
		m.KoperasiContactEmail = strings.ToLower(strings.TrimSpace(*u.KoperasiContactEmail))
	}
	if u.KoperasiTotalMembers != nil {
		m.KoperasiTotalMembers = *u.KoperasiTotalMembers
	}
	if u.KoperasiDescription != nil {
		m.KoperasiDescription = normalizeOptionalStringToPtr(*u.KoperasiDescription)
	}
}

/* =========================================================
   HELPERS
========================================================= */

// "" atau whitespace → nil, selain itu trim
func normalizeOptionalStringToPtr(s string) *string {
	trim := strings.TrimSpace(s)
	if trim == "" {
		return nil
	}
	return &trim
}

// util respon: kembalikan "" jika nil
func valOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
