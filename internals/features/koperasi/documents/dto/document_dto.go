// file: internals/features/koperasi/documents/dto/document_dto.go
package dto

import (
	"time"

	"koperasiku_backend/internals/features/koperasi/documents/model"
)

/* ===============================
   REQUEST DTO
=================================*/

// DocumentReviewRequest: keputusan admin atas satu dokumen.
type DocumentReviewRequest struct {
	DocumentStatus string `json:"status"` // APPROVED | REJECTED | RESUBMIT
	DocumentNotes  string `json:"notes"`
}

/* ===============================
   RESPONSE DTO
=================================*/

type DocumentResponse struct {
	DocumentID         string `json:"id"`
	DocumentKoperasiID string `json:"koperasi_id"`
	DocumentType       string `json:"type"`

	DocumentFileName string `json:"file_name"`
	DocumentFileURL  string `json:"file_url"`
	DocumentFileSize int64  `json:"file_size"`
	DocumentMimeType string `json:"mime_type"`
	DocumentRATYear  *int   `json:"rat_year,omitempty"`

	DocumentStatus      string     `json:"status"`
	DocumentReviewNotes string     `json:"review_notes,omitempty"`
	DocumentReviewedBy  string     `json:"reviewed_by,omitempty"`
	DocumentReviewDate  *time.Time `json:"review_date,omitempty"`

	DocumentUploadedAt time.Time `json:"uploaded_at"`
}

// FromModelDocument: fileURL sudah di-resolve controller (public base).
func FromModelDocument(m *model.DocumentModel, fileURL string) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:         m.DocumentID.String(),
		DocumentKoperasiID: m.DocumentKoperasiID.String(),
		DocumentType:       string(m.DocumentType),
		DocumentFileName:   m.DocumentFileName,
		DocumentFileURL:    fileURL,
		DocumentFileSize:   m.DocumentFileSize,
		DocumentMimeType:   m.DocumentMimeType,
		DocumentRATYear:    m.DocumentRATYear,
		DocumentStatus:     string(m.DocumentStatus),
		DocumentReviewDate: m.DocumentReviewDate,
		DocumentUploadedAt: m.DocumentUploadedAt,
	}
	if m.DocumentReviewNotes != nil {
		resp.DocumentReviewNotes = *m.DocumentReviewNotes
	}
	if m.DocumentReviewedBy != nil {
		resp.DocumentReviewedBy = m.DocumentReviewedBy.String()
	}
	return resp
}
