// file: internals/features/koperasi/members/dto/member_dto.go
package dto

import (
	"strings"
	"time"

	"koperasiku_backend/internals/features/koperasi/members/model"
)

/* ===============================
   REQUEST DTO
=================================*/

type MemberCreateRequest struct {
	MemberName        string `json:"name"`
	MemberNIK         string `json:"nik"`
	MemberNumber      string `json:"member_number"`
	MemberDateOfBirth string `json:"date_of_birth"` // "2006-01-02"
	MemberAddress     string `json:"address"`
	MemberPhone       string `json:"phone"`
}

type MemberUpdateRequest struct {
	MemberName        *string `json:"name"`
	MemberNumber      *string `json:"member_number"`
	MemberDateOfBirth *string `json:"date_of_birth"`
	MemberAddress     *string `json:"address"`
	MemberPhone       *string `json:"phone"`
	MemberIsActive    *bool   `json:"is_active"`
}

/* ===============================
   RESPONSE DTO
=================================*/

type MemberResponse struct {
	MemberID          string    `json:"id"`
	MemberKoperasiID  string    `json:"koperasi_id"`
	MemberName        string    `json:"name"`
	MemberNIK         string    `json:"nik,omitempty"`
	MemberNumber      string    `json:"member_number"`
	MemberDateOfBirth string    `json:"date_of_birth"`
	MemberAddress     string    `json:"address"`
	MemberPhone       string    `json:"phone,omitempty"`
	MemberIsActive    bool      `json:"is_active"`
	MemberCreatedAt   time.Time `json:"created_at"`
}

func FromModelMember(m *model.MemberModel) MemberResponse {
	resp := MemberResponse{
		MemberID:          m.MemberID.String(),
		MemberKoperasiID:  m.MemberKoperasiID.String(),
		MemberName:        m.MemberName,
		MemberNumber:      m.MemberNumber,
		MemberDateOfBirth: m.MemberDateOfBirth.Format("2006-01-02"),
		MemberAddress:     m.MemberAddress,
		MemberIsActive:    m.MemberIsActive,
		MemberCreatedAt:   m.MemberCreatedAt,
	}
	if m.MemberNIK != nil {
		resp.MemberNIK = *m.MemberNIK
	}
	if m.MemberPhone != nil {
		resp.MemberPhone = *m.MemberPhone
	}
	return resp
}

// ToModelMember: buat instance model dari request (untuk INSERT).
func ToModelMember(in *MemberCreateRequest) (*model.MemberModel, error) {
	dob, err := time.Parse("2006-01-02", strings.TrimSpace(in.MemberDateOfBirth))
	if err != nil {
		return nil, err
	}
	m := &model.MemberModel{
		MemberName:        strings.TrimSpace(in.MemberName),
		MemberNumber:      strings.TrimSpace(in.MemberNumber),
		MemberDateOfBirth: dob,
		MemberAddress:     strings.TrimSpace(in.MemberAddress),
		MemberIsActive:    true,
	}
	if nik := strings.TrimSpace(in.MemberNIK); nik != "" {
		m.MemberNIK = &nik
	}
	if phone := strings.TrimSpace(in.MemberPhone); phone != "" {
		m.MemberPhone = &phone
	}
	return m, nil
}

func ApplyMemberUpdate(m *model.MemberModel, u *MemberUpdateRequest) error {
	if u.MemberName != nil {
		m.MemberName = strings.TrimSpace(*u.MemberName)
	}
	if u.MemberNumber != nil {
		m.MemberNumber = strings.TrimSpace(*u.MemberNumber)
	}
	if u.MemberDateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", strings.TrimSpace(*u.MemberDateOfBirth))
		if err != nil {
			return err
		}
		m.MemberDateOfBirth = dob
	}
	if u.MemberAddress != nil {
		m.MemberAddress = strings.TrimSpace(*u.MemberAddress)
	}
	if u.MemberPhone != nil {
		if p := strings.TrimSpace(*u.MemberPhone); p != "" {
			m.MemberPhone = &p
		} else {
			m.MemberPhone = nil
		}
	}
	if u.MemberIsActive != nil {
		m.MemberIsActive = *u.MemberIsActive
	}
	return nil
}
