// file: internals/features/koperasi/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel merepresentasikan tabel members.
// member_nik unik global (satu NIK = satu keanggotaan koperasi secara
// nasional) — dipertahankan sesuai perilaku yang diamati.
type MemberModel struct {
	MemberID         uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`
	MemberKoperasiID uuid.UUID `gorm:"column:member_koperasi_id;type:uuid;not null;index:idx_members_koperasi_id" json:"member_koperasi_id"`

	MemberName        string    `gorm:"column:member_name;type:varchar(150);not null" json:"member_name"`
	MemberNIK         *string   `gorm:"column:member_nik;type:varchar(16);uniqueIndex" json:"member_nik,omitempty"`
	MemberNumber      string    `gorm:"column:member_number;type:varchar(30);not null" json:"member_number"`
	MemberDateOfBirth time.Time `gorm:"column:member_date_of_birth;type:date;not null" json:"member_date_of_birth"`
	MemberAddress     string    `gorm:"column:member_address;type:text;not null" json:"member_address"`
	MemberPhone       *string   `gorm:"column:member_phone;type:varchar(20)" json:"member_phone,omitempty"`
	MemberIsActive    bool      `gorm:"column:member_is_active;not null;default:true" json:"member_is_active"`

	MemberCreatedAt time.Time `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
}

func (MemberModel) TableName() string { return "members" }
