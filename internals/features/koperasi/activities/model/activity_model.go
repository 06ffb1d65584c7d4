// file: internals/features/koperasi/activities/model/activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivitySubmission     ActivityType = "SUBMISSION"
	ActivityApproval       ActivityType = "APPROVAL"
	ActivityRejection      ActivityType = "REJECTION"
	ActivityHealthUpdate   ActivityType = "HEALTH_UPDATE"
	ActivityProfileUpdate  ActivityType = "PROFILE_UPDATE"
	ActivityDocumentReview ActivityType = "DOCUMENT_REVIEW"
	ActivityMemberChange   ActivityType = "MEMBER_CHANGE"
)

// ActivityModel adalah jejak audit per koperasi. Append-only:
// tidak ada endpoint update/delete untuk tabel ini.
type ActivityModel struct {
	ActivityID          uuid.UUID    `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`
	ActivityKoperasiID  uuid.UUID    `gorm:"column:activity_koperasi_id;type:uuid;not null;index:idx_activities_koperasi_id" json:"activity_koperasi_id"`
	ActivityActorID     uuid.UUID    `gorm:"column:activity_actor_id;type:uuid;not null" json:"activity_actor_id"`
	ActivityType        ActivityType `gorm:"column:activity_type;type:varchar(30);not null" json:"activity_type"`
	ActivityDescription string       `gorm:"column:activity_description;type:text;not null" json:"activity_description"`

	ActivityCreatedAt time.Time `gorm:"column:activity_created_at;type:timestamptz;autoCreateTime" json:"activity_created_at"`
}

func (ActivityModel) TableName() string { return "activities" }
