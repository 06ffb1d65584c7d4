// file: internals/features/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventUpcoming  EventStatus = "UPCOMING"
	EventOngoing   EventStatus = "ONGOING"
	EventCompleted EventStatus = "COMPLETED"
	EventCancelled EventStatus = "CANCELLED"
)

// EventModel merepresentasikan tabel events — agenda organisasi,
// terpisah dari lifecycle koperasi.
type EventModel struct {
	EventID          uuid.UUID   `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string      `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription string      `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string      `gorm:"column:event_location;type:varchar(255)" json:"event_location"`
	EventStartAt     time.Time   `gorm:"column:event_start_at;type:timestamptz;not null" json:"event_start_at"`
	EventEndAt       time.Time   `gorm:"column:event_end_at;type:timestamptz;not null" json:"event_end_at"`
	EventStatus      EventStatus `gorm:"column:event_status;type:varchar(10);not null;default:'UPCOMING';index" json:"event_status"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

// NextAutoStatus menentukan status berikutnya berdasarkan waktu.
// CANCELLED bersifat terminal dan tidak pernah dimajukan otomatis.
func (e *EventModel) NextAutoStatus(now time.Time) (EventStatus, bool) {
	if e.EventStatus == EventCancelled || e.EventStatus == EventCompleted {
		return e.EventStatus, false
	}
	switch {
	case now.After(e.EventEndAt):
		if e.EventStatus != EventCompleted {
			return EventCompleted, true
		}
	case now.After(e.EventStartAt) || now.Equal(e.EventStartAt):
		if e.EventStatus == EventUpcoming {
			return EventOngoing, true
		}
	}
	return e.EventStatus, false
}
