// file: internals/features/events/dto/event_dto.go
package dto

import (
	"strings"
	"time"

	"koperasiku_backend/internals/features/events/model"
)

/* ===============================
   REQUEST DTO
=================================*/

type EventCreateRequest struct {
	EventTitle       string    `json:"title"`
	EventDescription string    `json:"description"`
	EventLocation    string    `json:"location"`
	EventStartAt     time.Time `json:"start_at"`
	EventEndAt       time.Time `json:"end_at"`
}

type EventUpdateRequest struct {
	EventTitle       *string    `json:"title"`
	EventDescription *string    `json:"description"`
	EventLocation    *string    `json:"location"`
	EventStartAt     *time.Time `json:"start_at"`
	EventEndAt       *time.Time `json:"end_at"`
}

/* ===============================
   RESPONSE DTO
=================================*/

type EventResponse struct {
	EventID          string    `json:"id"`
	EventTitle       string    `json:"title"`
	EventDescription string    `json:"description,omitempty"`
	EventLocation    string    `json:"location,omitempty"`
	EventStartAt     time.Time `json:"start_at"`
	EventEndAt       time.Time `json:"end_at"`
	EventStatus      string    `json:"status"`
	EventCreatedAt   time.Time `json:"created_at"`
}

func FromModelEvent(m *model.EventModel) EventResponse {
	return EventResponse{
		EventID:          m.EventID.String(),
		EventTitle:       m.EventTitle,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventStartAt:     m.EventStartAt,
		EventEndAt:       m.EventEndAt,
		EventStatus:      string(m.EventStatus),
		EventCreatedAt:   m.EventCreatedAt,
	}
}

func ToModelEvent(in *EventCreateRequest) *model.EventModel {
	return &model.EventModel{
		EventTitle:       strings.TrimSpace(in.EventTitle),
		EventDescription: strings.TrimSpace(in.EventDescription),
		EventLocation:    strings.TrimSpace(in.EventLocation),
		EventStartAt:     in.EventStartAt,
		EventEndAt:       in.EventEndAt,
		EventStatus:      model.EventUpcoming,
	}
}

func ApplyEventUpdate(m *model.EventModel, u *EventUpdateRequest) {
	if u.EventTitle != nil {
		m.EventTitle = strings.TrimSpace(*u.EventTitle)
	}
	if u.EventDescription != nil {
		m.EventDescription = strings.TrimSpace(*u.EventDescription)
	}
	if u.EventLocation != nil {
		m.EventLocation = strings.TrimSpace(*u.EventLocation)
	}
	if u.EventStartAt != nil {
		m.EventStartAt = *u.EventStartAt
	}
	if u.EventEndAt != nil {
		m.EventEndAt = *u.EventEndAt
	}
}
