// file: internals/features/events/model/event_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextAutoStatus(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("upcoming sebelum mulai tetap", func(t *testing.T) {
		e := &EventModel{
			EventStatus:  EventUpcoming,
			EventStartAt: now.Add(1 * time.Hour),
			EventEndAt:   now.Add(2 * time.Hour),
		}
		next, changed := e.NextAutoStatus(now)
		assert.False(t, changed)
		assert.Equal(t, EventUpcoming, next)
	})

	t.Run("upcoming lewat jadwal mulai jadi ongoing", func(t *testing.T) {
		e := &EventModel{
			EventStatus:  EventUpcoming,
			EventStartAt: now.Add(-10 * time.Minute),
			EventEndAt:   now.Add(1 * time.Hour),
		}
		next, changed := e.NextAutoStatus(now)
		assert.True(t, changed)
		assert.Equal(t, EventOngoing, next)
	})

	t.Run("tepat di jadwal mulai jadi ongoing", func(t *testing.T) {
		e := &EventModel{
			EventStatus:  EventUpcoming,
			EventStartAt: now,
			EventEndAt:   now.Add(1 * time.Hour),
		}
		next, changed := e.NextAutoStatus(now)
		assert.True(t, changed)
		assert.Equal(t, EventOngoing, next)
	})

	t.Run("ongoing lewat jadwal selesai jadi completed", func(t *testing.T) {
		e := &EventModel{
			EventStatus:  EventOngoing,
			EventStartAt: now.Add(-2 * time.Hour),
			EventEndAt:   now.Add(-1 * time.Minute),
		}
		next, changed := e.NextAutoStatus(now)
		assert.True(t, changed)
		assert.Equal(t, EventCompleted, next)
	})

	t.Run("upcoming yang terlewat langsung completed", func(t *testing.T) {
		e := &EventModel{
			EventStatus:  EventUpcoming,
			EventStartAt: now.Add(-3 * time.Hour),
			EventEndAt:   now.Add(-2 * time.Hour),
		}
		next, changed := e.NextAutoStatus(now)
		assert.True(t, changed)
		assert.Equal(t, EventCompleted, next)
	})

	t.Run("cancelled terminal", func(t *testing.T) {
		e := &EventModel{
			EventStatus:  EventCancelled,
			EventStartAt: now.Add(-2 * time.Hour),
			EventEndAt:   now.Add(-1 * time.Hour),
		}
		next, changed := e.NextAutoStatus(now)
		assert.False(t, changed)
		assert.Equal(t, EventCancelled, next)
	})

	t.Run("completed terminal", func(t *testing.T) {
		e := &EventModel{
			EventStatus:  EventCompleted,
			EventStartAt: now.Add(-2 * time.Hour),
			EventEndAt:   now.Add(-1 * time.Hour),
		}
		next, changed := e.NextAutoStatus(now)
		assert.False(t, changed)
		assert.Equal(t, EventCompleted, next)
	})
}
