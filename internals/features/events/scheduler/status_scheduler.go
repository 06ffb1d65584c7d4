// file: internals/features/events/scheduler/status_scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"koperasiku_backend/internals/features/events/model"
)

// StartEventStatusScheduler menjalankan sweep status event tiap 5 menit:
// UPCOMING → ONGOING saat jadwal mulai lewat, dan → COMPLETED saat
// jadwal selesai lewat. CANCELLED tidak pernah disentuh.
func StartEventStatusScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("*/5 * * * *", func() {
		if err := SweepEventStatuses(db, time.Now()); err != nil {
			log.Println("[ERROR] sweep status event:", err)
		}
	})
	if err != nil {
		log.Println("[ERROR] gagal mendaftarkan cron event:", err)
		return c
	}

	c.Start()
	log.Println("⏰ Scheduler status event aktif (tiap 5 menit)")
	return c
}

// SweepEventStatuses memajukan status berbasis waktu dalam dua UPDATE
// massal; dipisah supaya bisa diuji deterministik dengan jam suntikan.
func SweepEventStatuses(db *gorm.DB, now time.Time) error {
	// UPCOMING/ONGOING yang sudah lewat jadwal selesai → COMPLETED
	if err := db.Model(&model.EventModel{}).
		Where("event_status IN ? AND event_end_at < ?",
			[]model.EventStatus{model.EventUpcoming, model.EventOngoing}, now).
		Update("event_status", model.EventCompleted).Error; err != nil {
		return err
	}

	// UPCOMING yang sudah mulai (tapi belum selesai) → ONGOING
	return db.Model(&model.EventModel{}).
		Where("event_status = ? AND event_start_at <= ? AND event_end_at >= ?",
			model.EventUpcoming, now, now).
		Update("event_status", model.EventOngoing).Error
}
