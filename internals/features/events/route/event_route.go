// file: internals/features/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "koperasiku_backend/internals/features/events/controller"
)

// EventUserRoutes: listing & detail event untuk semua user login.
func EventUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := user.Group("/events")
	events.Get("/", ctrl.List)
	events.Get("/:id", ctrl.Detail)
}

// EventAdminRoutes: CRUD event oleh admin pusat.
func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := admin.Group("/events")
	events.Get("/", ctrl.List)
	events.Post("/", ctrl.Create)
	events.Get("/:id", ctrl.Detail)
	events.Patch("/:id", ctrl.Update)
	events.Patch("/:id/cancel", ctrl.Cancel)
	events.Delete("/:id", ctrl.Delete)
}
