// file: internals/features/koperasi/koperasis/route/koperasi_user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "koperasiku_backend/internals/features/koperasi/activities/controller"
	documentController "koperasiku_backend/internals/features/koperasi/documents/controller"
	koperasiController "koperasiku_backend/internals/features/koperasi/koperasis/controller"
	memberController "koperasiku_backend/internals/features/koperasi/members/controller"
	"koperasiku_backend/internals/helpers/storage"
)

// KoperasiUserRoutes: endpoint operator daerah (role LOW) di bawah /api/u.
func KoperasiUserRoutes(user fiber.Router, db *gorm.DB, st *storage.LocalStorage) {
	ownerCtrl := koperasiController.NewKoperasiOwnerController(db, st)
	memberCtrl := memberController.NewMemberController(db)
	docCtrl := documentController.NewDocumentController(db, st)
	actCtrl := activityController.NewActivityController(db)

	koperasi := user.Group("/koperasi")
	koperasi.Post("/", ownerCtrl.Submit)
	koperasi.Get("/", ownerCtrl.GetMine)
	koperasi.Patch("/:id", ownerCtrl.Patch)
	koperasi.Patch("/:id/health", ownerCtrl.Deactivate)
	koperasi.Delete("/:id", ownerCtrl.Delete)

	koperasi.Post("/:id/members", memberCtrl.Create)
	koperasi.Get("/:id/members", memberCtrl.List)
	koperasi.Patch("/:id/members/:memberId", memberCtrl.Update)
	koperasi.Delete("/:id/members/:memberId", memberCtrl.Delete)

	koperasi.Post("/:id/documents", docCtrl.UploadGeneral)
	koperasi.Post("/:id/documents/rat", docCtrl.UploadRAT)
	koperasi.Get("/:id/documents", docCtrl.List)

	koperasi.Get("/:id/activities", actCtrl.ListOwner)
}
