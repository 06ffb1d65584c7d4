// file: internals/features/koperasi/koperasis/route/koperasi_admin_route.go
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

// KoperasiAdminRoutes: endpoint admin pusat (role HIGH) di bawah /api/a.
func KoperasiAdminRoutes(admin fiber.Router, db *gorm.DB, st *storage.LocalStorage) {
	adminCtrl := koperasiController.NewKoperasiAdminController(db)
	memberCtrl := memberController.NewMemberController(db)
	docCtrl := documentController.NewDocumentController(db, st)
	actCtrl := activityController.NewActivityController(db)

	approvals := admin.Group("/approvals")
	approvals.Get("/", adminCtrl.ListApprovals)
	approvals.Post("/process", adminCtrl.ProcessApproval)

	koperasi := admin.Group("/koperasi")
	koperasi.Get("/", adminCtrl.List)
	koperasi.Get("/:id", adminCtrl.Detail)
	koperasi.Patch("/:id/status", adminCtrl.UpdateStatus)

	koperasi.Get("/:id/members", memberCtrl.ListAdmin)
	koperasi.Get("/:id/documents", docCtrl.ListAdmin)
	koperasi.Get("/:id/activities", actCtrl.ListAdmin)

	admin.Patch("/documents/:documentId/review", docCtrl.Review)
}
