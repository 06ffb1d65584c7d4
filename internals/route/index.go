// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"koperasiku_backend/internals/constants"
	eventRoute "koperasiku_backend/internals/features/events/route"
	koperasiRoute "koperasiku_backend/internals/features/koperasi/koperasis/route"
	authRoute "koperasiku_backend/internals/features/users/auth/route"
	"koperasiku_backend/internals/helpers/storage"
	authMiddleware "koperasiku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi:
//   - /api/auth : publik (register/login/logout) + /me
//   - /api/u    : operator daerah (role LOW)
//   - /api/a    : admin pusat (role HIGH)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	st := storage.NewLocalStorageFromEnv()

	// 🔓 Auth (publik)
	authRoute.AuthRoutes(app, db)

	// 👷 Operator daerah
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorOperator("operator"), constants.OperatorOnly),
	)
	koperasiRoute.KoperasiUserRoutes(user, db, st)
	eventRoute.EventUserRoutes(user, db)

	// 🛡️ Admin pusat
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("admin"), constants.AdminOnly),
	)
	koperasiRoute.KoperasiAdminRoutes(admin, db, st)
	eventRoute.EventAdminRoutes(admin, db)
}
