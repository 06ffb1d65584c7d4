// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"koperasiku_backend/internals/features/users/auth/service"
	"koperasiku_backend/internals/helpers/storage"
	authMiddleware "koperasiku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	blob := storage.NewLocalStorageFromEnv()

	auth := app.Group("/api/auth")
	auth.Post("/register", func(c *fiber.Ctx) error { return service.Register(db, c) })
	auth.Post("/login", func(c *fiber.Ctx) error { return service.Login(db, c) })
	auth.Post("/logout", func(c *fiber.Ctx) error { return service.Logout(c) })

	me := auth.Group("/me", authMiddleware.AuthMiddleware(db))
	me.Get("/", func(c *fiber.Ctx) error { return service.Me(db, c) })
	me.Patch("/photo", func(c *fiber.Ctx) error { return service.UpdatePhoto(db, blob, c) })
}
