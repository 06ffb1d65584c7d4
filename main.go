// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"koperasiku_backend/internals/configs"
	database "koperasiku_backend/internals/databases"
	eventScheduler "koperasiku_backend/internals/features/events/scheduler"
	helper "koperasiku_backend/internals/helpers"
	"koperasiku_backend/internals/middlewares"
	routes "koperasiku_backend/internals/route"
)

func main() {
	// ===== ENV & DB =====
	configs.LoadEnv()
	database.ConnectDB()
	database.TunePool()
	database.MigrateAll()

	// ===== FIBER APP =====
	app := fiber.New(fiber.Config{
		AppName:      "koperasiku_backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    12 * 1024 * 1024, // plafon global; per-endpoint dicek lagi
		ErrorHandler: helper.FiberErrorHandler,
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// Berkas upload (dokumen & foto profil) disajikan statis.
	app.Static(
		configs.GetEnv("UPLOAD_PUBLIC_BASE", "/uploads"),
		configs.GetEnv("UPLOAD_DIR", "./public/uploads"),
	)

	// Healthcheck untuk platform deploy
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ===== ROUTES =====
	routes.SetupRoutes(app, database.DB)

	// ===== SCHEDULER =====
	cronRunner := eventScheduler.StartEventStatusScheduler(database.DB)

	// ===== GRACEFUL SHUTDOWN =====
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("🛑 Shutdown signal diterima, menutup server...")
		cronRunner.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Shutdown error: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 koperasiku_backend listen di :%s\n", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server berhenti: %v", err)
	}
}
