package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"koperasiku_backend/internals/configs"
	eventModel "koperasiku_backend/internals/features/events/model"
	activityModel "koperasiku_backend/internals/features/koperasi/activities/model"
	documentModel "koperasiku_backend/internals/features/koperasi/documents/model"
	koperasiModel "koperasiku_backend/internals/features/koperasi/koperasis/model"
	memberModel "koperasiku_backend/internals/features/koperasi/members/model"
	userModel "koperasiku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=koperasiku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateAll menjalankan AutoMigrate seluruh model fitur.
// Urutan mengikuti dependensi FK: users → koperasis → turunan koperasi.
func MigrateAll() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&koperasiModel.KoperasiModel{},
		&memberModel.MemberModel{},
		&documentModel.DocumentModel{},
		&activityModel.ActivityModel{},
		&eventModel.EventModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
