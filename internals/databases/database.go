package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL pool. DATABASE_URL wins when set; otherwise
// the DSN is assembled from DB_* parts. Missing configuration is fatal at
// startup.
func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			log.Fatal("[FATAL] DATABASE_URL (or DB_HOST) is not set")
		}
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			host,
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			getenv("DB_SSLMODE", "require"),
		)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		log.Fatalf("[FATAL] database connection failed: %v", err)
	}

	TunePool(db)
	log.Println("[INFO] database connected")
	return db
}

// TunePool caps the connection pool; values track the small deployment
// footprint this service runs in.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Close releases the underlying sql pool at shutdown.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
