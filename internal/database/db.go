package database

import (
	"log"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobtracker-api/internal/config"
	"jobtracker-api/internal/models"
)

var DB *gorm.DB

// Connect opens the configured database and runs migrations. The default is
// a local sqlite file, which matches the single-user deployment; set
// DB_DRIVER=postgres for a server-backed install.
func Connect(cfg *config.Config) *gorm.DB {
	// Suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Warn
	if strings.ToLower(os.Getenv("DEBUG_SQL")) == "true" {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger: logger.New(
			log.New(config.LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.PostgresDSN())
	default:
		dial = sqlite.Open(cfg.SQLitePath)
	}

	var err error
	DB, err = gorm.Open(dial, gormCfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := DB.AutoMigrate(&models.Application{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return DB
}
