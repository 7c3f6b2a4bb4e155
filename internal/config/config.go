package config

import (
	"fmt"
	"os"
)

// Config carries everything read from the environment. Defaults are tuned
// for a single-user local run: a sqlite file next to the binary and a local
// uploads directory.
type Config struct {
	Port string

	// DBDriver selects the backing store: "sqlite" (default) or "postgres".
	DBDriver   string
	SQLitePath string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	UploadDir string
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8000"),
		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		SQLitePath: getenv("SQLITE_PATH", "jobtracker.db"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "password"),
		DBName:     getenv("DB_NAME", "jobtracker"),
		UploadDir:  getenv("UPLOAD_PATH", "uploads"),
	}
}

// PostgresDSN builds the DSN for DB_DRIVER=postgres.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
