package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Env        string
	ServerPort string

	// Admin access. An empty password disables the admin surface.
	AdminPassword string
	JWTSecret     string

	// Google Sheets workbook. When SpreadsheetID is empty the workbook is
	// created under SpreadsheetTitle on first run.
	SpreadsheetID    string
	SpreadsheetTitle string
	BookingsSheet    string
	ServicesSheet    string

	// Service account credentials: a file path or an inline JSON blob.
	CredentialsFile string
	CredentialsJSON string

	// Working hours and slot generation.
	OpenTime          string
	CloseTime         string
	SlotMinutes       int
	MinVisibleMinutes int
	Timezone          string

	// Optional snapshot cache. Disabled when RedisAddr is empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),

		SpreadsheetID:    getEnv("SPREADSHEET_ID", ""),
		SpreadsheetTitle: getEnv("SPREADSHEET_TITLE", "Eszter_Salonic"),
		BookingsSheet:    getEnv("BOOKINGS_SHEET", "Bookings"),
		ServicesSheet:    getEnv("SERVICES_SHEET", "Services"),

		CredentialsFile: getEnv("GOOGLE_SA_FILE", ""),
		CredentialsJSON: getEnv("GCP_SA_JSON", ""),

		OpenTime:          getEnv("OPEN_TIME", "09:00"),
		CloseTime:         getEnv("CLOSE_TIME", "18:00"),
		SlotMinutes:       getEnvInt("SLOT_MINUTES", 30),
		MinVisibleMinutes: getEnvInt("MIN_VISIBLE_MINUTES", 15),
		Timezone:          getEnv("TIMEZONE", "Europe/Budapest"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
