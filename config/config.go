package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	DBPath          string
	LegacyStorePath string
	ReferencePrefix string
	SeedDemoData    bool
	AdminUsername   string
	AdminPassword   string
	AdminEmail      string
	SessionTTLHours int
	CORSOrigins     string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:            GetEnv("PORT", "3000"),
		Env:             GetEnv("ENV", "development"),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		DBPath:          GetEnv("DB_PATH", "./data/finques_lisa.db"),
		LegacyStorePath: GetEnv("LEGACY_STORE_PATH", "./data/legacy_properties.json"),
		ReferencePrefix: GetEnv("REFERENCE_PREFIX", "FL"),
		SeedDemoData:    GetEnvAsBool("SEED_DEMO_DATA", true),
		AdminUsername:   GetEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   GetEnv("ADMIN_PASSWORD", "admin123"),
		AdminEmail:      GetEnv("ADMIN_EMAIL", "admin@finqueslisa.com"),
		SessionTTLHours: GetEnvAsInt("SESSION_TTL_HOURS", 24*30),
		CORSOrigins:     GetEnv("CORS_ORIGINS", "*"),
	}

	if AppConfig.ReferencePrefix == "" {
		log.Fatal("REFERENCE_PREFIX must not be empty")
	}
	if AppConfig.Env == "production" && AppConfig.AdminPassword == "admin123" {
		log.Println("WARNING: ADMIN_PASSWORD is the placeholder default; change it before exposing the admin panel")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt falls back to defaultValue when the variable is unset or not an integer.
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
