package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	util "employee-attendance/pkg/utils"
)

type AppConfig struct {
	Port           string
	MongoString    string
	DBName         string
	PasetoSecret   string
	TokenTTL       time.Duration
	Timezone       string
	AllowedOrigins []string

	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
}

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:4173",
	"http://127.0.0.1:5173",
}

// LoadConfig reads the process environment. Call godotenv.Load first if a
// .env file should be honoured.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:              getEnv("PORT", "3000"),
		MongoString:       getEnv("MONGOSTRING", ""),
		DBName:            getEnv("DB_NAME", "attendance-db"),
		PasetoSecret:      getEnv("PASETO_SECRET", ""),
		Timezone:          getEnv("TIMEZONE", "Asia/Jakarta"),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", strings.Join(defaultAllowedOrigins, ","))),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "Administrator"),
	}

	if cfg.MongoString == "" {
		return nil, fmt.Errorf("MONGOSTRING is not set")
	}

	if _, err := util.DecodeBase64Key(cfg.PasetoSecret); err != nil {
		return nil, fmt.Errorf("PASETO_SECRET: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be a positive duration, got %q", os.Getenv("TOKEN_TTL"))
	}
	cfg.TokenTTL = ttl

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}

	if (cfg.SeedAdminEmail == "") != (cfg.SeedAdminPassword == "") {
		log.Println("Warning: SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set together, admin seeding disabled")
		cfg.SeedAdminEmail, cfg.SeedAdminPassword = "", ""
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
