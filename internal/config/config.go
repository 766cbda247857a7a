package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// SecretKey signs session cookies and is appended to passwords before
	// hashing. Changing it invalidates every session and every stored
	// credential, so treat it as part of the data.
	SecretKey string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	// DBMaxOpenConns is the maximum number of open connections to the database (default 25).
	DBMaxOpenConns int
	// DBMaxIdleConns is the maximum number of idle connections (default 5).
	DBMaxIdleConns int

	// Env is "dev" (default) or "prod". When "prod", SECRET_KEY must be set and not the default.
	Env string

	// SessionExpireHours is the session cookie lifetime in hours (default 24). Set via SESSION_EXPIRE_HOURS.
	SessionExpireHours int

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string

	// OpenPunchReportCron is a cron expression for the open-punch summary
	// job (e.g. "0 18 * * *"). Empty disables the job.
	OpenPunchReportCron string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		SecretKey: getEnv("SECRET_KEY", "dev-secret"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBName: getEnv("DB_NAME", "attendancedb"),
		DBUser: getEnv("DB_USER", "attendance"),
		DBPass: getEnv("DB_PASS", "attendance"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		Env:                getEnv("ENV", "dev"),
		SessionExpireHours: getEnvInt("SESSION_EXPIRE_HOURS", 24),

		LogFormat: getEnv("LOG_FORMAT", "text"),

		OpenPunchReportCron: getEnv("OPEN_PUNCH_REPORT_CRON", ""),
	}
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
