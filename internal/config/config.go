package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every environment-backed setting. A .env file is honored when
// present; real environment variables win.
type Config struct {
	Port      string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	RedisAddr string
	JWTSecret string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:      getenv("PORT", "8080"),
		DBHost:    getenv("DB_HOST", "127.0.0.1"),
		DBPort:    getenv("DB_PORT", "3306"),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    os.Getenv("DB_PASS"),
		DBName:    getenv("DB_NAME", "shop"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		JWTSecret: getenv("JWT_SECRET", "secret"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
