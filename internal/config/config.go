package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne toda la configuración del servidor leída del ambiente.
type Config struct {
	DBHost      string
	DBPort      uint
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	HTTPPort    string
	JWTSecret   string
	CORSOrigins []string
	AdminUser   string
	AdminPass   string
}

// Load carga el archivo .env (si existe) y construye la configuración
// con valores por defecto de desarrollo.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBHost:      envOr("DB_HOST", "localhost"),
		DBPort:      envPort("DB_PORT", 5432),
		DBUser:      envOr("DB_USER", "postgres"),
		DBPassword:  envOr("DB_PASSWORD", "postgres"),
		DBName:      envOr("DB_NAME", "smiley"),
		DBSSLMode:   envOr("DB_SSL_MODE", "disable"),
		HTTPPort:    envOr("HTTP_PORT", "8080"),
		JWTSecret:   envOr("JWT_SECRET", ""),
		CORSOrigins: splitOrigins(envOr("CORS_ORIGINS", "http://localhost:3000")),
		AdminUser:   envOr("ADMIN_USER", ""),
		AdminPass:   envOr("ADMIN_PASSWORD", ""),
	}
}

// DSN arma la cadena de conexión de Postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envPort(key string, fallback uint) uint {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	port, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback
	}
	return uint(port)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
