package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, uint(5432), cfg.DBPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.interno")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "clinica")
	t.Setenv("CORS_ORIGINS", "https://smiley.example.com, https://admin.smiley.example.com")

	cfg := Load()

	assert.Equal(t, "db.interno", cfg.DBHost)
	assert.Equal(t, uint(6543), cfg.DBPort)
	assert.Contains(t, cfg.DSN(), "dbname=clinica")
	assert.Contains(t, cfg.DSN(), "port=6543")
	assert.Equal(t,
		[]string{"https://smiley.example.com", "https://admin.smiley.example.com"},
		cfg.CORSOrigins)
}

func TestLoadPortInvalidoUsaDefault(t *testing.T) {
	t.Setenv("DB_PORT", "no-es-numero")

	cfg := Load()

	assert.Equal(t, uint(5432), cfg.DBPort)
}
