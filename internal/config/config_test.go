package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"realestatedb/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_PATH", "ERROR_LOG_PATH", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME_SECONDS", "DB_MAX_CONNECT_ATTEMPTS",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, "mysql", cfg.Driver)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "3306", cfg.Port)
	assert.Equal(t, "root", cfg.User)
	assert.Equal(t, "RealEstateDB", cfg.Name)
	assert.Equal(t, "realestate.db", cfg.Path)
	assert.Equal(t, "errors.log", cfg.ErrorLogPath)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 300, cfg.ConnMaxLifetime)
	assert.Equal(t, 3, cfg.MaxConnectAttempts)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/portfolio.db")
	t.Setenv("DB_MAX_CONNECT_ATTEMPTS", "7")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, "/tmp/portfolio.db", cfg.Path)
	assert.Equal(t, 7, cfg.MaxConnectAttempts)
	// Unparseable values fall back to the default.
	assert.Equal(t, 10, cfg.MaxOpenConns)
}
