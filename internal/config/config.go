package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries the environment-derived settings. Every option has a
// documented default so the tool runs against a local MySQL out of the box.
type Config struct {
	// Driver selects the database backend: mysql, postgres or sqlite.
	Driver string
	// Host, Port, User, Password and Name locate the database server.
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	// Path is the database file when Driver is sqlite.
	Path string

	// ErrorLogPath is the append-only error log file.
	ErrorLogPath string

	// Connection pool tuning.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // seconds

	// MaxConnectAttempts bounds reconnect attempts before giving up.
	MaxConnectAttempts int
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		Driver:             stringFromEnv("DB_DRIVER", "mysql"),
		Host:               stringFromEnv("DB_HOST", "localhost"),
		Port:               stringFromEnv("DB_PORT", "3306"),
		User:               stringFromEnv("DB_USER", "root"),
		Password:           stringFromEnv("DB_PASSWORD", ""),
		Name:               stringFromEnv("DB_NAME", "RealEstateDB"),
		Path:               stringFromEnv("DB_PATH", "realestate.db"),
		ErrorLogPath:       stringFromEnv("ERROR_LOG_PATH", "errors.log"),
		MaxOpenConns:       intFromEnv("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:       intFromEnv("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:    intFromEnv("DB_CONN_MAX_LIFETIME_SECONDS", 300),
		MaxConnectAttempts: intFromEnv("DB_MAX_CONNECT_ATTEMPTS", 3),
	}
}

func stringFromEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
