package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var envKeys = []string{
	"PORT", "GIN_MODE", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
	"DB_NAME", "DB_SSLMODE", "DB_TIMEZONE", "SQLITE_PATH", "DB_MAX_IDLE_CONNS",
	"DB_MAX_OPEN_CONNS", "DB_CONN_MAX_LIFETIME", "LOG_FILE", "LOG_LEVEL", "CORS_ORIGINS",
}

// clearEnv unsets every key Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "foodtrucks", cfg.DBName)
	assert.Equal(t, "foodtrucks.db", cfg.SQLitePath)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 100, cfg.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, "./logs/app.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/trucks.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://trucks.example.com ,")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/trucks.db", cfg.SQLitePath)
	assert.Equal(t, 4, cfg.MaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.ConnMaxLifetime)
	assert.Equal(t, []string{"http://localhost:3000", "https://trucks.example.com"}, cfg.CORSOrigins)
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("DB_CONN_MAX_LIFETIME", "forever")

	cfg := Load()

	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBUser: "trucks", DBPassword: "secret", DBName: "foodtrucks",
		DBPort: "5433", DBSSLMode: "require", DBTimezone: "America/Chicago",
	}
	assert.Equal(t,
		"host=db user=trucks password=secret dbname=foodtrucks port=5433 sslmode=require TimeZone=America/Chicago",
		cfg.PostgresDSN())
}

func TestSQLiteDSN(t *testing.T) {
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	assert.Equal(t, "trucks.db?"+pragmas, Config{SQLitePath: "trucks.db"}.SQLiteDSN())
	assert.Equal(t, "file:trucks.db?mode=rwc&"+pragmas, Config{SQLitePath: "file:trucks.db?mode=rwc"}.SQLiteDSN())
}
