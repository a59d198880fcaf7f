package config_test

import (
	"os"
	"testing"

	"github.com/mvieira/lexiflash/internal/config"
	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	return config.Config{
		Addr:              ":8080",
		DBPath:            "test.db",
		LogLevel:          "INFO",
		ImportWorkerCount: 2,
		ImportQueueSize:   32,
		PracticeLimit:     20,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidWorkerCount(t *testing.T) {
	cfg := validConfig()
	cfg.ImportWorkerCount = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "IMPORT_WORKER_COUNT")
}

func TestValidate_InvalidPracticeLimit(t *testing.T) {
	cfg := validConfig()
	cfg.PracticeLimit = -1

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PRACTICE_LIMIT")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LOG_LEVEL", "IMPORT_WORKER_COUNT", "IMPORT_QUEUE_SIZE", "PRACTICE_LIMIT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:lexiflash.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 2, cfg.ImportWorkerCount)
	assert.Equal(t, 32, cfg.ImportQueueSize)
	assert.Equal(t, 20, cfg.PracticeLimit)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("PRACTICE_LIMIT", "50")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 50, cfg.PracticeLimit)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("IMPORT_QUEUE_SIZE", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 32, cfg.ImportQueueSize)
}
