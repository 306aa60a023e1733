package config_test

import (
	"os"
	"testing"

	"github.com/JheyDev/Kanban/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"STORAGE_DRIVER", "STORAGE_KEY", "SQLITE_PATH", "SERVER_PORT", "COMMENT_AUTHOR"} {
		// Setenv registers the restore; the variable itself must be absent.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.Load()

	assert.Equal(t, config.DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "kanbanTasks", cfg.StorageKey)
	assert.Equal(t, "kanban.db", cfg.SQLitePath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "Client", cfg.CommentAuthor)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", config.DriverMemory)
	t.Setenv("STORAGE_KEY", "boardTasks")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("COMMENT_AUTHOR", "QA")

	cfg := config.Load()

	assert.Equal(t, config.DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "boardTasks", cfg.StorageKey)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "QA", cfg.CommentAuthor)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "kanban"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=kanban sslmode=disable", cfg.PostgresDSN())
}
