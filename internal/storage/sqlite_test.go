package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/JheyDev/Kanban/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	s, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "data", "kanban.db"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanban.db")
	ctx := context.Background()

	s, err := storage.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "kanbanTasks", `[{"id":"task-7"}]`))
	require.NoError(t, s.Close())

	reopened, err := storage.NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "kanbanTasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"task-7"}]`, v)
}
