package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StorageDriver: config.DriverSQLite,
		StorageKey:    "kanbanTasks",
		SQLitePath:    filepath.Join(t.TempDir(), "kanban.db"),
		CommentAuthor: "Client",
	}
}

func run(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func addTask(t *testing.T, cfg *config.Config) {
	t.Helper()
	out, err := run(t, cfg, "", "add",
		"--title", "Fix login bug",
		"--description", "Users can't log in",
		"--type", "bug",
		"--urgency", "high",
	)
	require.NoError(t, err)
	require.Contains(t, out, "Created task-1")
}

func TestAddAndBoard(t *testing.T) {
	// Arrange
	cfg := testConfig(t)
	addTask(t, cfg)

	// Act
	out, err := run(t, cfg, "", "board")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Backlog (1)")
	assert.Contains(t, out, "Fix login bug")
}

func TestAdd_MissingField(t *testing.T) {
	cfg := testConfig(t)

	_, err := run(t, cfg, "", "add", "--title", "Only a title")

	var verr *board.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "description", verr.Field)
}

func TestEdit_KeepsUnsetFields(t *testing.T) {
	// Arrange
	cfg := testConfig(t)
	addTask(t, cfg)

	// Act
	_, err := run(t, cfg, "", "edit", "task-1", "--responsible", "Ana", "--due", "2025-04-01 18:00")
	require.NoError(t, err)
	out, err := run(t, cfg, "", "show", "task-1")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Fix login bug")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "01/04/25 06:00 PM")
}

func TestMoveToggleAndComment(t *testing.T) {
	// Arrange
	cfg := testConfig(t)
	addTask(t, cfg)

	// Act
	moved, err := run(t, cfg, "", "move", "task-1", "testing")
	require.NoError(t, err)
	done, err := run(t, cfg, "", "toggle", "task-1")
	require.NoError(t, err)
	reopened, err := run(t, cfg, "", "toggle", "task-1")
	require.NoError(t, err)
	_, err = run(t, cfg, "", "comment", "task-1", "waiting", "on", "QA")
	require.NoError(t, err)
	shown, err := run(t, cfg, "", "show", "task-1")
	require.NoError(t, err)

	// Assert
	assert.Contains(t, moved, "In Testing")
	assert.Contains(t, done, "Done")
	assert.Contains(t, reopened, "In Testing")
	assert.Contains(t, shown, "waiting on QA")
}

func TestMove_UnknownColumn(t *testing.T) {
	cfg := testConfig(t)
	addTask(t, cfg)

	_, err := run(t, cfg, "", "move", "task-1", "archive")

	assert.ErrorIs(t, err, board.ErrUnknownColumn)
}

func TestRm_PromptsForConfirmation(t *testing.T) {
	// Arrange
	cfg := testConfig(t)
	addTask(t, cfg)

	// Act
	declined, err := run(t, cfg, "n\n", "rm", "task-1")
	require.NoError(t, err)
	afterDecline, err := run(t, cfg, "", "board")
	require.NoError(t, err)

	accepted, err := run(t, cfg, "y\n", "rm", "task-1")
	require.NoError(t, err)
	afterAccept, err := run(t, cfg, "", "board")
	require.NoError(t, err)

	// Assert
	assert.Contains(t, declined, "Cancelled")
	assert.Contains(t, afterDecline, "Backlog (1)")
	assert.Contains(t, accepted, "Removed task-1")
	assert.Contains(t, afterAccept, "Backlog (0)")
}

func TestRm_MissingTask(t *testing.T) {
	cfg := testConfig(t)

	out, err := run(t, cfg, "", "rm", "--yes", "task-7")

	require.NoError(t, err)
	assert.Contains(t, out, "No task task-7")
}
