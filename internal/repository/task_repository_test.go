package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/JheyDev/Kanban/internal/model"
	"github.com/JheyDev/Kanban/internal/repository"
	"github.com/JheyDev/Kanban/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const key = "kanbanTasks"

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// Мок хранилища ключ/значение
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newRepo(t *testing.T) (*repository.TaskRepository, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return repository.NewTaskRepository(kv, key, repository.WithClock(func() time.Time { return fixedNow })), kv
}

func sampleTask() model.Task {
	return model.Task{
		Title:       "Fix login bug",
		Description: "Users can't log in",
		Type:        model.TypeBug,
		Urgency:     model.UrgencyHigh,
		Status:      model.StatusBacklog,
	}
}

func storedTasks(t *testing.T, kv storage.KeyValueStore) []model.Task {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
	var tasks []model.Task
	require.NoError(t, json.Unmarshal([]byte(raw), &tasks))
	return tasks
}

func TestUpsert_CreatesWithCounterID(t *testing.T) {
	// Arrange
	repo, kv := newRepo(t)

	// Act
	first, created, err := repo.Upsert(context.Background(), sampleTask())
	require.NoError(t, err)
	second, _, err := repo.Upsert(context.Background(), sampleTask())
	require.NoError(t, err)

	// Assert
	assert.True(t, created)
	assert.Equal(t, "task-1", first.ID)
	assert.Equal(t, "task-2", second.ID)
	assert.Equal(t, fixedNow, first.CreationDate)
	assert.NotNil(t, first.Comments)
	assert.Len(t, storedTasks(t, kv), 2)
}

func TestUpsert_IgnoresUnknownIncomingID(t *testing.T) {
	repo, _ := newRepo(t)
	task := sampleTask()
	task.ID = "task-99"

	created, ok, err := repo.Upsert(context.Background(), task)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "task-1", created.ID)
}

func TestUpsert_OverwritesInPlaceKeepingComments(t *testing.T) {
	// Arrange
	repo, _ := newRepo(t)
	ctx := context.Background()
	task, _, err := repo.Upsert(ctx, sampleTask())
	require.NoError(t, err)
	_, err = repo.AppendComment(ctx, task.ID, model.Comment{ID: "comment-1", Text: "Looks good"})
	require.NoError(t, err)

	edit := sampleTask()
	edit.ID = task.ID
	edit.Title = "Fix SSO login bug"
	edit.CreationDate = fixedNow.Add(time.Hour)

	// Act
	updated, created, err := repo.Upsert(ctx, edit)

	// Assert
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, task, updated)
	assert.Equal(t, "Fix SSO login bug", updated.Title)
	assert.Equal(t, fixedNow, updated.CreationDate)
	assert.Len(t, updated.Comments, 1)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, _ := newRepo(t)

	task, err := repo.FindByID("task-404")

	assert.Nil(t, task)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestRemove_IsIdempotent(t *testing.T) {
	// Arrange
	repo, kv := newRepo(t)
	ctx := context.Background()
	task, _, err := repo.Upsert(ctx, sampleTask())
	require.NoError(t, err)
	_, err = repo.AppendComment(ctx, task.ID, model.Comment{ID: "comment-1", Text: "hi"})
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Remove(ctx, task.ID))
	err = repo.Remove(ctx, task.ID)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, repo.All())
	assert.Empty(t, storedTasks(t, kv))
}

func TestUpdate_RevertsWhenPersistFails(t *testing.T) {
	// Arrange
	kv := new(MockStore)
	kv.On("Set", mock.Anything, key, mock.Anything).Return(nil).Once()
	kv.On("Set", mock.Anything, key, mock.Anything).Return(assert.AnError)
	repo := repository.NewTaskRepository(kv, key)
	ctx := context.Background()

	task, _, err := repo.Upsert(ctx, sampleTask())
	require.NoError(t, err)

	// Act
	_, err = repo.Update(ctx, task.ID, func(t *model.Task) error {
		t.Status = model.StatusTesting
		return nil
	})
	commentErr := func() error {
		_, err := repo.AppendComment(ctx, task.ID, model.Comment{ID: "c"})
		return err
	}()
	removeErr := repo.Remove(ctx, task.ID)

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
	assert.Error(t, commentErr)
	assert.Error(t, removeErr)
	assert.Equal(t, model.StatusBacklog, task.Status)
	assert.Empty(t, task.Comments)
	assert.Len(t, repo.All(), 1)
	kv.AssertExpectations(t)
}

func TestUpsert_CreateRollsBackWhenPersistFails(t *testing.T) {
	kv := new(MockStore)
	kv.On("Set", mock.Anything, key, mock.Anything).Return(assert.AnError).Once()
	kv.On("Set", mock.Anything, key, mock.Anything).Return(nil)
	repo := repository.NewTaskRepository(kv, key)

	_, _, err := repo.Upsert(context.Background(), sampleTask())
	require.Error(t, err)
	assert.Empty(t, repo.All())

	// The failed id is burned, never reused.
	task, _, err := repo.Upsert(context.Background(), sampleTask())
	require.NoError(t, err)
	assert.Equal(t, "task-2", task.ID)
}

func TestRestore_EmptyStore(t *testing.T) {
	repo, _ := newRepo(t)

	require.NoError(t, repo.Restore(context.Background()))

	assert.Empty(t, repo.All())
}

func TestRestore_RepairsAndAdvancesCounter(t *testing.T) {
	// Arrange
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), key, `[
		{"id":"task-3","title":"a","status":"done","isCompleted":true,"comments":[]},
		{"id":"task-12","title":"b","status":"testing","isCompleted":true,"previousStatus":"analysis"},
		{"id":"task-12","title":"dup","status":"backlog"},
		{"id":"legacy","title":"c","status":"done","previousStatus":"done","comments":[]}
	]`))
	repo := repository.NewTaskRepository(kv, key)

	// Act
	err := repo.Restore(context.Background())
	require.NoError(t, err)
	created, _, err := repo.Upsert(context.Background(), sampleTask())
	require.NoError(t, err)

	// Assert
	tasks := repo.All()
	require.Len(t, tasks, 4)
	assert.Equal(t, model.StatusBacklog, tasks[0].PreviousStatus)
	assert.True(t, tasks[0].IsCompleted)

	assert.Equal(t, "b", tasks[1].Title)
	assert.Empty(t, tasks[1].PreviousStatus)
	assert.False(t, tasks[1].IsCompleted)
	assert.NotNil(t, tasks[1].Comments)

	assert.Equal(t, model.StatusBacklog, tasks[2].PreviousStatus)
	assert.Equal(t, "task-13", created.ID)
}

func TestRestore_AssignsIDsToUnnamedTasks(t *testing.T) {
	// Arrange
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), key, `[
		{"id":"task-1","title":"a","status":"backlog","comments":[]},
		{"id":"","title":"ghost","status":"analysis","comments":[]}
	]`))
	repo := repository.NewTaskRepository(kv, key)
	require.NoError(t, repo.Restore(context.Background()))

	// Act
	created, isNew, err := repo.Upsert(context.Background(), sampleTask())

	// Assert
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "task-3", created.ID)

	tasks := repo.All()
	require.Len(t, tasks, 3)
	assert.Equal(t, "task-2", tasks[1].ID)
	assert.Equal(t, "ghost", tasks[1].Title)
	_, err = repo.FindByID("")
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestUpsert_EmptyIDAlwaysCreates(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	first, _, err := repo.Upsert(ctx, sampleTask())
	require.NoError(t, err)
	second, isNew, err := repo.Upsert(ctx, sampleTask())
	require.NoError(t, err)

	assert.True(t, isNew)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.All(), 2)
}

func TestRestore_UnknownStatusMovesToBacklog(t *testing.T) {
	// Arrange
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), key, `[
		{"id":"task-1","title":"a","status":"archived","isCompleted":true,"previousStatus":"testing","comments":[]}
	]`))
	repo := repository.NewTaskRepository(kv, key)

	// Act
	require.NoError(t, repo.Restore(context.Background()))

	// Assert
	task, err := repo.FindByID("task-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusBacklog, task.Status)
	assert.False(t, task.IsCompleted)
	assert.Empty(t, task.PreviousStatus)
}

func TestRestore_MalformedState(t *testing.T) {
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), key, `{not json`))
	repo := repository.NewTaskRepository(kv, key)

	err := repo.Restore(context.Background())

	assert.ErrorIs(t, err, repository.ErrCorruptState)
}

func TestPersistRestore_RoundTrip(t *testing.T) {
	// Arrange
	repo, kv := newRepo(t)
	ctx := context.Background()
	due := fixedNow.Add(48 * time.Hour)
	task := sampleTask()
	task.EstimatedDue = &due
	task.Responsible = "Ana"
	created, _, err := repo.Upsert(ctx, task)
	require.NoError(t, err)
	_, err = repo.AppendComment(ctx, created.ID, model.Comment{ID: "comment-a", Text: "Looks good", Author: "Client", Timestamp: fixedNow})
	require.NoError(t, err)
	first, _, _ := kv.Get(ctx, key)

	// Act
	restored := repository.NewTaskRepository(kv, key)
	require.NoError(t, restored.Restore(ctx))
	require.NoError(t, restored.Persist(ctx))
	second, _, _ := kv.Get(ctx, key)

	// Assert
	assert.JSONEq(t, first, second)
	assert.NotContains(t, first, "previousStatus")
}
