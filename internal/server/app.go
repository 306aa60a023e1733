package server

import (
	"context"
	"fmt"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/config"
	"github.com/JheyDev/Kanban/internal/model"
	"github.com/JheyDev/Kanban/internal/repository"
	"github.com/JheyDev/Kanban/internal/storage"
	"github.com/JheyDev/Kanban/internal/view"
)

// App is a loaded board bound to its store. The HTTP server and the CLI
// both drive it.
type App struct {
	Controller *board.Controller
	Layout     *view.Layout

	closeStore func() error
}

// OpenApp opens the configured store, restores the saved tasks and renders
// them.
func OpenApp(ctx context.Context, cfg *config.Config) (*App, error) {
	kv, closeStore, err := storage.Open(cfg)
	if err != nil {
		return nil, err
	}

	repo := repository.NewTaskRepository(kv, cfg.StorageKey)
	layout := view.NewLayout(model.Columns)
	ctrl := board.NewController(repo, layout, board.WithCommentAuthor(cfg.CommentAuthor))

	if err := ctrl.Load(ctx); err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("❌ failed to load tasks: %w", err)
	}

	return &App{Controller: ctrl, Layout: layout, closeStore: closeStore}, nil
}

func (a *App) Close() error {
	return a.closeStore()
}
