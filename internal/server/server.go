package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JheyDev/Kanban/internal/config"
	"github.com/JheyDev/Kanban/internal/handler"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine *gin.Engine
	App    *App
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	app, err := OpenApp(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Loaded %d tasks", len(app.Controller.Tasks()))

	return &Server{
		Engine: NewRouter(app),
		App:    app,
		Config: cfg,
	}, nil
}

// NewRouter registers the board routes on a fresh engine.
func NewRouter(app *App) *gin.Engine {
	// Setup Gin
	r := gin.Default()

	// Initialize handlers
	taskHandler := handler.NewTaskHandler(app.Controller)
	boardHandler := handler.NewBoardHandler(app.Controller, app.Layout)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Board routes
	r.GET("/board", boardHandler.Get)
	r.POST("/details/:id", boardHandler.OpenDetails)
	r.DELETE("/details", boardHandler.CloseDetails)

	// Drag routes
	drag := r.Group("/drag")
	{
		drag.POST("/start", boardHandler.DragStart)
		drag.POST("/over", boardHandler.DragOver)
		drag.POST("/leave", boardHandler.DragLeave)
		drag.POST("/drop", boardHandler.Drop)
		drag.POST("/end", boardHandler.DragEnd)
	}

	// Task routes
	r.GET("/tasks", taskHandler.GetAll)
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)
	r.POST("/tasks/:id/move", taskHandler.MoveTask)
	r.POST("/tasks/:id/toggle", taskHandler.ToggleComplete)

	// Comment routes
	r.GET("/tasks/:id/comments", taskHandler.GetComments)
	r.POST("/tasks/:id/comments", taskHandler.AddComment)

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}
	if err := s.App.Close(); err != nil {
		log.Printf("⚠️  Failed to close store: %v", err)
	}

	log.Println("✅ Server exited properly")
}
