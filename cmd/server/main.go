package main

import (
	"log"

	_ "github.com/JheyDev/Kanban/docs"
	"github.com/JheyDev/Kanban/internal/config"
	"github.com/JheyDev/Kanban/internal/server"
)

// @title           Kanban API
// @version         1.0
// @description     Single-user Kanban board: tasks, drag and drop, comments.

// @contact.name   octaview
// @contact.url    t.me/octaview
// @contact.email  octaviewes@gmail.com

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
