package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/repository"

	"github.com/gin-gonic/gin"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondError maps controller errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verr *board.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Field: verr.Field})
	case errors.Is(err, repository.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
	case errors.Is(err, board.ErrUnknownColumn):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown column"})
	case errors.Is(err, board.ErrNoDragInProgress):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "No drag in progress"})
	case errors.Is(err, board.ErrRemovalNotConfirmed):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Removal must be confirmed"})
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save tasks"})
	}
}
