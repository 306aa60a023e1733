package handler

import (
	"net/http"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/model"
	"github.com/JheyDev/Kanban/internal/view"

	"github.com/gin-gonic/gin"
)

// Snapshotter exposes the rendered board.
type Snapshotter interface {
	Snapshot() view.Snapshot
}

// BoardHandler serves the rendered board together with the detail view and
// drag gestures that change it.
type BoardHandler struct {
	ctrl   *board.Controller
	layout Snapshotter
}

func NewBoardHandler(ctrl *board.Controller, layout Snapshotter) *BoardHandler {
	return &BoardHandler{ctrl: ctrl, layout: layout}
}

type DragStartRequest struct {
	TaskID string `json:"taskId" binding:"required"`
}

type ColumnRequest struct {
	Column string `json:"column" binding:"required"`
}

// Get godoc
// @Summary Rendered board
// @Tags Board
// @Produce json
// @Success 200 {object} view.Snapshot
// @Router /board [get]
func (h *BoardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.layout.Snapshot())
}

// OpenDetails godoc
// @Summary Open the detail view of a task
// @Tags Board
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} view.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /details/{id} [post]
func (h *BoardHandler) OpenDetails(c *gin.Context) {
	if err := h.ctrl.OpenDetails(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.layout.Snapshot())
}

// CloseDetails godoc
// @Summary Close the detail view
// @Tags Board
// @Success 204
// @Router /details [delete]
func (h *BoardHandler) CloseDetails(c *gin.Context) {
	h.ctrl.CloseDetails()
	c.Status(http.StatusNoContent)
}

// DragStart godoc
// @Summary Pick up a card
// @Tags Drag
// @Accept json
// @Produce json
// @Param drag body DragStartRequest true "Dragged task"
// @Success 200 {object} view.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /drag/start [post]
func (h *BoardHandler) DragStart(c *gin.Context) {
	var req DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	if err := h.ctrl.DragStart(req.TaskID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.layout.Snapshot())
}

// DragOver godoc
// @Summary Highlight the column under the dragged card
// @Tags Drag
// @Accept json
// @Produce json
// @Param column body ColumnRequest true "Column"
// @Success 200 {object} view.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /drag/over [post]
func (h *BoardHandler) DragOver(c *gin.Context) {
	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	if err := h.ctrl.DragOver(model.Status(req.Column)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.layout.Snapshot())
}

// DragLeave godoc
// @Summary Remove the highlight from a column
// @Tags Drag
// @Accept json
// @Produce json
// @Param column body ColumnRequest true "Column"
// @Success 200 {object} view.Snapshot
// @Router /drag/leave [post]
func (h *BoardHandler) DragLeave(c *gin.Context) {
	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	h.ctrl.DragLeave(model.Status(req.Column))
	c.JSON(http.StatusOK, h.layout.Snapshot())
}

// Drop godoc
// @Summary Drop the dragged card into a column
// @Tags Drag
// @Accept json
// @Produce json
// @Param column body ColumnRequest true "Column"
// @Success 200 {object} model.Task
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /drag/drop [post]
func (h *BoardHandler) Drop(c *gin.Context) {
	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	task, err := h.ctrl.Drop(c.Request.Context(), model.Status(req.Column))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DragEnd godoc
// @Summary Finish the drag
// @Tags Drag
// @Produce json
// @Success 200 {object} view.Snapshot
// @Router /drag/end [post]
func (h *BoardHandler) DragEnd(c *gin.Context) {
	h.ctrl.DragEnd()
	c.JSON(http.StatusOK, h.layout.Snapshot())
}
