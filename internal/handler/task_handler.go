package handler

import (
	"net/http"
	"time"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/model"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	ctrl *board.Controller
}

func NewTaskHandler(ctrl *board.Controller) *TaskHandler {
	return &TaskHandler{ctrl: ctrl}
}

// TaskRequest is the create/edit form. Required fields are checked by the
// board so the response can name the missing field.
type TaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         string     `json:"type" binding:"omitempty,oneof=bug improvement new-feature refactor"`
	Urgency      string     `json:"urgency" binding:"omitempty,oneof=high medium low"`
	Status       string     `json:"status" binding:"omitempty,oneof=backlog analysis development testing awaiting-approval done"`
	EstimatedDue *time.Time `json:"estimatedDue"`
	Responsible  string     `json:"responsible"`
	Observation  string     `json:"observation"`
	ReporterName string     `json:"reporterName"`
}

// TaskMoveRequest представляет запрос на перемещение задачи
type TaskMoveRequest struct {
	Column string `json:"column" binding:"required"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

func (r TaskRequest) form() board.TaskForm {
	return board.TaskForm{
		Title:        r.Title,
		Description:  r.Description,
		Type:         model.TaskType(r.Type),
		Urgency:      model.Urgency(r.Urgency),
		Status:       model.Status(r.Status),
		EstimatedDue: r.EstimatedDue,
		Responsible:  r.Responsible,
		Observation:  r.Observation,
		ReporterName: r.ReporterName,
	}
}

// GetAll godoc
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Success 200 {array} model.Task
// @Router /tasks [get]
func (h *TaskHandler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.ctrl.Tasks())
}

// Create godoc
// @Summary Add a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task body TaskRequest true "Task"
// @Success 201 {object} model.Task
// @Failure 400 {object} ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	res, err := h.ctrl.Dispatch(c.Request.Context(), board.CreateIntent{Form: req.form()})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res.Task)
}

// GetByID godoc
// @Summary Get a task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} model.Task
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.ctrl.Task(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update godoc
// @Summary Edit a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body TaskRequest true "Task"
// @Success 200 {object} model.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	res, err := h.ctrl.Dispatch(c.Request.Context(), board.EditIntent{TaskID: c.Param("id"), Form: req.form()})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Task)
}

// Delete godoc
// @Summary Remove a task and its comments
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	res, err := h.ctrl.Dispatch(c.Request.Context(), board.RemoveIntent{
		TaskID:    c.Param("id"),
		Confirmed: c.Query("confirm") == "true",
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !res.Removed {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// MoveTask godoc
// @Summary Move a task to another column
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param move body TaskMoveRequest true "Target column"
// @Success 200 {object} model.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/move [post]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	var req TaskMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	res, err := h.ctrl.Dispatch(c.Request.Context(), board.MoveIntent{TaskID: c.Param("id"), Column: model.Status(req.Column)})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Task)
}

// ToggleComplete godoc
// @Summary Mark a task done, or reopen it
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} model.Task
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/toggle [post]
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	res, err := h.ctrl.Dispatch(c.Request.Context(), board.ToggleCompleteIntent{TaskID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Task)
}

// GetComments godoc
// @Summary List comments, newest first
// @Tags Comments
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {array} model.Comment
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/comments [get]
func (h *TaskHandler) GetComments(c *gin.Context) {
	comments, err := h.ctrl.Comments(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddComment godoc
// @Summary Comment on a task
// @Description Blank text is ignored and answered with 204.
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param comment body CommentRequest true "Comment"
// @Success 201 {object} model.Comment
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/comments [post]
func (h *TaskHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	res, err := h.ctrl.Dispatch(c.Request.Context(), board.AddCommentIntent{TaskID: c.Param("id"), Text: req.Text})
	if err != nil {
		respondError(c, err)
		return
	}
	if res.Comment == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, res.Comment)
}
