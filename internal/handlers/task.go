package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sheyman13214/todoright-api/internal/calendar"
	"github.com/Sheyman13214/todoright-api/internal/dto"
	apierrors "github.com/Sheyman13214/todoright-api/internal/errors"
	"github.com/Sheyman13214/todoright-api/internal/middleware"
	"github.com/Sheyman13214/todoright-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the current user's tasks in creation order.
// An optional ?date=YYYY-MM-DD query narrows the list to tasks created
// that calendar day.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var day *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = &parsed
	}

	tasks, err := h.taskService.ListTasks(userID)
	if err != nil {
		log.Printf("failed to list tasks for user %d: %v", userID, err)
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(calendar.FilterByDay(tasks, day)))
}

// CreateTask creates a new task owned by the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title       string   `json:"title" binding:"required"`
		Items       []string `json:"items"`
		Description string   `json:"description"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		OwnerID:     userID,
		Title:       req.Title,
		Items:       req.Items,
		Description: req.Description,
	})
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// GetTask returns a single task owned by the current user.
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, taskID, ok := h.taskRequestIDs(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(userID, taskID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// updatableTaskFields are the only keys a PATCH payload may carry.
// Anything else (owner, id, timestamps) is rejected outright rather
// than silently ignored.
var updatableTaskFields = map[string]bool{
	"title":       true,
	"items":       true,
	"description": true,
}

// UpdateTask applies a partial update to a task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, taskID, ok := h.taskRequestIDs(c)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	for field := range raw {
		if !updatableTaskFields[field] {
			apierrors.BadRequestWithDetails(c, "Field cannot be updated", gin.H{"field": field})
			return
		}
	}

	var input services.UpdateTaskInput
	if msg, ok := raw["title"]; ok {
		var title string
		if err := json.Unmarshal(msg, &title); err != nil {
			apierrors.BadRequestWithDetails(c, "Invalid field value", gin.H{"field": "title"})
			return
		}
		input.Title = &title
	}
	if msg, ok := raw["items"]; ok {
		var items []string
		if err := json.Unmarshal(msg, &items); err != nil {
			apierrors.BadRequestWithDetails(c, "Invalid field value", gin.H{"field": "items"})
			return
		}
		input.Items = &items
	}
	if msg, ok := raw["description"]; ok {
		var description string
		if err := json.Unmarshal(msg, &description); err != nil {
			apierrors.BadRequestWithDetails(c, "Invalid field value", gin.H{"field": "description"})
			return
		}
		input.Description = &description
	}

	task, err := h.taskService.UpdateTask(userID, taskID, input)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task and returns its last state.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, taskID, ok := h.taskRequestIDs(c)
	if !ok {
		return
	}

	task, err := h.taskService.DeleteTask(userID, taskID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// AddItem appends a checklist item to a task.
func (h *TaskHandler) AddItem(c *gin.Context) {
	userID, taskID, ok := h.taskRequestIDs(c)
	if !ok {
		return
	}

	type AddItemRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.AddItem(userID, taskID, req.Text)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// RemoveItem removes the checklist item at the given index.
func (h *TaskHandler) RemoveItem(c *gin.Context) {
	userID, taskID, ok := h.taskRequestIDs(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid item index")
		return
	}

	task, err := h.taskService.RemoveItem(userID, taskID, index)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// taskRequestIDs resolves the authenticated user and the :id route param.
func (h *TaskHandler) taskRequestIDs(c *gin.Context) (userID, taskID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, 0, false
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return 0, 0, false
	}

	return userID, taskID, true
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrItemTextRequired),
		errors.Is(err, services.ErrItemIndexOutOfRange):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDescriptionTooLong):
		apierrors.BadRequest(c, fmt.Sprintf("Description must be at most %d words", h.taskService.DescriptionWordCap()))
	default:
		log.Printf("unexpected task error: %v", err)
		apierrors.InternalError(c, "")
	}
}
