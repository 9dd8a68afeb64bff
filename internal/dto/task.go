package dto

import (
	"time"

	"github.com/Sheyman13214/todoright-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Items       []string  `json:"items"`
	Description string    `json:"description"`
	UserID      uint64    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	items := task.Items
	if items == nil {
		items = []string{}
	}
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Items:       items,
		Description: task.Description,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
