package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Sheyman13214/todoright-api/internal/models"
	"github.com/Sheyman13214/todoright-api/internal/repository"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionTooLong  = errors.New("description exceeds the word limit")
	ErrItemTextRequired    = errors.New("item text is required")
	ErrItemIndexOutOfRange = errors.New("item index out of range")
)

// TaskService handles task business logic. Every operation takes the
// authenticated owner's user ID; a task that exists but belongs to a
// different user fails with ErrTaskNotFound, same as a missing one.
type TaskService struct {
	taskRepo           repository.TaskRepository
	descriptionWordCap int
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, descriptionWordCap int) *TaskService {
	return &TaskService{
		taskRepo:           taskRepo,
		descriptionWordCap: descriptionWordCap,
	}
}

// DescriptionWordCap returns the configured description policy value.
func (s *TaskService) DescriptionWordCap() int {
	return s.descriptionWordCap
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	OwnerID     uint64
	Title       string
	Items       []string
	Description string
}

// UpdateTaskInput represents a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Items       *[]string
	Description *string
}

// CreateTask creates a new task owned by input.OwnerID.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if err := s.checkDescription(input.Description); err != nil {
		return nil, err
	}

	items := input.Items
	if items == nil {
		items = []string{}
	}

	task := &models.Task{
		Title:       title,
		Items:       items,
		Description: input.Description,
		UserID:      input.OwnerID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns the user's tasks in creation order.
func (s *TaskService) ListTasks(ownerID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task owned by ownerID.
func (s *TaskService) GetTask(ownerID, taskID uint64) (*models.Task, error) {
	return s.findOwned(ownerID, taskID)
}

// UpdateTask applies a partial update. Every present field is validated
// before anything is written, so a rejected update leaves the stored
// task untouched.
func (s *TaskService) UpdateTask(ownerID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	var title string
	if input.Title != nil {
		title = strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
	}
	if input.Description != nil {
		if err := s.checkDescription(*input.Description); err != nil {
			return nil, err
		}
	}

	if input.Title != nil {
		task.Title = title
	}
	if input.Items != nil {
		items := *input.Items
		if items == nil {
			items = []string{}
		}
		task.Items = items
	}
	if input.Description != nil {
		task.Description = *input.Description
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask hard-deletes a task and returns its last state.
// Deleting the same task twice fails with ErrTaskNotFound the second time.
func (s *TaskService) DeleteTask(ownerID, taskID uint64) (*models.Task, error) {
	task, err := s.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.taskRepo.Delete(ownerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

// AddItem appends a checklist item to a task.
func (s *TaskService) AddItem(ownerID, taskID uint64, text string) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrItemTextRequired
	}

	task, err := s.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Items = append(task.Items, text)

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	return task, nil
}

// RemoveItem removes the checklist item at the given index.
func (s *TaskService) RemoveItem(ownerID, taskID uint64, index int) (*models.Task, error) {
	task, err := s.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(task.Items) {
		return nil, ErrItemIndexOutOfRange
	}

	task.Items = append(task.Items[:index], task.Items[index+1:]...)

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}

	return task, nil
}

func (s *TaskService) findOwned(ownerID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ownerID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

func (s *TaskService) checkDescription(description string) error {
	if CountWords(description) > s.descriptionWordCap {
		return ErrDescriptionTooLong
	}
	return nil
}

// CountWords counts whitespace-separated words, matching the editor's
// word counter.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
