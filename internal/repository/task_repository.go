package repository

import (
	"gorm.io/gorm"

	"github.com/Sheyman13214/todoright-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task owned by ownerID
func (r *GormTaskRepository) FindByID(ownerID, taskID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", taskID, ownerID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner returns all of a user's tasks ordered by creation time ascending.
// The secondary id ordering keeps the list stable when timestamps collide.
func (r *GormTaskRepository) ListByOwner(ownerID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("user_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists changes to a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete hard-deletes a task owned by ownerID
func (r *GormTaskRepository) Delete(ownerID, taskID uint64) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", taskID, ownerID).Delete(&models.Task{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
