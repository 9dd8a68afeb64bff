package repository

import "github.com/Sheyman13214/todoright-api/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByPhone finds a user by phone number
	FindByPhone(phone string) (*models.User, error)
}

// TaskRepository defines the interface for task data access.
// Every operation that touches an existing task takes the owner's user ID
// and scopes its predicate on it; a task owned by someone else is
// indistinguishable from one that does not exist.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task owned by ownerID
	FindByID(ownerID, taskID uint64) (*models.Task, error)

	// ListByOwner returns all of a user's tasks ordered by creation time ascending
	ListByOwner(ownerID uint64) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete hard-deletes a task owned by ownerID and reports whether a row was removed
	Delete(ownerID, taskID uint64) (bool, error)
}
