package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sheyman13214/todoright-api/internal/models"
	"github.com/Sheyman13214/todoright-api/internal/repository"
)

var (
	ErrPhoneTaken           = errors.New("phone number already registered")
	ErrPhoneRequired        = errors.New("phone number is required")
	ErrNameRequired         = errors.New("name is required")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrInvalidCredentials   = errors.New("invalid phone number or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo          repository.UserRepository
	minPasswordLength int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, minPasswordLength int) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		minPasswordLength: minPasswordLength,
	}
}

// MinPasswordLength returns the configured password policy value.
func (s *AuthService) MinPasswordLength() int {
	return s.minPasswordLength
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Phone    string
	Password string
	// Optional legacy recovery answer, stored hashed and never read back.
	RecoveryAnswer string
}

// Register creates a new user with a salted password hash.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	if len(input.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByPhone(phone); err == nil {
		return nil, ErrPhoneTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hashedPassword),
	}

	if answer := strings.TrimSpace(input.RecoveryAnswer); answer != "" {
		hashedAnswer, err := bcrypt.GenerateFromPassword([]byte(answer), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.RecoveryAnswerHash = string(hashedAnswer)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Phone    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
// An unknown phone and a wrong password fail with the same error so the
// response never reveals whether an account exists.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByPhone(strings.TrimSpace(input.Phone))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
