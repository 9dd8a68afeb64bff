package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sheyman13214/todoright-api/internal/dto"
	apierrors "github.com/Sheyman13214/todoright-api/internal/errors"
	"github.com/Sheyman13214/todoright-api/internal/middleware"
	"github.com/Sheyman13214/todoright-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Register creates a new user and returns it with a bearer token.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name           string `json:"name" binding:"required"`
		Phone          string `json:"phone" binding:"required"`
		Password       string `json:"password" binding:"required"`
		RecoveryAnswer string `json:"recovery_answer"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Password:       req.Password,
		RecoveryAnswer: req.RecoveryAnswer,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		log.Printf("failed to issue token for user %d: %v", user.ID, err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserDTO(*user),
		Token: token,
	})
}

// Login verifies credentials and returns the user with a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		log.Printf("failed to issue token for user %d: %v", user.ID, err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserDTO(*user),
		Token: token,
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrPhoneRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", h.authService.MinPasswordLength()))
	case errors.Is(err, services.ErrPhoneTaken):
		apierrors.BadRequestCode(c, apierrors.ErrCodeDuplicatePhone, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.BadRequestCode(c, apierrors.ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Printf("unexpected auth error: %v", err)
		apierrors.InternalError(c, "")
	}
}
