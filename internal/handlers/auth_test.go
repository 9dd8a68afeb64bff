package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sheyman13214/todoright-api/internal/constants"
	"github.com/Sheyman13214/todoright-api/internal/database"
	"github.com/Sheyman13214/todoright-api/internal/dto"
	apierrors "github.com/Sheyman13214/todoright-api/internal/errors"
	"github.com/Sheyman13214/todoright-api/internal/middleware"
	"github.com/Sheyman13214/todoright-api/internal/models"
	"github.com/Sheyman13214/todoright-api/internal/repository"
	"github.com/Sheyman13214/todoright-api/internal/services"
)

type authTestEnv struct {
	db           *gorm.DB
	handler      *AuthHandler
	authService  *services.AuthService
	tokenService *services.TokenService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, constants.DefaultMinPasswordLength)
	tokenService := services.NewTokenService([]byte("test-secret"), time.Hour)
	handler := NewAuthHandler(authService, tokenService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:           db,
		handler:      handler,
		authService:  authService,
		tokenService: tokenService,
	}
}

func authRouter(env authTestEnv) *gin.Engine {
	r := gin.New()
	r.POST("/users", env.handler.Register)
	r.POST("/users/login", env.handler.Login)
	r.GET("/users/me", middleware.RequireAuth(env.tokenService), env.handler.Me)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	w := postJSON(t, r, "/users", map[string]string{
		"name":     "Alice",
		"phone":    "07012345678",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Alice", response.User.Name)
	require.Equal(t, "07012345678", response.User.Phone)
	require.NotEmpty(t, response.Token)

	// The token is immediately usable.
	userID, err := env.tokenService.Verify(response.Token)
	require.NoError(t, err)
	require.Equal(t, response.User.ID, userID)
}

func TestAuthHandler_RegisterDuplicatePhone(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	w := postJSON(t, r, "/users", map[string]string{
		"name": "Alice", "phone": "07012345678", "password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/users", map[string]string{
		"name": "Bob", "phone": "07012345678", "password": "alsosecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeDuplicatePhone, apiErr.Code)
}

func TestAuthHandler_RegisterShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	w := postJSON(t, r, "/users", map[string]string{
		"name": "Alice", "phone": "07012345678", "password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeValidation, apiErr.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	user, err := env.authService.Register(services.RegisterInput{
		Name:     "Alice",
		Phone:    "07012345678",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := postJSON(t, r, "/users/login", map[string]string{
		"phone":    "07012345678",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.User.ID)
	require.NotEmpty(t, response.Token)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	_, err := env.authService.Register(services.RegisterInput{
		Name:     "Alice",
		Phone:    "07012345678",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Wrong password and unknown phone must be indistinguishable.
	wrongPassword := postJSON(t, r, "/users/login", map[string]string{
		"phone": "07012345678", "password": "wrong",
	})
	unknownPhone := postJSON(t, r, "/users/login", map[string]string{
		"phone": "00000000000", "password": "supersecret",
	})

	require.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	require.Equal(t, http.StatusBadRequest, unknownPhone.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownPhone.Body.String())
}

func TestAuthHandler_Me(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	user, err := env.authService.Register(services.RegisterInput{
		Name:     "Alice",
		Phone:    "07012345678",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokenService.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(constants.AuthorizationHeader, constants.BearerPrefix+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "Alice", response.Name)
}

func TestAuthHandler_MeWithoutToken(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
