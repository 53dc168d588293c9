package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/D4sh12/e-commerce-api/internal/models"
	"github.com/D4sh12/e-commerce-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRoutes_Signup(t *testing.T) {
	users := &mockUserService{}
	users.SignupFunc = func(ctx context.Context, in service.SignupInput) (*models.User, error) {
		assert.Equal(t, "john@example.com", in.Email)
		return &models.User{ID: 1, Email: in.Email}, nil
	}
	r := newTestRouter(nil, users, nil)

	w, env := doRequest(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"first_name": "John",
		"last_name":  "Doe",
		"email":      "john@example.com",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "User successfully created. Please check your email to continue.", env.Message)
}

func TestAuthRoutes_Signup_Conflict(t *testing.T) {
	users := &mockUserService{}
	users.SignupFunc = func(ctx context.Context, in service.SignupInput) (*models.User, error) {
		return nil, service.ErrEmailExists
	}
	r := newTestRouter(nil, users, nil)

	w, env := doRequest(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"first_name": "John",
		"last_name":  "Doe",
		"email":      "john@example.com",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User with this email already exists", env.Message)
}

func TestAuthRoutes_Signup_ValidationMessage(t *testing.T) {
	users := &mockUserService{}
	users.SignupFunc = func(ctx context.Context, in service.SignupInput) (*models.User, error) {
		return nil, service.NewValidationError("The email provided is invalid")
	}
	r := newTestRouter(nil, users, nil)

	w, env := doRequest(t, r, http.MethodPost, "/auth/signup", "", gin.H{"email": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The email provided is invalid", env.Message)
}

func TestAuthRoutes_Login(t *testing.T) {
	users := &mockUserService{}
	users.LoginFunc = func(ctx context.Context, email, password string) (*service.LoginResult, error) {
		return &service.LoginResult{
			Token: "access_token",
			User:  &models.User{ID: 1, FirstName: "John", Email: email},
		}, nil
	}
	r := newTestRouter(nil, users, nil)

	w, env := doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "john@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User successfully logged in", env.Message)
	require.Contains(t, string(env.Data), "access_token")
	assert.NotContains(t, string(env.Data), "password")
}

func TestAuthRoutes_Login_Failures(t *testing.T) {
	users := &mockUserService{}
	loginErr := service.ErrInvalidCredentials
	users.LoginFunc = func(ctx context.Context, email, password string) (*service.LoginResult, error) {
		return nil, loginErr
	}
	r := newTestRouter(nil, users, nil)

	body := gin.H{"email": "john@example.com", "password": "password123"}

	w, env := doRequest(t, r, http.MethodPost, "/auth/login", "", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Incorrect username or password", env.Message)

	loginErr = service.ErrNotActivated
	w, env = doRequest(t, r, http.MethodPost, "/auth/login", "", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Your account has not yet been verified", env.Message)
}

func TestAuthRoutes_Activate(t *testing.T) {
	r := newTestRouter(nil, &mockUserService{}, nil)

	w, env := doRequest(t, r, http.MethodGet, "/auth/activate/sometoken", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User successfully activated", env.Message)
}
