package service

import (
	"context"

	"github.com/D4sh12/e-commerce-api/internal/models"
)

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type LoginResult struct {
	Token string
	User  *models.User
}

type UserService interface {
	Signup(ctx context.Context, in SignupInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ActivateByToken(ctx context.Context, token string) error
	VerifyCode(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, resetCode, newPassword string) error
}
