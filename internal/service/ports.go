package service

import (
	"context"
	"time"

	"github.com/D4sh12/e-commerce-api/internal/producer"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type Claims struct {
	UserID  uint
	IsAdmin bool
	Exp     time.Time
}

type TokenProvider interface {
	SignAccess(ctx context.Context, sub uint, isAdmin bool, ttl time.Duration) (token string, exp time.Time, err error)
	SignActivation(ctx context.Context, sub uint, ttl time.Duration) (token string, exp time.Time, err error)
	ParseAndValidateAccess(ctx context.Context, token string) (*Claims, error)
	ParseAndValidateActivation(ctx context.Context, token string) (*Claims, error)
}

type EmailProducer interface {
	SendEmail(ctx context.Context, key string, msg producer.EmailMessage) error
}
