package token

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/D4sh12/e-commerce-api/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

const (
	scopeAccess   = "access"
	scopeActivate = "activate"
)

type HSProvider struct {
	accessSecret []byte
	issuer       string
	audience     string
	now          func() time.Time
}

func NewHSProvider(accessSecret, issuer, audience string) *HSProvider {
	return &HSProvider{
		accessSecret: []byte(accessSecret),
		issuer:       issuer,
		audience:     audience,
		now:          time.Now,
	}
}

type customClaims struct {
	Scope   string `json:"scope"`
	IsAdmin bool   `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

func (p *HSProvider) sign(sub uint, scope string, isAdmin bool, ttl time.Duration) (string, time.Time, error) {
	now := p.now()
	exp := now.Add(ttl)

	claims := customClaims{
		Scope:   scope,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   strconv.FormatUint(uint64(sub), 10),
			Audience:  []string{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(p.accessSecret)
	return signed, exp, err
}

func (p *HSProvider) SignAccess(ctx context.Context, sub uint, isAdmin bool, ttl time.Duration) (string, time.Time, error) {
	return p.sign(sub, scopeAccess, isAdmin, ttl)
}

// SignActivation выдаёт токен для ссылки активации аккаунта из письма.
func (p *HSProvider) SignActivation(ctx context.Context, sub uint, ttl time.Duration) (string, time.Time, error) {
	return p.sign(sub, scopeActivate, false, ttl)
}

func (p *HSProvider) parse(token, scope string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &customClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return p.accessSecret, nil
	}, jwt.WithAudience(p.audience), jwt.WithIssuer(p.issuer))
	if err != nil {
		return nil, err
	}
	cc, ok := parsed.Claims.(*customClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if cc.Scope != scope {
		return nil, errors.New("unexpected token scope")
	}
	uid, err := strconv.ParseUint(cc.Subject, 10, 64)
	if err != nil {
		return nil, err
	}
	return &service.Claims{UserID: uint(uid), IsAdmin: cc.IsAdmin, Exp: cc.ExpiresAt.Time}, nil
}

func (p *HSProvider) ParseAndValidateAccess(ctx context.Context, token string) (*service.Claims, error) {
	return p.parse(token, scopeAccess)
}

func (p *HSProvider) ParseAndValidateActivation(ctx context.Context, token string) (*service.Claims, error) {
	return p.parse(token, scopeActivate)
}
