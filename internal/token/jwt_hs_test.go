package token

import (
	"context"
	"testing"
	"time"
)

func TestHSProvider_AccessRoundTrip(t *testing.T) {
	p := NewHSProvider("secret", "shop-api", "shop-clients")
	ctx := context.Background()

	signed, exp, err := p.SignAccess(ctx, 42, true, time.Hour)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("exp in the past: %v", exp)
	}

	claims, err := p.ParseAndValidateAccess(ctx, signed)
	if err != nil {
		t.Fatalf("ParseAndValidateAccess: %v", err)
	}
	if claims.UserID != 42 || !claims.IsAdmin {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	// токен активации не проходит как access и наоборот
	if _, err := p.ParseAndValidateActivation(ctx, signed); err == nil {
		t.Fatal("expected scope error for access token, got nil")
	}

	activation, _, err := p.SignActivation(ctx, 42, time.Hour)
	if err != nil {
		t.Fatalf("SignActivation: %v", err)
	}
	if _, err := p.ParseAndValidateAccess(ctx, activation); err == nil {
		t.Fatal("expected scope error for activation token, got nil")
	}
	if got, err := p.ParseAndValidateActivation(ctx, activation); err != nil || got.UserID != 42 {
		t.Fatalf("ParseAndValidateActivation: %v %v", got, err)
	}
}

func TestHSProvider_RejectsBadTokens(t *testing.T) {
	p := NewHSProvider("secret", "shop-api", "shop-clients")
	ctx := context.Background()

	if _, err := p.ParseAndValidateAccess(ctx, "not-a-jwt"); err == nil {
		t.Fatal("expected parse error, got nil")
	}

	// подпись другим секретом
	other := NewHSProvider("other-secret", "shop-api", "shop-clients")
	signed, _, err := other.SignAccess(ctx, 1, false, time.Hour)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}
	if _, err := p.ParseAndValidateAccess(ctx, signed); err == nil {
		t.Fatal("expected signature error, got nil")
	}

	// истёкший токен
	expired := NewHSProvider("secret", "shop-api", "shop-clients")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	signed, _, err = expired.SignAccess(ctx, 1, false, time.Hour)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}
	if _, err := p.ParseAndValidateAccess(ctx, signed); err == nil {
		t.Fatal("expected expiry error, got nil")
	}
}
