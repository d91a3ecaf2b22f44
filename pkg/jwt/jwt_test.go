package jwt

import (
	"testing"
	"time"

	"hospital-management-api/config"

	"github.com/google/uuid"
)

func newService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("test-secret")
	sub := Subject{UserID: uuid.New(), Email: "pat@example.com", RoleID: 3}

	access, accessID, err := svc.GenerateAccessToken(sub)
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}
	refresh, refreshID, err := svc.GenerateRefreshToken(sub)
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}
	if accessID == refreshID {
		t.Fatal("access and refresh tokens share an id")
	}

	claims, err := svc.ValidateToken(access)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if claims.UserID != sub.UserID || claims.Email != sub.Email || claims.RoleID != sub.RoleID {
		t.Errorf("claims mismatch: %+v", claims)
	}
	if claims.TokenType != AccessToken || claims.TokenID != accessID {
		t.Errorf("unexpected token type/id: %s %s", claims.TokenType, claims.TokenID)
	}

	claims, err = svc.ValidateToken(refresh)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("expected refresh token type, got %s", claims.TokenType)
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, _, err := newService("one").GenerateAccessToken(Subject{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := newService("two").ValidateToken(token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := newService("secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken(Subject{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected expired token error")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := newService("secret").ValidateToken("not-a-jwt"); err == nil {
		t.Fatal("expected parse error")
	}
}
