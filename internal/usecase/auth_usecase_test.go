package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-screener/internal/config"
	"resume-screener/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

func authConfigForTest(t *testing.T, password string) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return config.AuthConfig{
		JWTAccessSecret:  "test-secret",
		JWTAccessExpiry:  time.Minute,
		OperatorEmail:    "ops@example.com",
		OperatorPassHash: string(hash),
	}
}

func TestLoginSuccess(t *testing.T) {
	cfg := authConfigForTest(t, "hunter2")
	tokens := jwt.NewHMACService(cfg.JWTAccessSecret, cfg.JWTAccessExpiry)
	uc := NewAuthUsecase(cfg, tokens)

	access, err := uc.Login(context.Background(), "Ops@Example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if access == "" {
		t.Fatalf("empty access token")
	}

	claims, err := tokens.ValidateToken(access)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "ops@example.com" {
		t.Fatalf("subject = %q, want normalized email", claims.Subject)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	cfg := authConfigForTest(t, "hunter2")
	uc := NewAuthUsecase(cfg, jwt.NewHMACService(cfg.JWTAccessSecret, cfg.JWTAccessExpiry))

	if _, err := uc.Login(context.Background(), "ops@example.com", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong password err = %v, want ErrUnauthorized", err)
	}
	if _, err := uc.Login(context.Background(), "other@example.com", "hunter2"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong email err = %v, want ErrUnauthorized", err)
	}
	if _, err := uc.Login(context.Background(), "", "hunter2"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank email err = %v, want ErrInvalidInput", err)
	}
}

func TestLoginWithoutOperatorConfigured(t *testing.T) {
	cfg := config.AuthConfig{JWTAccessSecret: "s", JWTAccessExpiry: time.Minute}
	uc := NewAuthUsecase(cfg, jwt.NewHMACService(cfg.JWTAccessSecret, cfg.JWTAccessExpiry))

	if _, err := uc.Login(context.Background(), "ops@example.com", "pw"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
