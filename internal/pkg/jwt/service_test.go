package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)

	tok, err := svc.GenerateAccessToken("ops@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "ops@example.com" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if !claims.ExpiredAt.After(claims.IssuedAt) {
		t.Fatalf("expiry %v not after issue %v", claims.ExpiredAt, claims.IssuedAt)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret-a", time.Minute).GenerateAccessToken("x")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Minute).ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewHMACService("secret", time.Millisecond)

	tok, err := svc.GenerateAccessToken("x")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)

	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestGenerateWithoutSecret(t *testing.T) {
	svc := NewHMACService("", time.Minute)

	if _, err := svc.GenerateAccessToken("x"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
