package usecase

import (
	"context"
	"strings"

	"resume-screener/internal/config"
	"resume-screener/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Auth authenticates the single operator credential configured via env.
// The service has no user accounts of its own; the matching API just
// needs to be closed off from anonymous callers.
type Auth struct {
	cfg    config.AuthConfig
	tokens jwt.Service
}

func NewAuthUsecase(cfg config.AuthConfig, tokens jwt.Service) *Auth {
	return &Auth{cfg: cfg, tokens: tokens}
}

func (u *Auth) Login(_ context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", ErrInvalidInput
	}

	if u.cfg.OperatorEmail == "" || u.cfg.OperatorPassHash == "" {
		return "", ErrUnauthorized
	}
	if email != strings.ToLower(strings.TrimSpace(u.cfg.OperatorEmail)) {
		return "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.OperatorPassHash), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	token, err := u.tokens.GenerateAccessToken(email)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}
