package usecase

import "errors"

var (
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")

	ErrCVNotFound  = errors.New("CV not found")
	ErrJobNotFound = errors.New("Job not found")
)
