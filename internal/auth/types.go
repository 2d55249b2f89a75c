package auth

import (
	"time"

	"productivity-calendar/internal/model"
)

const MinPasswordLength = 8

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenOutput struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
}
