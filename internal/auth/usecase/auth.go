package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"productivity-calendar/internal/auth"
	"productivity-calendar/internal/auth/repository"
	"productivity-calendar/internal/model"
)

// Register creates an account and signs the user in.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.TokenOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.TokenOutput{}, err
	}
	if utf8.RuneCountInString(input.Password) < auth.MinPasswordLength {
		return auth.TokenOutput{}, auth.ErrWeakPassword
	}

	existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register repo.GetOneUser: %v", err)
		return auth.TokenOutput{}, err
	}
	if existing.ID != "" {
		return auth.TokenOutput{}, auth.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.cost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register bcrypt: %v", err)
		return auth.TokenOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{Email: email, PasswordHash: string(hash)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register repo.CreateUser: %v", err)
		return auth.TokenOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Register: created user %s", u.ID)
	return uc.issue(ctx, u)
}

// Login checks the password and returns a fresh token.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.TokenOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login repo.GetOneUser: %v", err)
		return auth.TokenOutput{}, err
	}
	if u.ID == "" {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login bcrypt: %v", err)
		return auth.TokenOutput{}, err
	}

	return uc.issue(ctx, u)
}

// Me returns the account behind the current token.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me repo.GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (uc *implUseCase) issue(ctx context.Context, u model.User) (auth.TokenOutput, error) {
	token, expiresAt, err := uc.tokens.Generate(u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue tokens.Generate: %v", err)
		return auth.TokenOutput{}, err
	}
	return auth.TokenOutput{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", auth.ErrInvalidEmail
	}
	return s, nil
}
