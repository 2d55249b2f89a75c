package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"productivity-calendar/internal/auth/repository"
	"productivity-calendar/pkg/jwt"
	pkgLog "productivity-calendar/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	tokens jwt.Manager
	cost   int
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, tokens jwt.Manager) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
}
