package middleware

import (
	"productivity-calendar/pkg/jwt"
	"productivity-calendar/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager jwt.Manager
	limiter    *rateLimiter
}

// New builds the shared middleware set. uploadPerMin bounds RateLimit per user.
func New(l log.Logger, jwtManager jwt.Manager, uploadPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(uploadPerMin),
	}
}
