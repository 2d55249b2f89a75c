package model

import "context"

// Scope identifies the owner every use-case call acts on behalf of.
type Scope struct {
	UserID string
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the Scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok && sc.UserID != ""
}
