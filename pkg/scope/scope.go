package scope

import (
	"context"

	"search-srv/internal/model"
)

type ctxKey struct{}

// SetScopeToContext attaches the caller scope to the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// GetScopeFromContext returns the caller scope from the context, or the
// zero (anonymous) scope when none was attached.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(ctxKey{}).(model.Scope); ok {
		return sc
	}
	return model.Scope{}
}
