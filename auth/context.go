package auth

import "context"

type contextKey struct{}

var claimsKey contextKey

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom returns the verified claims stored by the auth middleware, or
// nil on unauthenticated requests.
func ClaimsFrom(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}
