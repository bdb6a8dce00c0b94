package providers

import "context"

type noWaitKey struct{}

// WithoutWait marks ctx so the rate-limit and retry decorators fail fast with a
// *RateLimitError instead of waiting for the limiter or a Retry-After delay.
func WithoutWait(ctx context.Context) context.Context {
	return context.WithValue(ctx, noWaitKey{}, true)
}

// IsNoWait reports whether ctx was marked with WithoutWait.
func IsNoWait(ctx context.Context) bool {
	v, _ := ctx.Value(noWaitKey{}).(bool)
	return v
}
