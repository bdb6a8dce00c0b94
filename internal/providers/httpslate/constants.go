package httpslate

import "time"

// Name identifies this source in logs and metrics.
const Name = "http"

const (
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
	headerRetryAfter   = "Retry-After"
	headerRemaining    = "X-RateLimit-Remaining"
)
