package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrProviderUnavailable is returned when a decorator has no inner provider.
	ErrProviderUnavailable = errors.New("slate provider unavailable")
	// ErrSlateNotFound is returned when a source holds no slate.
	ErrSlateNotFound = errors.New("slate not found")
)

// RateLimitError captures rate limit responses from upstream slate sources.
type RateLimitError struct {
	Source     string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "slate source rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
