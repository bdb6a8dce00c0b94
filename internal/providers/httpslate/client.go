// Package httpslate fetches the slate from a remote JSON endpoint.
package httpslate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
)

// ErrNoURL is returned when the client has no endpoint configured.
var ErrNoURL = errors.New("httpslate: slate url not configured")

// Config controls how the client reaches the slate endpoint.
type Config struct {
	URL        string
	APIKey     string
	Timezone   string
	HTTPClient *http.Client
}

// Client fetches a slate document and maps it to domain models.
type Client struct {
	url        string
	apiKey     string
	timezone   string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        normalizeURL(cfg.URL),
		apiKey:     cfg.APIKey,
		timezone:   cfg.Timezone,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchSlate retrieves the current slate. HTTP 429 maps to *providers.RateLimitError
// and 404 to providers.ErrSlateNotFound.
func (c *Client) FetchSlate(ctx context.Context) (games.Slate, error) {
	if c.url == "" {
		return games.Slate{}, ErrNoURL
	}
	req, err := c.buildRequest(ctx)
	if err != nil {
		return games.Slate{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return games.Slate{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return games.Slate{}, &providers.RateLimitError{
			Source:     Name,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get(headerRetryAfter), c.now()),
			Remaining:  resp.Header.Get(headerRemaining),
			Message:    "httpslate: rate limited",
		}
	case http.StatusNotFound:
		return games.Slate{}, fmt.Errorf("httpslate: %w", providers.ErrSlateNotFound)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return games.Slate{}, fmt.Errorf("httpslate: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload games.Slate
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return games.Slate{}, fmt.Errorf("httpslate: decode: %w", err)
	}
	return providers.NormalizeSlate(payload, Name, providers.SlateDate(c.now(), c.timezone)), nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
