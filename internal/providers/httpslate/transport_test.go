package httpslate

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeURLTrimsTrailingSlash(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"https://api.example.com/slate/", "https://api.example.com/slate"},
		{" https://api.example.com/slate ", "https://api.example.com/slate"},
	}

	for _, c := range cases {
		if got := normalizeURL(c.input); got != c.expected {
			t.Fatalf("expected %q, got %q", c.expected, got)
		}
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	if client := resolveHTTPClient(custom); client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{name: "empty", raw: "", want: 0},
		{name: "seconds", raw: "30", want: 30 * time.Second},
		{name: "negative", raw: "-4", want: 0},
		{name: "http_date", raw: now.Add(90 * time.Second).Format(http.TimeFormat), want: 90 * time.Second},
		{name: "past_date", raw: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", raw: "soon", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRetryAfter(tt.raw, now); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
