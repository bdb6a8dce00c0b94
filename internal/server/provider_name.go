package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-projection-service/internal/providers"
)

// normalizeSourceName lower-cases the configured slate source. When none is configured the
// provider's package name is used, so an injected *fixture.Provider reports as "fixture".
func normalizeSourceName(raw string, provider providers.SlateProvider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider == nil {
		return "provider"
	}
	typeName := strings.TrimLeft(fmt.Sprintf("%T", provider), "*")
	if pkg, _, ok := strings.Cut(typeName, "."); ok && pkg != "" {
		return strings.ToLower(pkg)
	}
	return strings.ToLower(typeName)
}
