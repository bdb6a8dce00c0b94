// Package file reads a slate from a local YAML or JSON document.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
)

// Name identifies this source in logs and metrics.
const Name = "file"

// Provider loads the slate from disk on every fetch so edits are picked up by the poller.
type Provider struct {
	path     string
	timezone string
	now      func() time.Time
}

// New creates a file provider. tz decides the slate date when the document has none.
func New(path, tz string) *Provider {
	return &Provider{
		path:     path,
		timezone: tz,
		now:      time.Now,
	}
}

// FetchSlate reads and decodes the slate document.
func (p *Provider) FetchSlate(ctx context.Context) (games.Slate, error) {
	if err := ctx.Err(); err != nil {
		return games.Slate{}, err
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return games.Slate{}, fmt.Errorf("%s: %w", p.path, providers.ErrSlateNotFound)
		}
		return games.Slate{}, err
	}

	slate, err := Decode(p.path, data)
	if err != nil {
		return games.Slate{}, err
	}
	return providers.NormalizeSlate(slate, Name, providers.SlateDate(p.now(), p.timezone)), nil
}

// Decode parses a slate document, choosing JSON for .json files and YAML otherwise.
func Decode(path string, data []byte) (games.Slate, error) {
	var slate games.Slate
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &slate); err != nil {
			return games.Slate{}, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &slate); err != nil {
			return games.Slate{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return slate, nil
}
