package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/timeutil"
)

// ErrInvalidDate is returned for dates that are not YYYY-MM-DD.
var ErrInvalidDate = errors.New("snapshot date must be YYYY-MM-DD")

// Store defines how archived slates are loaded.
type Store interface {
	LoadSlate(date string) (games.Slate, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSlate reads the archived slate for the given date (YYYY-MM-DD) from
// {basePath}/slates/{date}.json. A missing file wraps os.ErrNotExist.
func (s *FSStore) LoadSlate(date string) (games.Slate, error) {
	if s == nil {
		return games.Slate{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return games.Slate{}, errors.New("snapshot date required")
	}
	if !timeutil.IsDate(date) {
		return games.Slate{}, fmt.Errorf("%q: %w", date, ErrInvalidDate)
	}

	var payload games.Slate
	if err := s.decodeFile(SlateSnapshotPath(s.basePath, date), &payload); err != nil {
		return games.Slate{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// Dates lists archived slate dates recorded in the manifest.
func (s *FSStore) Dates() ([]string, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	m, err := readManifest(manifestPath(s.basePath), 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	return m.Slates.Dates, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
