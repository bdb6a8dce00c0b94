package snapshots

import (
	"fmt"
	"path/filepath"
)

// SlateSnapshotPath builds the path to a slate snapshot for a given date.
func SlateSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, string(kindSlates), fmt.Sprintf("%s.json", date))
}
