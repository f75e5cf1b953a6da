package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ReadDir loads every snapshot metadata record in dir, sorted by index.
// Files that do not follow the snapshot naming scheme are skipped.
func ReadDir(dir string) ([]Metadata, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read snapshot directory: %w", err)
	}

	var records []Metadata
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := ParseMetaName(entry.Name()); !ok {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read snapshot metadata: %w", err)
		}
		var meta Metadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Name(), err)
		}
		records = append(records, meta)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Index < records[j].Index })
	return records, nil
}
