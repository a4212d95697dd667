package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StdoutPath selects stdout instead of a file.
const StdoutPath = "-"

// Write marshals the dataset and writes it to path. Files are written
// through a temp file and renamed into place so readers never observe a
// partial dataset. A path of "-" or "" writes to stdout.
func Write(ds Dataset, path string) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == StdoutPath {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("publish dataset: %w", err)
	}
	return nil
}
