package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFamily serializes a theme family to <dir>/<id>.json, creating
// the directory if needed. Returns the written path.
func WriteFamily(dir string, family Family) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create themes dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(family, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal theme %s: %w", family.ID, err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, family.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write theme %s: %w", path, err)
	}
	return path, nil
}
