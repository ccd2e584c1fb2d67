package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileResult pairs a theme file with its validation outcome.
type FileResult struct {
	Path   string
	Result Result
}

// Dir validates every <prefix>-*.json file in a themes directory.
// A missing directory or an empty match set is an error, distinct from
// validating zero files successfully.
func Dir(dir, prefix string) ([]FileResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("themes directory not found: %s", dir)
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, prefix+"-") && strings.HasSuffix(name, ".json") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s-*.json theme files found in %s", prefix, dir)
	}

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, FileResult{Path: path, Result: File(path)})
	}
	return results, nil
}
