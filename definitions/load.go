package definitions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a single tour definition from disk.
func LoadFile(path string) (*Tour, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("tour path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tour %s: %w", path, err)
	}

	t, err := parseTour(data)
	if err != nil {
		return nil, fmt.Errorf("parse tour %s: %w", path, err)
	}
	t.Source = path
	return t, nil
}

// LoadDir loads every .yaml/.yml tour from a directory, sorted by name. A
// missing directory is not an error; it simply yields no tours.
func LoadDir(dir string) ([]*Tour, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Tour{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Tour{}, nil
		}
		return nil, fmt.Errorf("read tours dir %s: %w", dir, err)
	}

	tours := make([]*Tour, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}

	sort.Slice(tours, func(i, j int) bool {
		return tours[i].Name < tours[j].Name
	})
	return tours, nil
}

func parseTour(data []byte) (*Tour, error) {
	var t Tour
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
