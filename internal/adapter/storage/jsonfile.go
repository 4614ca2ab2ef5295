package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"namematch/internal/port"
)

// namesRecord is the persisted corpus format: a single object with one
// field holding the ordered name list.
type namesRecord struct {
	Names []string `json:"names"`
}

// JSONFileSource persists the corpus as an indented JSON file.
type JSONFileSource struct {
	path string
}

// NewJSONFileSource creates a source backed by the file at path. The file
// does not need to exist yet.
func NewJSONFileSource(path string) *JSONFileSource {
	return &JSONFileSource{path: path}
}

func (s *JSONFileSource) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", s.path, port.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var record namesRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", s.path, err)
	}

	return record.Names, nil
}

func (s *JSONFileSource) Save(names []string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create corpus directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(namesRecord{Names: names}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write corpus file: %w", err)
	}
	return nil
}

func (s *JSONFileSource) Close() error {
	return nil
}
