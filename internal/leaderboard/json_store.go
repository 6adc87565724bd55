package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// jsonData is the document written by JSONStore.
type jsonData struct {
	Entries []Entry `json:"entries"`
}

// JSONStore keeps the board in a human-readable JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the board; a missing file is an empty board.
func (js *JSONStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(js.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	var doc jsonData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	return doc.Entries, nil
}

// Save rewrites the file.
func (js *JSONStore) Save(entries []Entry) error {
	data, err := json.MarshalIndent(jsonData{Entries: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	return writeAtomic(js.path, data)
}

// Close is a no-op.
func (js *JSONStore) Close() error { return nil }
