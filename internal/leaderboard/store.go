package leaderboard

import (
	"fmt"
	"strings"
)

// Store persists leaderboard entries.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
	Close() error
}

// Store kinds accepted by OpenStore.
const (
	KindFile     = "file"
	KindJSON     = "json"
	KindPostgres = "postgres"
)

// Default file locations.
const (
	DefaultFilePath = "scores.dat"
	DefaultJSONPath = "scores.json"
)

// OpenStore opens the store named by kind. path is used by the file-backed
// stores (empty selects the default), dsn by postgres.
func OpenStore(kind, path, dsn string) (Store, error) {
	switch strings.ToLower(kind) {
	case "", KindFile:
		if path == "" {
			path = DefaultFilePath
		}
		return NewFileStore(path), nil
	case KindJSON:
		if path == "" {
			path = DefaultJSONPath
		}
		return NewJSONStore(path), nil
	case KindPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("postgres leaderboard needs a connection string")
		}
		return NewPostgresStore(dsn)
	default:
		return nil, fmt.Errorf("unknown leaderboard store %q", kind)
	}
}
