package leaderboard

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// record is the on-disk layout: a NUL-padded name followed by a
// little-endian kill count.
type record struct {
	Name  [MaxNameLen + 1]byte
	Kills int32
}

// FileStore keeps the board as fixed-size binary records.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the
// first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads up to MaxEntries records. A missing file is an empty board and
// a truncated trailing record is ignored.
func (fs *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	r := bytes.NewReader(data)
	var entries []Entry
	for len(entries) < MaxEntries {
		var rec record
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("decode leaderboard: %w", err)
		}
		name, _, _ := bytes.Cut(rec.Name[:], []byte{0})
		entries = append(entries, Entry{Name: string(name), Kills: int(rec.Kills)})
	}
	return entries, nil
}

// Save rewrites the whole file through a temporary sibling.
func (fs *FileStore) Save(entries []Entry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		var rec record
		copy(rec.Name[:MaxNameLen], NormalizeName(e.Name))
		rec.Kills = int32(e.Kills)
		if err := binary.Write(&buf, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("encode leaderboard: %w", err)
		}
	}
	return writeAtomic(fs.path, buf.Bytes())
}

// Close is a no-op.
func (fs *FileStore) Close() error { return nil }

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}
