// Package leaderboard keeps the top victories by kill count and persists them.
package leaderboard

import (
	"slices"
	"unicode/utf8"
)

const (
	// MaxEntries is the number of scores kept.
	MaxEntries = 10
	// MaxNameLen is the longest stored name in bytes.
	MaxNameLen = 31
	// AnonymousName replaces an empty player name.
	AnonymousName = "anonymous"
)

// Entry is one leaderboard line.
type Entry struct {
	Name  string `json:"name"`
	Kills int    `json:"kills"`
}

// Board is an in-memory leaderboard sorted by kills, highest first. Ties keep
// insertion order.
type Board struct {
	entries []Entry
}

// NewBoard builds a board from previously stored entries, normalizing names,
// order and size.
func NewBoard(entries []Entry) *Board {
	b := &Board{entries: make([]Entry, 0, MaxEntries)}
	for _, e := range entries {
		if len(b.entries) == MaxEntries {
			break
		}
		e.Name = NormalizeName(e.Name)
		b.entries = append(b.entries, e)
	}
	b.sort()
	return b
}

// Submit records a victory. An existing name keeps its best score; a full
// board evicts its lowest entry only for a strictly higher score. Reports
// whether the board changed.
func (b *Board) Submit(name string, kills int) bool {
	name = NormalizeName(name)

	if i := b.index(name); i >= 0 {
		if kills <= b.entries[i].Kills {
			return false
		}
		b.entries[i].Kills = kills
		b.sort()
		return true
	}

	if len(b.entries) < MaxEntries {
		b.entries = append(b.entries, Entry{Name: name, Kills: kills})
		b.sort()
		return true
	}

	low := 0
	for i := 1; i < len(b.entries); i++ {
		if b.entries[i].Kills < b.entries[low].Kills {
			low = i
		}
	}
	if kills <= b.entries[low].Kills {
		return false
	}
	b.entries = slices.Delete(b.entries, low, low+1)
	b.entries = append(b.entries, Entry{Name: name, Kills: kills})
	b.sort()
	return true
}

// Entries returns a copy of the board, best first.
func (b *Board) Entries() []Entry {
	return slices.Clone(b.entries)
}

// Len returns the number of entries.
func (b *Board) Len() int {
	return len(b.entries)
}

func (b *Board) index(name string) int {
	return slices.IndexFunc(b.entries, func(e Entry) bool { return e.Name == name })
}

func (b *Board) sort() {
	slices.SortStableFunc(b.entries, func(x, y Entry) int { return y.Kills - x.Kills })
}

// NormalizeName cuts name to MaxNameLen bytes without splitting a rune and
// substitutes AnonymousName for an empty name.
func NormalizeName(name string) string {
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
		for len(name) > 0 && !utf8.ValidString(name) {
			name = name[:len(name)-1]
		}
	}
	if name == "" {
		return AnonymousName
	}
	return name
}
