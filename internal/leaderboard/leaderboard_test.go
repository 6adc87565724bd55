package leaderboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func fullBoard() *Board {
	b := NewBoard(nil)
	for i := 0; i < MaxEntries; i++ {
		b.Submit(fmt.Sprintf("p%d", i), 10+i)
	}
	return b
}

func TestSubmitKeepsBestScorePerName(t *testing.T) {
	b := NewBoard(nil)
	b.Submit("ana", 5)
	if b.Submit("ana", 3) {
		t.Fatal("lower score replaced a better one")
	}
	if !b.Submit("ana", 9) {
		t.Fatal("higher score not taken")
	}
	got := b.Entries()
	if len(got) != 1 || got[0].Kills != 9 {
		t.Fatalf("entries = %+v", got)
	}
}

func TestFullBoardEvictsOnlyForHigherScore(t *testing.T) {
	b := fullBoard()
	if b.Submit("late", 10) {
		t.Fatal("tie with the lowest entry evicted it")
	}
	if !b.Submit("late", 11) {
		t.Fatal("higher score rejected")
	}
	got := b.Entries()
	if len(got) != MaxEntries {
		t.Fatalf("board grew to %d", len(got))
	}
	for _, e := range got {
		if e.Name == "p0" {
			t.Fatal("lowest entry survived eviction")
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Kills > got[i-1].Kills {
			t.Fatalf("not sorted: %+v", got)
		}
	}
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	b := NewBoard(nil)
	b.Submit("first", 4)
	b.Submit("second", 4)
	b.Submit("top", 8)
	got := b.Entries()
	if got[0].Name != "top" || got[1].Name != "first" || got[2].Name != "second" {
		t.Fatalf("order = %+v", got)
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName(""); got != AnonymousName {
		t.Fatalf("empty name = %q", got)
	}
	long := strings.Repeat("x", 40)
	if got := NormalizeName(long); len(got) != MaxNameLen {
		t.Fatalf("len = %d, want %d", len(got), MaxNameLen)
	}
	// 30 ASCII bytes then a two-byte rune straddling the limit.
	split := strings.Repeat("a", 30) + "é"
	if got := NormalizeName(split); got != strings.Repeat("a", 30) {
		t.Fatalf("split rune kept: %q", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.dat")
	fs := NewFileStore(path)

	entries, err := fs.Load()
	if err != nil || len(entries) != 0 {
		t.Fatalf("missing file: %v %v", entries, err)
	}

	want := fullBoard().Entries()
	if err := fs.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != int64(MaxEntries*36) {
		t.Fatalf("file size = %d, want %d", info.Size(), MaxEntries*36)
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) || got[0] != want[0] || got[len(got)-1] != want[len(want)-1] {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}
}

func TestFileStoreIgnoresTruncatedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.dat")
	fs := NewFileStore(path)
	if err := fs.Save([]Entry{{Name: "ana", Kills: 3}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	f.Write([]byte{1, 2, 3})
	f.Close()

	got, err := fs.Load()
	if err != nil || len(got) != 1 || got[0].Name != "ana" {
		t.Fatalf("load = %+v, %v", got, err)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	js := NewJSONStore(filepath.Join(t.TempDir(), "scores.json"))
	want := []Entry{{Name: "ana", Kills: 12}, {Name: "bo", Kills: 7}}
	if err := js.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := js.Load()
	if err != nil || len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("load = %+v, %v", got, err)
	}
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	if s, err := OpenStore("json", filepath.Join(dir, "a.json"), ""); err != nil {
		t.Fatalf("json: %v", err)
	} else if _, ok := s.(*JSONStore); !ok {
		t.Fatalf("json kind gave %T", s)
	}
	if s, err := OpenStore("", "", ""); err != nil {
		t.Fatalf("default: %v", err)
	} else if _, ok := s.(*FileStore); !ok {
		t.Fatalf("default kind gave %T", s)
	}
	if _, err := OpenStore("postgres", "", ""); err == nil {
		t.Fatal("postgres without a dsn accepted")
	}
	if _, err := OpenStore("redis", "", ""); err == nil {
		t.Fatal("unknown store accepted")
	}
}

type failingStore struct{ saves int }

func (f *failingStore) Load() ([]Entry, error) { return nil, nil }
func (f *failingStore) Save([]Entry) error {
	f.saves++
	return errors.New("disk full")
}
func (f *failingStore) Close() error { return nil }

func TestRecorderWritesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.dat")
	rec, err := NewRecorder(NewFileStore(path), log.New(io.Discard))
	if err != nil {
		t.Fatalf("recorder: %v", err)
	}
	if err := rec.Record("ana", 4); err != nil {
		t.Fatalf("record: %v", err)
	}

	again, err := NewRecorder(NewFileStore(path), log.New(io.Discard))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	top := again.Top()
	if len(top) != 1 || top[0].Name != "ana" || top[0].Kills != 4 {
		t.Fatalf("reloaded %+v", top)
	}
}

func TestRecorderDropsScoreWhenSaveFails(t *testing.T) {
	store := &failingStore{}
	rec, err := NewRecorder(store, log.New(io.Discard))
	if err != nil {
		t.Fatalf("recorder: %v", err)
	}
	if err := rec.Record("ana", 4); err == nil {
		t.Fatal("save failure not reported")
	}
	if top := rec.Top(); len(top) != 0 {
		t.Fatalf("unsaved score kept on the board: %+v", top)
	}
	if err := rec.Record("ana", 2); err == nil || store.saves != 2 {
		t.Fatalf("retry after failure: %v, %d saves", err, store.saves)
	}
}
