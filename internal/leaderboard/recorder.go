package leaderboard

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Recorder serializes victories from any number of sessions into one board
// and writes it through to a Store after every change.
type Recorder struct {
	mu    sync.Mutex
	store Store
	board *Board
	log   *log.Logger
}

// NewRecorder loads the current board from store.
func NewRecorder(store Store, logger *log.Logger) (*Recorder, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	r := &Recorder{store: store, board: NewBoard(entries), log: logger}
	logger.Debug("leaderboard loaded", "entries", r.board.Len())
	return r, nil
}

// Record submits a victory. The board only changes once the store has
// accepted it; on failure the score is dropped and the error returned.
func (r *Recorder) Record(name string, kills int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := NewBoard(r.board.Entries())
	if !next.Submit(name, kills) {
		r.log.Debug("score below leaderboard", "name", name, "kills", kills)
		return nil
	}
	if err := r.store.Save(next.Entries()); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	r.board = next
	r.log.Info("leaderboard updated", "name", name, "kills", kills)
	return nil
}

// Top returns the current board, best first.
func (r *Recorder) Top() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board.Entries()
}

// Close closes the underlying store.
func (r *Recorder) Close() error {
	return r.store.Close()
}
