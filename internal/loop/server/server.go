// Package server is the hub shared by every connected player. Each player
// runs an independent session; the hub only tracks who is connected, owns
// the leaderboard and broadcasts lobby-wide events.
package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/survivors/internal/leaderboard"
	"github.com/tomz197/survivors/internal/loop/config"
)

// Lobby is the interface clients use to talk to the hub.
type Lobby interface {
	RegisterClient(name string) *ClientHandle
	UnregisterClient(clientID int)
	Rename(clientID int, name string)
	Record(name string, kills int) error
	Top() []leaderboard.Entry
	Players() int
}

// Compile-time check that Server implements Lobby.
var _ Lobby = (*Server)(nil)

// ClientHandle represents a client's connection to the hub.
type ClientHandle struct {
	ID       int
	Name     string
	EventsCh chan ClientEvent // Events sent to the client
}

// ClientEvent represents an event sent from the hub to a client.
type ClientEvent struct {
	Type  ClientEventType
	Name  string // High score holder
	Kills int    // High score value
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventHighScore ClientEventType = iota
	EventServerShutdown
)

// Server manages connected clients and the shared leaderboard.
type Server struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	recordMu     sync.Mutex            // Serializes Record so the before/after comparison is exact
	scores       *leaderboard.Recorder // nil disables the leaderboard
	log          *log.Logger
}

// NewServer creates a hub. scores may be nil.
func NewServer(scores *leaderboard.Recorder, logger *log.Logger) *Server {
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		scores:       scores,
		log:          logger,
	}
}

// RegisterClient registers a new client with the given name and returns its handle.
func (s *Server) RegisterClient(name string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Name:     name,
		EventsCh: make(chan ClientEvent, config.EventBuffer),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	s.log.Info("client registered", "id", handle.ID, "name", name, "players", len(s.clients))
	return handle
}

// UnregisterClient removes a client. Unknown ids are ignored.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[clientID]; !ok {
		return
	}
	delete(s.clients, clientID)
	s.log.Info("client left", "id", clientID, "players", len(s.clients))
}

// Rename updates the display name of a client.
func (s *Server) Rename(clientID int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.clients[clientID]; ok {
		h.Name = name
	}
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Record submits a victory to the leaderboard. When it enters the board,
// every other client is told about it.
func (s *Server) Record(name string, kills int) error {
	if s.scores == nil {
		return nil
	}
	s.recordMu.Lock()
	defer s.recordMu.Unlock()

	before := s.scores.Top()
	err := s.scores.Record(name, kills)
	if entered(before, s.scores.Top(), leaderboard.NormalizeName(name), kills) {
		s.broadcast(ClientEvent{Type: EventHighScore, Name: name, Kills: kills})
	}
	return err
}

// Top returns the leaderboard, best first.
func (s *Server) Top() []leaderboard.Entry {
	if s.scores == nil {
		return nil
	}
	return s.scores.Top()
}

// Shutdown notifies all connected clients about the shutdown and waits for
// them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.broadcast(ClientEvent{Type: EventServerShutdown})

	deadline := time.After(timeout)
	ticker := time.NewTicker(config.ShutdownPollGap)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			s.log.Warn("shutdown timeout, clients still connected", "players", s.Players())
			return
		case <-ticker.C:
			if s.Players() == 0 {
				return
			}
		}
	}
}

// broadcast sends ev to every client without blocking on slow readers.
func (s *Server) broadcast(ev ClientEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ev:
		default:
		}
	}
}

// entered reports whether name now holds kills on the board and did not before.
func entered(before, after []leaderboard.Entry, name string, kills int) bool {
	has := func(entries []leaderboard.Entry) bool {
		for _, e := range entries {
			if e.Name == name && e.Kills == kills {
				return true
			}
		}
		return false
	}
	return !has(before) && has(after)
}
