package client

import (
	"time"

	"github.com/tomz197/survivors/internal/input"
	"github.com/tomz197/survivors/internal/physics"
)

// Phase is the client screen outside of what the session itself tracks.
type Phase int

const (
	PhaseNameEntry Phase = iota // Typing a name before the run
	PhasePlaying                // Session owns the screen (play, menu, death, victory)
	PhaseShutdown               // Server is shutting down
)

// toast is a short notification drawn over the game.
type toast struct {
	text      string
	remaining float64
}

// ClientState holds per-connection UI state. The game itself lives in the session.
type ClientState struct {
	Input         input.Input
	Phase         Phase
	NameBuf       []rune        // Name being typed
	MenuCursor    int           // Highlighted upgrade choice
	prevNav       input.Dir     // Menu navigation keys held last frame
	AimDir        physics.Vec2  // Last aim direction, reused by the fire key
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state
	toast         toast         // Lobby notification
	frameTimes    [30]float64   // Recent frame deltas for the debug overlay
	frameIdx      int
}

// NewClientState creates a new initialized client state.
func NewClientState(name string) *ClientState {
	return &ClientState{
		Phase:   PhaseNameEntry,
		NameBuf: []rune(name),
		AimDir:  physics.Vec2{X: 1},
		Running: true,
	}
}

// recordFrame stores dt for the FPS readout.
func (s *ClientState) recordFrame(dt float64) {
	s.frameTimes[s.frameIdx] = dt
	s.frameIdx = (s.frameIdx + 1) % len(s.frameTimes)
}

// fps averages the recorded frame deltas.
func (s *ClientState) fps() float64 {
	var sum float64
	n := 0
	for _, dt := range s.frameTimes {
		if dt > 0 {
			sum += dt
			n++
		}
	}
	if sum == 0 {
		return 0
	}
	return float64(n) / sum
}
