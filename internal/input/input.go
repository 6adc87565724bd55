// Package input turns raw terminal input into per-frame game input.
package input

import (
	"time"

	"github.com/tomz197/survivors/internal/physics"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals only report repeats, so held movement is inferred.
const keyHoldDuration = 120 * time.Millisecond

// Key is a logical game key.
type Key int

const (
	KeyMoveUp Key = iota
	KeyMoveDown
	KeyMoveLeft
	KeyMoveRight
	KeyAimUp
	KeyAimDown
	KeyAimLeft
	KeyAimRight
	KeyFire
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyQuit
	KeyDebug
	KeyRestart
	keyCount
)

// Dir is a set of pressed directions.
type Dir struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is pressed.
func (d Dir) Any() bool { return d.Up || d.Down || d.Left || d.Right }

// Vector returns the unnormalized direction with +Y pointing down.
func (d Dir) Vector() physics.Vec2 {
	var v physics.Vec2
	if d.Up {
		v.Y--
	}
	if d.Down {
		v.Y++
	}
	if d.Left {
		v.X--
	}
	if d.Right {
		v.X++
	}
	return v
}

// Mouse is the pointer state. Col and Row are 0-based cells.
type Mouse struct {
	Col, Row   int
	Known      bool // a position has been reported at least once
	Left       bool // left button held
	Right      bool // right button held
	RightClick bool // right button went down this frame
}

// Input represents the current frame's input state.
type Input struct {
	Quit      bool
	Move      Dir
	Aim       Dir
	Fire      bool
	Enter     bool
	Escape    bool
	Backspace bool
	Debug     bool
	Restart   bool
	Number    int    // digit pressed this frame, -1 if none
	Text      []rune // printable characters typed this frame
	Mouse     Mouse
}

// Source yields one Input per frame.
type Source interface {
	Poll() Input
}

// held keys stay down for keyHoldDuration; the rest fire once per press.
var heldKeys = [keyCount]bool{
	KeyMoveUp: true, KeyMoveDown: true, KeyMoveLeft: true, KeyMoveRight: true,
	KeyAimUp: true, KeyAimDown: true, KeyAimLeft: true, KeyAimRight: true,
	KeyFire: true,
}

// Tracker accumulates key and mouse events between frames.
type Tracker struct {
	lastPress [keyCount]time.Time
	pressed   [keyCount]bool
	number    int
	text      []rune
	mouse     Mouse
	closed    bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{number: -1}
}

// Press records a key press at now.
func (t *Tracker) Press(k Key, now time.Time) {
	if k < 0 || k >= keyCount {
		return
	}
	t.lastPress[k] = now
	t.pressed[k] = true
}

// Rune records a typed character: it is both text and, where mapped, a key.
func (t *Tracker) Rune(r rune, now time.Time) {
	switch r {
	case 'w', 'W':
		t.Press(KeyMoveUp, now)
	case 's', 'S':
		t.Press(KeyMoveDown, now)
	case 'a', 'A':
		t.Press(KeyMoveLeft, now)
	case 'd', 'D':
		t.Press(KeyMoveRight, now)
	case 'i', 'I':
		t.Press(KeyAimUp, now)
	case 'k', 'K':
		t.Press(KeyAimDown, now)
	case 'j', 'J':
		t.Press(KeyAimLeft, now)
	case 'l', 'L':
		t.Press(KeyAimRight, now)
	case ' ':
		t.Press(KeyFire, now)
	case '`':
		t.Press(KeyDebug, now)
		return
	case 'r', 'R':
		t.Press(KeyRestart, now)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		t.number = int(r - '0')
	}
	if r >= ' ' && r != 0x7f {
		t.text = append(t.text, r)
	}
}

// MouseAt records the pointer position.
func (t *Tracker) MouseAt(col, row int) {
	t.mouse.Col, t.mouse.Row = col, row
	t.mouse.Known = true
}

// Button records a left or right button transition.
func (t *Tracker) Button(right, down bool) {
	if right {
		if down && !t.mouse.Right {
			t.mouse.RightClick = true
		}
		t.mouse.Right = down
		return
	}
	t.mouse.Left = down
}

// Close marks the input as ended; every later snapshot requests quit.
func (t *Tracker) Close() {
	t.closed = true
}

// Snapshot builds the frame input and clears the one-shot state.
func (t *Tracker) Snapshot(now time.Time) Input {
	down := func(k Key) bool {
		if heldKeys[k] {
			return now.Sub(t.lastPress[k]) < keyHoldDuration
		}
		return t.pressed[k]
	}

	in := Input{
		Quit:      t.closed || down(KeyQuit),
		Move:      Dir{Up: down(KeyMoveUp), Down: down(KeyMoveDown), Left: down(KeyMoveLeft), Right: down(KeyMoveRight)},
		Aim:       Dir{Up: down(KeyAimUp), Down: down(KeyAimDown), Left: down(KeyAimLeft), Right: down(KeyAimRight)},
		Fire:      down(KeyFire),
		Enter:     down(KeyEnter),
		Escape:    down(KeyEscape),
		Backspace: down(KeyBackspace),
		Debug:     down(KeyDebug),
		Restart:   down(KeyRestart),
		Number:    t.number,
		Text:      t.text,
		Mouse:     t.mouse,
	}

	t.pressed = [keyCount]bool{}
	t.number = -1
	t.text = nil
	t.mouse.RightClick = false
	return in
}
