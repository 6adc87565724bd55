// Package tcellui runs the game on a local terminal through tcell: it is
// both the drawing surface and the input source.
package tcellui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/survivors/internal/draw"
	"github.com/tomz197/survivors/internal/input"
)

// Screen adapts a tcell.Screen to draw.Surface and input.Source.
type Screen struct {
	screen  tcell.Screen
	events  chan tcell.Event
	tracker *input.Tracker
	now     func() time.Time
}

// New opens the terminal with mouse reporting enabled.
func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return open(screen)
}

func open(screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen:  screen,
		events:  make(chan tcell.Event, 128),
		tracker: input.NewTracker(),
		now:     time.Now,
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			s.events <- ev
		}
	}()
	return s, nil
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (int, int) { return s.screen.Size() }

// SetCell writes one cell.
func (s *Screen) SetCell(col, row int, ch rune, fg draw.Color) {
	s.screen.SetContent(col, row, ch, nil, styleFor(fg))
}

// Clear blanks the back buffer.
func (s *Screen) Clear() { s.screen.Clear() }

// Show pushes the back buffer to the terminal.
func (s *Screen) Show() error {
	s.screen.Show()
	return nil
}

// Poll drains pending tcell events and returns this frame's input.
func (s *Screen) Poll() input.Input {
	now := s.now()
drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.tracker.Close()
				break drain
			}
			s.handle(ev, now)
		default:
			break drain
		}
	}
	return s.tracker.Snapshot(now)
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

func (s *Screen) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			s.tracker.Rune(ev.Rune(), now)
		case tcell.KeyUp:
			s.tracker.Press(input.KeyAimUp, now)
		case tcell.KeyDown:
			s.tracker.Press(input.KeyAimDown, now)
		case tcell.KeyLeft:
			s.tracker.Press(input.KeyAimLeft, now)
		case tcell.KeyRight:
			s.tracker.Press(input.KeyAimRight, now)
		case tcell.KeyEnter:
			s.tracker.Press(input.KeyEnter, now)
		case tcell.KeyEscape:
			s.tracker.Press(input.KeyEscape, now)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			s.tracker.Press(input.KeyBackspace, now)
		case tcell.KeyCtrlC:
			s.tracker.Press(input.KeyQuit, now)
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		s.tracker.MouseAt(col, row)
		buttons := ev.Buttons()
		s.tracker.Button(false, buttons&tcell.ButtonPrimary != 0)
		s.tracker.Button(true, buttons&tcell.ButtonSecondary != 0)
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func styleFor(c draw.Color) tcell.Style {
	style := tcell.StyleDefault
	switch c {
	case draw.ColorNone:
		return style
	case draw.ColorGray:
		return style.Foreground(tcell.ColorGray)
	case draw.ColorRed:
		return style.Foreground(tcell.ColorRed)
	case draw.ColorGreen:
		return style.Foreground(tcell.ColorGreen)
	case draw.ColorYellow:
		return style.Foreground(tcell.ColorYellow)
	case draw.ColorBlue:
		return style.Foreground(tcell.ColorBlue)
	case draw.ColorCyan:
		return style.Foreground(tcell.ColorTeal)
	case draw.ColorMagenta:
		return style.Foreground(tcell.ColorPurple)
	default:
		return style.Foreground(tcell.ColorWhite)
	}
}

var (
	_ draw.Surface = (*Screen)(nil)
	_ input.Source = (*Screen)(nil)
)
