package tcellui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/survivors/internal/draw"
)

func newSim(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := open(sim)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sim.SetSize(40, 12)
	t.Cleanup(s.Close)
	return s, sim
}

func TestSetCellWritesContent(t *testing.T) {
	s, sim := newSim(t)
	draw.Text(s, 2, 1, "ok", draw.ColorYellow)
	s.Show()

	ch, _, style, _ := sim.GetContent(3, 1)
	if ch != 'k' {
		t.Fatalf("cell = %q", ch)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorYellow {
		t.Fatalf("fg = %v", fg)
	}
}

func TestKeyEventsMapToInput(t *testing.T) {
	s, _ := newSim(t)
	now := time.Now()
	s.handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), now)
	s.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now)
	s.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)

	in := s.tracker.Snapshot(now)
	if !in.Move.Up || !in.Aim.Left || !in.Enter {
		t.Fatalf("input = %+v", in)
	}
}

func TestMouseEventsMapToInput(t *testing.T) {
	s, _ := newSim(t)
	now := time.Now()
	s.handle(tcell.NewEventMouse(7, 3, tcell.ButtonSecondary, tcell.ModNone), now)

	in := s.tracker.Snapshot(now)
	if in.Mouse.Col != 7 || in.Mouse.Row != 3 || !in.Mouse.RightClick {
		t.Fatalf("mouse = %+v", in.Mouse)
	}

	s.handle(tcell.NewEventMouse(7, 3, tcell.ButtonNone, tcell.ModNone), now)
	if in = s.tracker.Snapshot(now); in.Mouse.Right {
		t.Fatal("release not seen")
	}
}
