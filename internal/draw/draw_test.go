package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCircleOutlineTouchesRadius(t *testing.T) {
	c := NewCanvas(40, 20)
	c.DrawCircle(Point{X: 20, Y: 20}, 5, ColorRed)

	for _, p := range [][2]int{{25, 20}, {15, 20}, {20, 25}, {20, 15}} {
		if c.At(p[0], p[1]) != ColorRed {
			t.Fatalf("pixel %v not on the outline", p)
		}
	}
	if c.At(20, 20) != ColorNone {
		t.Fatal("outline filled the center")
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(Point{X: 10, Y: 10}, 3, ColorGreen)
	if c.At(10, 10) != ColorGreen || c.At(12, 10) != ColorGreen {
		t.Fatal("interior not filled")
	}
	if c.At(14, 10) != ColorNone {
		t.Fatal("fill spilled outside the radius")
	}
}

func TestBlitHalfBlocks(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0, ColorWhite)
	c.Set(1, 1, ColorWhite)
	c.Set(2, 0, ColorRed)
	c.Set(2, 1, ColorRed)

	b := NewBuffer(3, 1)
	c.Blit(b)
	if got := b.Row(0); got != "▀▄█" {
		t.Fatalf("row = %q", got)
	}
	if b.At(2, 0).Fg != ColorRed {
		t.Fatal("color lost")
	}
}

func TestOutOfRangeDrawsAreDropped(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(Point{X: -10, Y: -10}, Point{X: 10, Y: 10}, ColorWhite)
	c.Set(100, 100, ColorWhite)

	b := NewBuffer(2, 2)
	b.SetCell(5, 5, 'x', ColorWhite)
	if b.At(5, 5) != (Cell{}) {
		t.Fatal("out-of-range cell stored")
	}
}

func TestTextAndBox(t *testing.T) {
	b := NewBuffer(10, 4)
	Box(b, 0, 0, 10, 4, ColorWhite)
	end := Text(b, 1, 1, "hi", ColorYellow)
	if end != 3 {
		t.Fatalf("text ended at %d", end)
	}
	if got := b.Row(0); got != "┌────────┐" {
		t.Fatalf("top = %q", got)
	}
	if got := b.Row(1); !strings.HasPrefix(got, "│hi") {
		t.Fatalf("text row = %q", got)
	}
}

func TestANSISurfaceSendsOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	s := NewANSISurface(&out, func() (int, int, error) { return 4, 2, nil })
	if err := s.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	s.SetCell(1, 0, 'a', ColorWhite)
	if err := s.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out.String(), "\033[1;2H\033[97ma") {
		t.Fatalf("first frame = %q", out.String())
	}

	out.Reset()
	if err := s.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", out.String())
	}
}
