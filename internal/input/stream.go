package input

import (
	"bufio"
	"strconv"
	"time"
	"unicode/utf8"
)

// Stream reads terminal bytes on a goroutine and parses them into Inputs.
type Stream struct {
	ch      chan byte
	tracker *Tracker
	buf     []byte
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:      make(chan byte, 256),
		tracker: NewTracker(),
		now:     time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes (non-blocking) and returns this frame's input.
func (s *Stream) Poll() Input {
	now := s.now()
	s.buf = s.buf[:0]

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.tracker.Close()
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}

	parse(s.tracker, s.buf, now)
	return s.tracker.Snapshot(now)
}

// parse feeds raw terminal bytes into t: CSI arrow keys, SGR mouse reports,
// control characters and UTF-8 text.
func parse(t *Tracker, buf []byte, now time.Time) {
	for i := 0; i < len(buf); {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				t.Press(KeyAimUp, now)
				i += 3
				continue
			case 'B':
				t.Press(KeyAimDown, now)
				i += 3
				continue
			case 'C':
				t.Press(KeyAimRight, now)
				i += 3
				continue
			case 'D':
				t.Press(KeyAimLeft, now)
				i += 3
				continue
			case '<':
				if n := parseMouse(t, buf[i+3:]); n > 0 {
					i += 3 + n
					continue
				}
			}
		}

		switch b {
		case '\x1b':
			t.Press(KeyEscape, now)
		case '\x03':
			t.Press(KeyQuit, now)
		case '\r', '\n':
			t.Press(KeyEnter, now)
		case '\b', '\x7f':
			t.Press(KeyBackspace, now)
		default:
			if b < ' ' {
				break
			}
			r, size := utf8.DecodeRune(buf[i:])
			t.Rune(r, now)
			i += size
			continue
		}
		i++
	}
}

// parseMouse decodes the body of an SGR mouse report ("b;x;yM" or "...m")
// and returns the bytes consumed, or 0 if the report is incomplete.
func parseMouse(t *Tracker, buf []byte) int {
	var fields [3]int
	field, start := 0, 0
	for i, c := range buf {
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';' && field < 2:
			n, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0
			}
			fields[field] = n
			field++
			start = i + 1
		case (c == 'M' || c == 'm') && field == 2:
			n, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0
			}
			fields[2] = n
			applyMouse(t, fields[0], fields[1], fields[2], c == 'M')
			return i + 1
		default:
			return 0
		}
	}
	return 0
}

// applyMouse interprets an SGR button code. Wheel events are ignored.
func applyMouse(t *Tracker, code, col, row int, press bool) {
	t.MouseAt(col-1, row-1)
	if code&64 != 0 {
		return
	}
	motion := code&32 != 0
	switch code & 3 {
	case 0:
		if !motion {
			t.Button(false, press)
		}
	case 2:
		if !motion {
			t.Button(true, press)
		}
	}
}
