package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for smooth SSH flow.
const maxChunkSize = 1400

// Terminal control sequences.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
	seqReset      = "\033[0m"
	// Button, drag and SGR extended mouse reporting.
	seqMouseOn  = "\033[?1000h\033[?1002h\033[?1006h"
	seqMouseOff = "\033[?1006l\033[?1002l\033[?1000l"
)

// ChunkWriter accumulates terminal output and writes it in chunks for optimal
// network flow (e.g. over SSH).
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{bufw: bufio.NewWriterSize(w, 8192)}
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col), 10))
	cw.buf.WriteByte('H')
}

// SetColor appends an SGR foreground sequence.
func (cw *ChunkWriter) SetColor(c Color) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(c.ansi()), 10))
	cw.buf.WriteByte('m')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ANSISurface is a Surface drawn with escape sequences. Show only sends the
// cells that changed since the previous Show.
type ANSISurface struct {
	Buffer
	prev  []Cell
	out   *ChunkWriter
	size  TermSizeFunc
	dirty bool
}

// NewANSISurface returns a surface writing to w, sized by size.
func NewANSISurface(w io.Writer, size TermSizeFunc) *ANSISurface {
	return &ANSISurface{out: NewChunkWriter(w), size: size, dirty: true}
}

// Sync picks up terminal resizes. A resize forces a full repaint.
func (a *ANSISurface) Sync() error {
	cols, rows, err := a.size()
	if err != nil {
		return err
	}
	if cols != a.cols || rows != a.rows || a.cells == nil {
		a.Resize(cols, rows)
		a.prev = make([]Cell, len(a.cells))
		a.dirty = true
	}
	return nil
}

// Show writes the changed cells.
func (a *ANSISurface) Show() error {
	if a.dirty {
		a.out.WriteString(seqReset + seqClear)
		clear(a.prev)
		a.dirty = false
	}

	last := Color(255)
	for i, cell := range a.cells {
		if cell == a.prev[i] {
			continue
		}
		a.prev[i] = cell
		a.out.MoveCursor(i%a.cols+1, i/a.cols+1)
		ch := cell.Ch
		if ch == 0 {
			ch = ' '
		}
		if cell.Fg != last {
			a.out.SetColor(cell.Fg)
			last = cell.Fg
		}
		a.out.WriteRune(ch)
	}
	return a.out.Flush()
}

// Enter prepares the terminal: hidden cursor, mouse reporting, blank screen.
func (a *ANSISurface) Enter() error {
	a.out.WriteString(seqHideCursor + seqMouseOn + seqClear)
	a.dirty = true
	return a.out.Flush()
}

// Leave restores the terminal.
func (a *ANSISurface) Leave() error {
	a.out.WriteString(seqMouseOff + seqReset + seqClear + seqShowCursor)
	return a.out.Flush()
}

var _ Surface = (*ANSISurface)(nil)
