package draw

import "unicode/utf8"

// Surface is a grid of terminal cells. Coordinates are 0-based; writes
// outside the grid are dropped.
type Surface interface {
	Size() (cols, rows int)
	SetCell(col, row int, ch rune, fg Color)
	Clear()
	Show() error
}

// Cell is one character of a Buffer.
type Cell struct {
	Ch rune
	Fg Color
}

// Buffer is an in-memory Surface. Show is a no-op.
type Buffer struct {
	cols, rows int
	cells      []Cell
}

// NewBuffer returns a blank buffer.
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	return b
}

// Resize reallocates the buffer when the dimensions change.
func (b *Buffer) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == b.cols && rows == b.rows && b.cells != nil {
		return
	}
	b.cols, b.rows = cols, rows
	b.cells = make([]Cell, cols*rows)
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) { return b.cols, b.rows }

// SetCell writes one cell.
func (b *Buffer) SetCell(col, row int, ch rune, fg Color) {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return
	}
	b.cells[row*b.cols+col] = Cell{Ch: ch, Fg: fg}
}

// At returns the cell at col, row, or a zero Cell when out of range.
func (b *Buffer) At(col, row int) Cell {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return Cell{}
	}
	return b.cells[row*b.cols+col]
}

// Row returns the text of one row with empty cells as spaces.
func (b *Buffer) Row(row int) string {
	out := make([]rune, b.cols)
	for col := range out {
		ch := b.At(col, row).Ch
		if ch == 0 {
			ch = ' '
		}
		out[col] = ch
	}
	return string(out)
}

// Clear blanks every cell.
func (b *Buffer) Clear() { clear(b.cells) }

// Show does nothing.
func (b *Buffer) Show() error { return nil }

// Text writes str starting at col, row and returns the column after it.
func Text(s Surface, col, row int, str string, fg Color) int {
	for _, r := range str {
		s.SetCell(col, row, r, fg)
		col++
	}
	return col
}

// CenteredText writes str centered on row.
func CenteredText(s Surface, row int, str string, fg Color) {
	cols, _ := s.Size()
	Text(s, (cols-utf8.RuneCountInString(str))/2, row, str, fg)
}

// Box draws a single-line frame with its top-left corner at col, row.
func Box(s Surface, col, row, width, height int, fg Color) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := col+width-1, row+height-1
	for x := col + 1; x < right; x++ {
		s.SetCell(x, row, '─', fg)
		s.SetCell(x, bottom, '─', fg)
	}
	for y := row + 1; y < bottom; y++ {
		s.SetCell(col, y, '│', fg)
		s.SetCell(right, y, '│', fg)
		for x := col + 1; x < right; x++ {
			s.SetCell(x, y, ' ', ColorNone)
		}
	}
	s.SetCell(col, row, '┌', fg)
	s.SetCell(right, row, '┐', fg)
	s.SetCell(col, bottom, '└', fg)
	s.SetCell(right, bottom, '┘', fg)
}

// Bar draws a width-cell gauge filled to ratio.
func Bar(s Surface, col, row, width int, ratio float64, fg Color) {
	filled := int(ratio * float64(width))
	for i := 0; i < width; i++ {
		ch := BlockLight
		if i < filled {
			ch = BlockFull
		}
		s.SetCell(col+i, row, ch, fg)
	}
}
