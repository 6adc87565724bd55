package draw

import (
	"math"
	"sort"
)

// Canvas is a pixel buffer with 2x vertical resolution, shown through
// half-block characters. Pixel (x, y) lands in cell (x, y/2).
type Canvas struct {
	cols   int     // Terminal columns
	rows   int     // Terminal rows
	height int     // rows * 2 pixels
	pixels []Color // Flat slice: [y * cols + x], ColorNone if unset

	// Reusable buffers to reduce allocations
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas covering cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the pixel buffer when the terminal size changes.
func (c *Canvas) Resize(cols, rows int) {
	if cols == c.cols && rows == c.rows && c.pixels != nil {
		return
	}
	c.cols, c.rows, c.height = cols, rows, rows*2
	c.pixels = make([]Color, c.height*cols)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.cols }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Set colors one pixel. Out-of-range pixels are dropped.
func (c *Canvas) Set(x, y int, col Color) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.height {
		c.pixels[y*c.cols+x] = col
	}
}

// At returns the color of a pixel, ColorNone when unset or out of range.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.cols || y < 0 || y >= c.height {
		return ColorNone
	}
	return c.pixels[y*c.cols+x]
}

// SetFloat sets the pixel nearest to p.
func (c *Canvas) SetFloat(p Point, col Color) {
	c.Set(int(math.Round(p.X)), int(math.Round(p.Y)), col)
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1, y1 := int(math.Round(p1.X)), int(math.Round(p1.Y))
	x2, y2 := int(math.Round(p2.X)), int(math.Round(p2.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.Set(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawCircle draws a circle outline using the midpoint algorithm. A radius
// below one pixel plots the center only.
func (c *Canvas) DrawCircle(center Point, radius float64, col Color) {
	cx, cy := int(math.Round(center.X)), int(math.Round(center.Y))
	r := int(math.Round(radius))
	if r < 1 {
		c.Set(cx, cy, col)
		return
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y, col)
		c.Set(cx-x, cy+y, col)
		c.Set(cx+x, cy-y, col)
		c.Set(cx-x, cy-y, col)
		c.Set(cx+y, cy+x, col)
		c.Set(cx-y, cy+x, col)
		c.Set(cx+y, cy-x, col)
		c.Set(cx-y, cy-x, col)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle fills every pixel whose center lies within radius.
func (c *Canvas) FillCircle(center Point, radius float64, col Color) {
	if radius < 0.5 {
		c.SetFloat(center, col)
		return
	}
	x0 := int(math.Floor(center.X - radius))
	x1 := int(math.Ceil(center.X + radius))
	y0 := int(math.Floor(center.Y - radius))
	y1 := int(math.Ceil(center.Y + radius))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		dy := float64(y) - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) - center.X
			if dx*dx+dy*dy <= r2 {
				c.Set(x, y, col)
			}
		}
	}
}

// DrawPolygon draws a polygon outline, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool, col Color) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, col)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.Set(x, y, col)
			}
		}
	}
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

// Blit copies the set pixels onto s as half-block characters. When the two
// halves of a cell differ in color the upper one wins.
func (c *Canvas) Blit(s Surface) {
	for row := 0; row < c.rows; row++ {
		topOffset := row * 2 * c.cols
		bottomOffset := topOffset + c.cols

		for col := 0; col < c.cols; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			switch {
			case top != ColorNone && bottom != ColorNone:
				if top == bottom {
					s.SetCell(col, row, BlockFull, top)
				} else {
					s.SetCell(col, row, BlockUpperHalf, top)
				}
			case top != ColorNone:
				s.SetCell(col, row, BlockUpperHalf, top)
			case bottom != ColorNone:
				s.SetCell(col, row, BlockLowerHalf, bottom)
			}
		}
	}
}
