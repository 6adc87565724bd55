package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection over a
// bounded square world centered on the origin. Objects are inserted by
// position and index, then nearby objects can be queried by radius.
//
// Positions outside the covered area are clamped into the border cells, so
// queries near the edge still see them.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	half        float64 // half of the covered side length
	cols        int
	cells       []gridCell
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering [-halfExtent, +halfExtent] on both axes.
func NewSpatialGrid(halfExtent, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(2 * halfExtent / cellSize))
	if cols < 1 {
		cols = 1
	}
	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		half:        halfExtent,
		cols:        cols,
		cells:       make([]gridCell, cols*cols),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(p Vec2, index int) {
	col, row := g.posToCell(p.X, p.Y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryRadius calls fn for each item index stored in any cell touched by the
// square that bounds the circle (p, radius). Callers do their own narrow phase.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryRadius(p Vec2, radius float64, fn func(index int) bool) {
	minCol, minRow := g.posToCell(p.X-radius, p.Y-radius)
	maxCol, maxRow := g.posToCell(p.X+radius, p.Y+radius)

	for r := minRow; r <= maxRow; r++ {
		rowOffset := r * g.cols
		for c := minCol; c <= maxCol; c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range to handle edge cases with floating point.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int((x + g.half) * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int((y + g.half) * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.cols {
		row = g.cols - 1
	}

	return col, row
}
