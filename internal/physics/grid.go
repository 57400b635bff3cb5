package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a
// square arena centred on the origin. Objects are inserted by ground
// position and index, then nearby objects can be queried via a 3x3
// neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that all potential collisions are found within
// the 3x3 neighborhood.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	half        float64 // arena half-extent; cell 0 starts at -half
	cols        int
	cells       []gridCell
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering [-half, half] on both ground axes.
func NewSpatialGrid(half, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(2 * half / cellSize))
	if cols < 1 {
		cols = 1
	}
	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		half:        half,
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

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(p Vec3, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around p. Cells past the arena edge are skipped.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(p Vec3, fn func(index int) bool) {
	col, row := g.posToCell(p)

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.cols {
			continue
		}
		rowOffset := r * g.cols

		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// FirstAround returns the lowest inserted index near p for which hit
// returns true, or -1. Candidates are checked in index order so the result
// matches a linear scan of the original collection.
func (g *SpatialGrid) FirstAround(p Vec3, hit func(index int) bool) int {
	best := -1
	g.QueryAround(p, func(i int) bool {
		if (best < 0 || i < best) && hit(i) {
			best = i
		}
		return false
	})
	return best
}

// posToCell converts a position to grid cell coordinates.
// Clamps to valid range so out-of-arena points land in edge cells.
func (g *SpatialGrid) posToCell(p Vec3) (col, row int) {
	col = int((p.X + g.half) * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int((p.Z + g.half) * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.cols {
		row = g.cols - 1
	}

	return col, row
}
