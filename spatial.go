package main

// SpatialCellSize is ~4x the largest entity diameter so a query rarely
// touches more than four cells.
const SpatialCellSize = 64.0

// Entity kinds stored in the grid
const (
	KindBullet = 'b'
	KindZombie = 'z'
)

// EntityRef identifies an entity in the grid by kind and index into the
// corresponding world slice. Indices are only valid within the frame the
// grid was filled in.
type EntityRef struct {
	Kind byte
	Idx  int
}

// SpatialGrid is a broad-phase index over the arena. Positions outside
// the arena clamp into the border cells, so off-screen entities are
// still queryable (just with coarser candidate sets).
type SpatialGrid struct {
	cols, rows int
	cells      [][]EntityRef
}

// NewSpatialGrid sizes a grid for the given arena bounds
func NewSpatialGrid(width, height float64) *SpatialGrid {
	cols := int(width/SpatialCellSize) + 1
	rows := int(height/SpatialCellSize) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &SpatialGrid{
		cols:  cols,
		rows:  rows,
		cells: make([][]EntityRef, cols*rows),
	}
}

// Clear resets all cells, keeping allocated capacity
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *SpatialGrid) cellIdx(x, y float64) int {
	cx := int(x / SpatialCellSize)
	cy := int(y / SpatialCellSize)
	if cx < 0 {
		cx = 0
	} else if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.rows {
		cy = g.rows - 1
	}
	return cy*g.cols + cx
}

// Insert adds an entity reference at the given position
func (g *SpatialGrid) Insert(x, y float64, ref EntityRef) {
	idx := g.cellIdx(x, y)
	g.cells[idx] = append(g.cells[idx], ref)
}

// InsertCircle adds an entity reference to all cells overlapping its
// bounding box
func (g *SpatialGrid) InsertCircle(x, y, radius float64, ref EntityRef) {
	minCX, maxCX, minCY, maxCY := g.cellRange(x, y, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], ref)
		}
	}
}

// Query returns all entity refs in cells overlapping the given bounding box
func (g *SpatialGrid) Query(x, y, radius float64) []EntityRef {
	return g.QueryBuf(x, y, radius, nil)
}

// QueryBuf appends results to buf and returns the extended slice,
// avoiding a per-call allocation in the frame loop
func (g *SpatialGrid) QueryBuf(x, y, radius float64, buf []EntityRef) []EntityRef {
	minCX, maxCX, minCY, maxCY := g.cellRange(x, y, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*g.cols + cx
			buf = append(buf, g.cells[idx]...)
		}
	}
	return buf
}

func (g *SpatialGrid) cellRange(x, y, radius float64) (minCX, maxCX, minCY, maxCY int) {
	minCX = int((x - radius) / SpatialCellSize)
	maxCX = int((x + radius) / SpatialCellSize)
	minCY = int((y - radius) / SpatialCellSize)
	maxCY = int((y + radius) / SpatialCellSize)
	minCX = clampCell(minCX, g.cols)
	maxCX = clampCell(maxCX, g.cols)
	minCY = clampCell(minCY, g.rows)
	maxCY = clampCell(maxCY, g.rows)
	return
}

func clampCell(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}
