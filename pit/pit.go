// Package pit implements the playing field of a falling-block puzzle: a grid
// of locked cells plus the single tetromino currently falling through it.
//
// Row 0 is the top of the pit and Y grows downward. Cells of the active piece
// may sit above the grid (negative Y) right after a spawn.
package pit

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

// Piece holds the four cells of a tetromino. Piece[0] is the rotation origin.
type Piece [4]Cell

// Translate returns the piece shifted by (dx, dy).
func (p Piece) Translate(dx, dy int) Piece {
	for i := range p {
		p[i].X += dx
		p[i].Y += dy
	}
	return p
}

// Contains reports whether c is one of the piece's cells.
func (p Piece) Contains(c Cell) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// LockResult describes what happened when a piece could not fall any further.
type LockResult struct {
	// Locked is the piece as it was written into the grid.
	Locked Piece
	// Cleared lists the rows that were complete after the lock, ascending.
	Cleared []int
	// Discarded counts locked cells that were above the grid and dropped.
	Discarded int
	// Spawned is the shape of the replacement piece.
	Spawned Shape
	// Obstructed is set when the replacement piece overlaps locked cells.
	// Play continues regardless.
	Obstructed bool
}

// Pit is the grid of locked cells and the active piece. It is not safe for
// concurrent use; one control loop owns it.
type Pit struct {
	width  int
	height int
	spots  [][]bool
	active Piece
	shape  Shape
	rng    *rand.Rand
}

// New creates an empty pit and spawns its first piece using rng.
//
// Spawn positions are fixed and reach column MinSpawnWidth-1, so a pit
// narrower than MinSpawnWidth can hold a piece partly outside the grid.
// Locking such a piece panics with ErrInvalidLock.
func New(width, height int, rng *rand.Rand) *Pit {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height))
	}
	if rng == nil {
		panic("pit: nil random source")
	}

	p := &Pit{
		width:  width,
		height: height,
		spots:  make([][]bool, height),
		rng:    rng,
	}
	for y := range p.spots {
		p.spots[y] = make([]bool, width)
	}
	p.spawnPiece()
	return p
}

func (p *Pit) Width() int  { return p.width }
func (p *Pit) Height() int { return p.height }

// ActivePiece returns the cells of the falling piece.
func (p *Pit) ActivePiece() Piece { return p.active }

// Shape returns the shape of the falling piece.
func (p *Pit) Shape() Shape { return p.shape }

// Occupied reports whether a locked block sits at (x, y). Coordinates outside
// the grid are never occupied.
func (p *Pit) Occupied(x, y int) bool {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return false
	}
	return p.spots[y][x]
}

// MovePieceRight shifts the piece one column right if every cell can move.
func (p *Pit) MovePieceRight() bool {
	return p.shift(1, 0)
}

// MovePieceLeft shifts the piece one column left if every cell can move.
func (p *Pit) MovePieceLeft() bool {
	return p.shift(-1, 0)
}

// MovePieceDown drops the piece one row. When the piece is blocked it is
// locked into the grid, completed rows are cleared and a new piece is
// spawned, all before returning. The boolean reports whether a lock happened.
//
// The new piece is placed at its spawn cells even if they are occupied.
func (p *Pit) MovePieceDown() (LockResult, bool) {
	if p.shift(0, 1) {
		return LockResult{}, false
	}

	result := LockResult{Locked: p.active}
	result.Discarded = p.solidifyPiece()
	result.Cleared = p.clearCompletedLines()
	p.spawnPiece()
	result.Spawned = p.shape
	result.Obstructed = p.obstructed()
	return result, true
}

// RotatePiece turns the piece 90 degrees clockwise about its origin cell.
// The rotation is rejected if any cell would leave the grid sideways or
// through the floor, or land on a locked block. The O piece never changes;
// its rotation only succeeds where the piece is legally placed.
func (p *Pit) RotatePiece() bool {
	if p.shape == ShapeO {
		return p.fits(p.active)
	}
	rotated := Rotate(p.active)
	if !p.fits(rotated) {
		return false
	}
	p.active = rotated
	return true
}

// SolidBlocks returns every locked cell in row-major order.
func (p *Pit) SolidBlocks() []Cell {
	var blocks []Cell
	for y, row := range p.spots {
		for x, solid := range row {
			if solid {
				blocks = append(blocks, Cell{X: x, Y: y})
			}
		}
	}
	return blocks
}

// Rows returns a copy of the occupancy grid, indexed [y][x].
func (p *Pit) Rows() [][]bool {
	rows := make([][]bool, len(p.spots))
	for y, row := range p.spots {
		rows[y] = slices.Clone(row)
	}
	return rows
}

// String draws the pit as text: '#' for locked cells, '@' for the active
// piece and '.' for empty cells.
func (p *Pit) String() string {
	var sb strings.Builder
	sb.Grow((p.width + 1) * p.height)
	for y, row := range p.spots {
		for x, solid := range row {
			switch {
			case solid:
				sb.WriteByte('#')
			case p.active.Contains(Cell{X: x, Y: y}):
				sb.WriteByte('@')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Pit) shift(dx, dy int) bool {
	moved := p.active.Translate(dx, dy)
	if !p.fits(moved) {
		return false
	}
	p.active = moved
	return true
}

// fits reports whether every cell is inside the side walls and above the
// floor, and every cell inside the grid is free. Cells above the grid are
// allowed.
func (p *Pit) fits(piece Piece) bool {
	for _, c := range piece {
		if c.X < 0 || c.X >= p.width || c.Y >= p.height {
			return false
		}
		if c.Y >= 0 && p.spots[c.Y][c.X] {
			return false
		}
	}
	return true
}

func (p *Pit) obstructed() bool {
	for _, c := range p.active {
		if p.Occupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// solidifyPiece writes the active piece into the grid and returns the number
// of cells dropped because they were above the top row.
func (p *Pit) solidifyPiece() int {
	discarded := 0
	for _, c := range p.active {
		if c.Y < 0 {
			discarded++
			continue
		}
		if c.X < 0 || c.X >= p.width || c.Y >= p.height {
			panic(fmt.Errorf("%w: cell (%d,%d) outside %dx%d pit", ErrInvalidLock, c.X, c.Y, p.width, p.height))
		}
		p.spots[c.Y][c.X] = true
	}
	return discarded
}

// clearCompletedLines removes full rows and inserts the same number of empty
// rows at the top. It returns the removed row indices in ascending order.
func (p *Pit) clearCompletedLines() []int {
	var completed []int
	for y, row := range p.spots {
		if !slices.Contains(row, false) {
			completed = append(completed, y)
		}
	}
	if len(completed) == 0 {
		return nil
	}

	// Highest index first so the indices still to be removed stay valid.
	for i := len(completed) - 1; i >= 0; i-- {
		y := completed[i]
		p.spots = slices.Delete(p.spots, y, y+1)
	}

	fresh := make([][]bool, len(completed), p.height)
	for i := range fresh {
		fresh[i] = make([]bool, p.width)
	}
	p.spots = append(fresh, p.spots...)
	return completed
}

func (p *Pit) spawnPiece() {
	p.shape = RandomShape(p.rng)
	p.active = SpawnPiece(p.shape)
}
