package pit

import "math/rand/v2"

// Shape names one of the seven tetromino variants.
type Shape int

const (
	ShapeI Shape = iota
	ShapeL
	ShapeJ
	ShapeT
	ShapeS
	ShapeZ
	ShapeO
)

var shapeNames = [...]string{"I", "L", "J", "T", "S", "Z", "O"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "?"
	}
	return shapeNames[s]
}

// spawnTable holds the absolute spawn cells of every shape. The first cell
// of each entry is the rotation origin. Coordinates assume a pit at least
// seven columns wide.
var spawnTable = [...]Piece{
	ShapeI: {{4, 0}, {3, 0}, {5, 0}, {6, 0}},
	ShapeL: {{4, 0}, {3, 0}, {5, 0}, {5, -1}},
	ShapeJ: {{3, 0}, {3, -1}, {4, 0}, {5, 0}},
	ShapeT: {{4, 0}, {3, 0}, {4, -1}, {5, 0}},
	ShapeS: {{5, 0}, {4, 0}, {5, -1}, {6, -1}},
	ShapeZ: {{5, 0}, {4, 0}, {4, -1}, {3, -1}},
	ShapeO: {{4, 0}, {5, 0}, {4, -1}, {5, -1}},
}

// MinSpawnWidth is the narrowest pit every spawn position fits into.
const MinSpawnWidth = 7

// Shapes returns every shape in declaration order.
func Shapes() []Shape {
	shapes := make([]Shape, len(spawnTable))
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}

// SpawnPiece returns the spawn cells for the given shape.
func SpawnPiece(s Shape) Piece {
	return spawnTable[s]
}

// RandomShape picks one of the seven shapes uniformly.
func RandomShape(rng *rand.Rand) Shape {
	return Shape(rng.IntN(len(spawnTable)))
}

// Rotate turns a piece 90 degrees clockwise about its first cell. It does no
// bounds or collision checking.
func Rotate(piece Piece) Piece {
	origin := piece[0]
	var rotated Piece
	for i, c := range piece {
		offset := c.Sub(origin)
		rotated[i] = origin.Add(Cell{X: -offset.Y, Y: offset.X})
	}
	return rotated
}
