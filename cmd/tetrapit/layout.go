package main

import "github.com/plus3/tetrapit/pit"

type rect struct {
	X, Y, W, H float32
	// Block is the side of one cell.
	Block float32
}

// pitBounds places the pit in a window: 80% of the window height, centered
// horizontally and 10% down from the top.
func pitBounds(windowWidth, windowHeight float32, columns, rows int) rect {
	block := windowHeight * 0.8 / float32(rows)
	width := block * float32(columns)
	return rect{
		X:     windowWidth/2 - width/2,
		Y:     windowHeight * 0.1,
		W:     width,
		H:     block * float32(rows),
		Block: block,
	}
}

// block returns the screen rectangle of cell c.
func (r rect) block(c pit.Cell) rect {
	return rect{
		X:     r.X + float32(c.X)*r.Block,
		Y:     r.Y + float32(c.Y)*r.Block,
		W:     r.Block,
		H:     r.Block,
		Block: r.Block,
	}
}
