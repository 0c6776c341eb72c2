package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
	"github.com/plus3/tetrapit/pit"
)

// Each pit cell is two terminal columns wide so blocks look square.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	solidStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	activeStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

type renderSystem struct {
	screen  tcell.Screen
	session *game.Session
}

func (s *renderSystem) Execute(frame *loop.Frame) {
	s.screen.Clear()

	p := s.session.Pit()
	width, height := s.screen.Size()
	originX, originY := origin(width, height, p.Width(), p.Height())

	for y := -1; y <= p.Height(); y++ {
		s.screen.SetContent(originX-1, originY+y, '│', nil, borderStyle)
		s.screen.SetContent(originX+p.Width()*cellWidth, originY+y, '│', nil, borderStyle)
	}
	for x := -1; x <= p.Width()*cellWidth; x++ {
		s.screen.SetContent(originX+x, originY+p.Height(), '─', nil, borderStyle)
	}

	for _, c := range p.SolidBlocks() {
		s.drawCell(originX, originY, c, solidStyle)
	}
	for _, c := range p.ActivePiece() {
		if c.Y >= 0 {
			s.drawCell(originX, originY, c, activeStyle)
		}
	}

	counters := s.session.Counters()
	status := fmt.Sprintf("lines %d  locks %d  ←→ move  ↑ rotate  ↓ drop  q quit", counters.LinesCleared, counters.Locks)
	s.drawText(originX-1, originY+p.Height()+1, status)

	s.screen.Show()
}

func (s *renderSystem) drawCell(originX, originY int, c pit.Cell, style tcell.Style) {
	x := originX + c.X*cellWidth
	y := originY + c.Y
	for i := 0; i < cellWidth; i++ {
		s.screen.SetContent(x+i, y, '█', nil, style)
	}
}

func (s *renderSystem) drawText(x, y int, text string) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, textStyle)
		x++
	}
}

// origin returns the terminal position of pit cell (0,0), centering the pit
// and leaving room for the border and one status line.
func origin(screenWidth, screenHeight, columns, rows int) (int, int) {
	x := (screenWidth - columns*cellWidth) / 2
	y := (screenHeight - rows - 2) / 2
	return max(x, 1), max(y, 1)
}
