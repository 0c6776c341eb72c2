package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetrapit/debugui"
	debugui_ebiten "github.com/plus3/tetrapit/debugui/ebiten"
	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
	"github.com/plus3/tetrapit/pit"
)

var defaultBindings = map[ebiten.Key]game.Action{
	ebiten.KeyArrowLeft:  game.ActionLeft,
	ebiten.KeyArrowRight: game.ActionRight,
	ebiten.KeyArrowUp:    game.ActionRotate,
	ebiten.KeyArrowDown:  game.ActionSoftDrop,
	ebiten.KeyEscape:     game.ActionQuit,
	ebiten.KeyQ:          game.ActionQuit,
}

var (
	backgroundColor = color.RGBA{26, 51, 77, 255}
	pitColor        = color.White
	blockColor      = color.Black
)

// Game implements ebiten.Game on top of a session.
type Game struct {
	session   *game.Session
	scheduler *loop.Scheduler
	timer     *loop.FrameTimer
	keys      *game.Keymap[ebiten.Key]

	// Set only in debug mode.
	imgui *debugui_ebiten.ImguiBackend
	debug *debugui.System
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	if g.debug == nil || !g.debug.Input.WantCaptureKeyboard {
		for _, key := range inpututil.AppendJustPressedKeys(nil) {
			g.session.Push(g.keys.Lookup(key))
		}
	}

	g.scheduler.Once(g.timer.Delta())

	if g.imgui != nil {
		g.imgui.EndFrame()
	}

	if g.session.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	p := g.session.Pit()
	size := screen.Bounds().Size()
	bounds := pitBounds(float32(size.X), float32(size.Y), p.Width(), p.Height())

	vector.DrawFilledRect(screen, bounds.X, bounds.Y, bounds.W, bounds.H, pitColor, false)
	for _, c := range p.SolidBlocks() {
		drawBlock(screen, bounds, c)
	}
	for _, c := range p.ActivePiece() {
		if c.Y >= 0 {
			drawBlock(screen, bounds, c)
		}
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func drawBlock(screen *ebiten.Image, bounds rect, c pit.Cell) {
	b := bounds.block(c)
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, blockColor, false)
}
