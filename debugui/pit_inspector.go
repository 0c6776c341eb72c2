package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
)

// PitInspector shows the pit as text along with the active piece and the
// session counters.
type PitInspector struct {
	Session *game.Session
}

func (pi *PitInspector) Render(frame *loop.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 280), imgui.CondOnce)
	if !imgui.BeginV("Pit", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p := pi.Session.Pit()
	imgui.Text(fmt.Sprintf("Size: %dx%d", p.Width(), p.Height()))
	imgui.Text(fmt.Sprintf("Piece: %s %v", p.Shape(), p.ActivePiece()))
	imgui.Text(fmt.Sprintf("Gravity: %s / %s", pi.Session.Elapsed(), pi.Session.Gravity()))

	imgui.Separator()
	c := pi.Session.Counters()
	imgui.Text(fmt.Sprintf("Moves: %d  Rotations: %d  Drops: %d", c.Moves, c.Rotations, c.Drops))
	imgui.Text(fmt.Sprintf("Locks: %d  Lines: %d", c.Locks, c.LinesCleared))
	imgui.Text(fmt.Sprintf("Discarded: %d  Obstructed: %d", c.Discarded, c.Obstructed))

	if imgui.TreeNodeStr("Grid") {
		imgui.Text(p.String())
		imgui.TreePop()
	}

	imgui.End()
}
