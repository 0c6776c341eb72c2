// Package debugui draws Dear ImGui debug windows for a running session: the
// pit contents, session counters and scheduler timings.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrapit/loop"
)

// Panel renders one ImGui window. Render is only called between the
// backend's BeginFrame and EndFrame.
type Panel interface {
	Render(frame *loop.Frame)
}

// InputState tracks whether ImGui is consuming input this frame. Adapters
// should skip game key handling while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System updates InputState and defers every panel's render function to the
// end of the frame.
type System struct {
	Panels []Panel
	Input  InputState
}

func (s *System) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, panel := range s.Panels {
		frame.Commands.Defer(func() {
			panel.Render(frame)
		})
	}
}
