// Package input turns SDL2 events into viewer controls.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// State is the input gathered during one frame.
type State struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Input accumulates SDL events between frames.
type Input struct {
	state State
}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Update drains the SDL event queue and returns this frame's state.
func (i *Input) Update() State {
	i.state = State{}
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	return i.state
}

func (i *Input) handle(event sdl.Event) {
	s := &i.state
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.Quit = true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			s.Resized = true
			s.Width = int(e.Data1)
			s.Height = int(e.Data2)
		case sdl.WINDOWEVENT_CLOSE:
			s.Quit = true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
			s.Quit = true
		}
	}
}
