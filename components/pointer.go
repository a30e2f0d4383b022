package components

import (
	"github.com/automoto/folio/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type TrailSample struct {
	Pos    math.Vec2
	TimeMs float64
}

// PointerData tracks the mouse or the primary touch.
type PointerData struct {
	viewport.Pointer
	Trail []TrailSample

	// Hovered is the topmost card under the pointer, or nil.
	Hovered *donburi.Entry
}

var Pointer = donburi.NewComponentType[PointerData]()
