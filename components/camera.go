package components

import (
	"github.com/automoto/folio/viewport"
	"github.com/yohamta/donburi"
)

// CameraData owns the gallery camera rig and the input it has yet to apply.
// ClockMs is the simulated frame clock the rig and its events are stamped with.
type CameraData struct {
	Rig     *viewport.Camera
	Events  viewport.Queue
	ClockMs float64

	// Unsaved is set while the camera has moved since the layout was last
	// saved.
	Unsaved bool
}

var Camera = donburi.NewComponentType[CameraData]()
