package systems

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput advances the frame clock and turns this frame's raw input into
// camera events. Must run BEFORE UpdateCamera in the system order.
func UpdateInput(e *ecs.ECS) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	g, ok := getGallery(e)
	if !ok {
		return
	}
	_, pointer, ok := getPointer(e)
	if !ok {
		return
	}

	camera.ClockMs += cfg.Camera.FrameMs
	pointer.BeginFrame()
	minimap := MinimapRect(g)

	if !pollTouch(camera, pointer, minimap) {
		pollMouse(camera, pointer, g.View, minimap)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		pointer.Wheel(&camera.Events, dy, camera.ClockMs)
	}
}

func pollMouse(camera *components.CameraData, pointer *components.PointerData, view viewport.Size, minimap viewport.Rect) {
	x, y := ebiten.CursorPosition()
	pos := math.Vec2{X: float64(x), Y: float64(y)}
	pointer.Inside = pos.X >= 0 && pos.Y >= 0 && pos.X < view.W && pos.Y < view.H

	now := camera.ClockMs
	pointer.Move(&camera.Events, pos, viewport.Mouse, now)
	if isDragButtonJustPressed() {
		pointer.Press(&camera.Events, viewport.Mouse, minimap, now)
	}
	if isDragButtonJustReleased() {
		pointer.Release(&camera.Events, viewport.Mouse, now)
	}
}

// pollTouch follows a single touch. It reports whether a touch owns the
// pointer this frame, in which case the mouse is not polled.
func pollTouch(camera *components.CameraData, pointer *components.PointerData, minimap viewport.Rect) bool {
	now := camera.ClockMs
	if !pointer.Touching() {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		if len(touchIDs) == 0 {
			return false
		}
		id := touchIDs[0]
		x, y := ebiten.TouchPosition(id)
		pointer.BeginTouch(&camera.Events, int(id), math.Vec2{X: float64(x), Y: float64(y)}, minimap, now)
		return true
	}

	id := ebiten.TouchID(pointer.TouchID)
	if inpututil.IsTouchJustReleased(id) {
		pointer.EndTouch(&camera.Events, now)
		return true
	}

	x, y := ebiten.TouchPosition(id)
	pointer.Move(&camera.Events, math.Vec2{X: float64(x), Y: float64(y)}, viewport.Touch, now)
	return true
}

func isDragButtonJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)
}

func isDragButtonJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle)
}
