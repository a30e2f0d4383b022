package viewport

import "github.com/yohamta/donburi/features/math"

// BeginMinimapDrag enters MinimapDragging and pans to the pressed point.
func (c *Camera) BeginMinimapDrag(local math.Vec2, worldSize float64, minimap, view Size) {
	c.state = MinimapDragging
	c.PanToMinimapPoint(local, worldSize, minimap, view)
}

// PanToMinimapPoint maps a minimap-local point onto the target x/y, clamped
// to the world bounds. Z is left alone.
func (c *Camera) PanToMinimapPoint(local math.Vec2, worldSize float64, minimap, view Size) {
	if worldSize <= 0 || minimap.W <= 0 || minimap.H <= 0 {
		return
	}
	half := worldSize / 2
	scaleX := minimap.W / worldSize
	scaleY := minimap.H / worldSize

	c.Target.X = clamp(local.X/scaleX-view.W/2, -half, half)
	c.Target.Y = clamp(local.Y/scaleY-view.H/2, -half, half)
}

// MinimapPoint maps a world x/y onto minimap-local pixels.
func MinimapPoint(x, y, worldSize float64, minimap Size) math.Vec2 {
	return math.Vec2{
		X: (x + worldSize/2) * minimap.W / worldSize,
		Y: (y + worldSize/2) * minimap.H / worldSize,
	}
}

// ViewportBox is the minimap-local rectangle representing the visible area
// for a camera at offset.
func ViewportBox(offset Vec3, worldSize float64, minimap, view Size) Rect {
	origin := MinimapPoint(offset.X, offset.Y, worldSize, minimap)
	return Rect{
		X: origin.X,
		Y: origin.Y,
		W: view.W / worldSize * minimap.W,
		H: view.H / worldSize * minimap.H,
	}
}
