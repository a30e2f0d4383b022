package viewport

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// EdgeIntensity is the pan step for a pointer d pixels from an edge:
// speed*(1-d/threshold)^2 inside the threshold, 0 outside.
func EdgeIntensity(d, threshold, speed float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	return speed * stdmath.Pow(1-d/threshold, 2)
}

// ApplyEdgePan nudges the target while the pointer hovers near a viewport
// edge and reports whether any edge was hit. Opposite edges can both apply
// on viewports narrower than twice the threshold.
func (c *Camera) ApplyEdgePan(pos math.Vec2, view Size) bool {
	th, speed := c.tuning.EdgeThreshold, c.tuning.EdgeSpeed
	left, right := pos.X, view.W-pos.X
	top, bottom := pos.Y, view.H-pos.Y

	panning := false
	if left < th {
		c.Target.X += EdgeIntensity(left, th, speed)
		panning = true
	}
	if right < th {
		c.Target.X -= EdgeIntensity(right, th, speed)
		panning = true
	}
	if top < th {
		c.Target.Y += EdgeIntensity(top, th, speed)
		panning = true
	}
	if bottom < th {
		c.Target.Y -= EdgeIntensity(bottom, th, speed)
		panning = true
	}

	if panning {
		c.Velocity = math.Vec2{
			X: (c.Target.X - c.Offset.X) * c.tuning.EdgeMomentum,
			Y: (c.Target.Y - c.Offset.Y) * c.tuning.EdgeMomentum,
		}
	}
	c.EdgePanning = panning
	return panning
}
