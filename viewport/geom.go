package viewport

import "github.com/yohamta/donburi/features/math"

// Vec3 is a position in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Size is a width/height pair in screen pixels.
type Size struct {
	W float64 `yaml:"width"`
	H float64 `yaml:"height"`
}

// Rect is an axis-aligned rectangle, X/Y being the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p math.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Overlaps reports whether r and o share a region of non-zero area.
func (r Rect) Overlaps(o Rect) bool {
	overlapX := min(r.X+r.W, o.X+o.W) - max(r.X, o.X)
	overlapY := min(r.Y+r.H, o.Y+o.H) - max(r.Y, o.Y)
	return overlapX > 0 && overlapY > 0
}

// Center returns the midpoint of r.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
