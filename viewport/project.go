package viewport

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Entity is a project card's fixed position in world space. Width and Height
// are optional; zero means the profile's base size.
type Entity struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Projection is an entity mapped into screen space for one frame. X/Y is
// the untransformed card origin; the card is drawn scaled about its centre.
type Projection struct {
	X, Y    float64
	ScaleZ  float64
	Width   float64 // unscaled card size
	Height  float64
	Visible bool
}

// Project maps e into screen space for a camera at offset. Entities at or
// behind the depth reference come back with Visible false.
func Project(e Entity, offset Vec3, p Profile, view Size) Projection {
	scaleZ := 1 - (e.Z+offset.Z)/p.DepthReference
	w, h := p.CardSize(e)

	return Projection{
		X:       (e.X+offset.X)*scaleZ + view.W/2,
		Y:       (e.Y+offset.Y)*scaleZ + view.H/2,
		ScaleZ:  scaleZ,
		Width:   w,
		Height:  h,
		Visible: scaleZ > 0,
	}
}

// Center is the point cards scale about and hover distance is measured from.
func (pr Projection) Center() math.Vec2 {
	return math.Vec2{X: pr.X + pr.Width/2, Y: pr.Y + pr.Height/2}
}

// DrawRect returns the on-screen rectangle for a card drawn at scaleZ*hover.
func (pr Projection) DrawRect(hover float64) Rect {
	s := pr.ScaleZ * hover
	c := pr.Center()
	w, h := pr.Width*s, pr.Height*s
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Hover is the pointer-proximity presentation state of one card.
type Hover struct {
	Scale   float64
	Hovered bool // drawn in colour
	Raised  bool // drawn above the rest
}

// HoverScale picks the discrete hover tier for pointer's distance to the
// card centre.
func HoverScale(pr Projection, pointer math.Vec2, p Profile) Hover {
	c := pr.Center()
	d := stdmath.Hypot(pointer.X-c.X, pointer.Y-c.Y)

	scale := p.RestScale
	for _, tier := range p.HoverTiers {
		if d < pr.Width*tier.Within {
			scale = tier.Scale
			break
		}
	}
	return Hover{
		Scale:   scale,
		Hovered: d < pr.Width*p.HoverRadius,
		Raised:  scale > p.RaiseAbove,
	}
}
