package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

var desktopView = Size{W: 1000, H: 800}

func TestProjectCentersOrigin(t *testing.T) {
	pr := Project(Entity{ID: "a"}, Vec3{}, DesktopProfile(), desktopView)

	assert.True(t, pr.Visible)
	assert.Equal(t, 1.0, pr.ScaleZ)
	assert.Equal(t, 500.0, pr.X)
	assert.Equal(t, 400.0, pr.Y)
	assert.Equal(t, 280.0, pr.Width)
	assert.Equal(t, 380.0, pr.Height)
}

func TestProjectDepthScaling(t *testing.T) {
	p := DesktopProfile()
	pr := Project(Entity{X: 100, Y: -50, Z: 1000}, Vec3{X: 100, Z: 500}, p, desktopView)

	assert.InDelta(t, 0.5, pr.ScaleZ, 1e-12)
	assert.InDelta(t, 200*0.5+500, pr.X, 1e-9)
	assert.InDelta(t, -50*0.5+400, pr.Y, 1e-9)
	assert.Equal(t, Rect{X: pr.X + 70, Y: pr.Y + 95, W: 140, H: 190}, pr.DrawRect(1))
}

func TestProjectAtDepthReferenceIsHidden(t *testing.T) {
	p := DesktopProfile()
	pr := Project(Entity{Z: 1000}, Vec3{Z: 2000}, p, desktopView)

	assert.Equal(t, 0.0, pr.ScaleZ)
	assert.False(t, pr.Visible)

	behind := Project(Entity{Z: 5000}, Vec3{}, p, desktopView)
	assert.Less(t, behind.ScaleZ, 0.0)
	assert.False(t, behind.Visible)
}

func TestCardSize(t *testing.T) {
	mobile := MobileProfile()

	w, h := mobile.CardSize(Entity{})
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 60.0, h)

	w, h = mobile.CardSize(Entity{Width: 280, Height: 560})
	assert.InDelta(t, 40, w, 1e-9)
	assert.InDelta(t, 80, h, 1e-9)

	// A lone explicit width is used as-is.
	w, h = mobile.CardSize(Entity{Width: 100})
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 60.0, h)

	w, h = DesktopProfile().CardSize(Entity{Width: 300, Height: 200})
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 200.0, h)
}

func TestHoverTiers(t *testing.T) {
	p := DesktopProfile()
	pr := Project(Entity{}, Vec3{}, p, desktopView)
	c := pr.Center()
	assert.Equal(t, math.Vec2{X: 640, Y: 590}, c)

	cases := []struct {
		name    string
		dx      float64
		scale   float64
		hovered bool
		raised  bool
	}{
		{"on centre", 0, 2.0, true, true},
		{"inside half width", 139, 2.0, true, true},
		{"inside width", 200, 1.4, true, true},
		{"outside hover radius", 260, 1.4, false, true},
		{"inside one and a half widths", 300, 0.9, false, true},
		{"far", 500, 0.3, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := HoverScale(pr, math.Vec2{X: c.X + tc.dx, Y: c.Y}, p)
			assert.Equal(t, tc.scale, h.Scale)
			assert.Equal(t, tc.hovered, h.Hovered)
			assert.Equal(t, tc.raised, h.Raised)
		})
	}
}

func TestHoverTiersMobile(t *testing.T) {
	p := MobileProfile()
	pr := Project(Entity{}, Vec3{}, p, Size{W: 400, H: 700})
	c := pr.Center()

	assert.Equal(t, 0.7, HoverScale(pr, c, p).Scale)
	assert.False(t, HoverScale(pr, c, p).Raised)
	assert.Equal(t, 0.5, HoverScale(pr, math.Vec2{X: c.X + 30, Y: c.Y}, p).Scale)
	assert.Equal(t, 0.4, HoverScale(pr, math.Vec2{X: c.X, Y: c.Y + 50}, p).Scale)
	assert.Equal(t, 0.3, HoverScale(pr, math.Vec2{X: c.X, Y: c.Y + 61}, p).Scale)
}

func TestDrawRectScalesAboutCenter(t *testing.T) {
	pr := Project(Entity{}, Vec3{}, DesktopProfile(), desktopView)
	r := pr.DrawRect(0.5)

	assert.Equal(t, pr.Center(), r.Center())
	assert.Equal(t, 140.0, r.W)
	assert.Equal(t, 190.0, r.H)
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "touching edges")
	assert.False(t, a.Overlaps(Rect{X: 20, Y: 20, W: 1, H: 1}))
	assert.True(t, a.Contains(math.Vec2{X: 10, Y: 10}))
}
