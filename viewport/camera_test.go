package viewport

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func dist3(a, b Vec3) float64 {
	return stdmath.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y) + (a.Z-b.Z)*(a.Z-b.Z))
}

func TestTickConvergesMonotonically(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Target = Vec3{X: 500, Y: -300, Z: 1200}

	prev := dist3(c.Offset, c.Target)
	now := 0.0
	for i := 0; i < 200; i++ {
		now += 16.67
		c.Tick(now)
		d := dist3(c.Offset, c.Target)
		require.LessOrEqual(t, d, prev, "tick %d", i)
		prev = d
	}
	assert.Less(t, prev, 0.01)
}

func TestTickCapsLongFrames(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Target = Vec3{X: 100}

	c.Tick(5000)

	// A stall advances at most MaxFrameMs worth of smoothing.
	want := 100 * 0.15 * (32 / 16.67)
	assert.InDelta(t, want, c.Offset.X, 1e-9)
}

func TestTickIgnoresClockGoingBackwards(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Tick(100)
	c.Target = Vec3{X: 100}

	c.Tick(50)

	assert.Equal(t, 0.0, c.Offset.X)
}

func TestDragTargetIsIndependentOfSampling(t *testing.T) {
	cases := []struct {
		name  string
		steps int
	}{
		{"single sample", 1},
		{"few samples", 3},
		{"many samples", 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(DefaultTuning())
			c.Target = Vec3{X: 10, Y: -20, Z: 5}
			start := c.Target

			dx, dy := 120.0, -75.0
			c.BeginDrag(math.Vec2{X: 300, Y: 300}, 0)
			for i := 1; i <= tc.steps; i++ {
				f := float64(i) / float64(tc.steps)
				c.UpdateDrag(math.Vec2{X: 300 + dx*f, Y: 300 + dy*f}, float64(i)*16)
				c.Tick(float64(i) * 16)
			}
			c.EndDrag()

			assert.InDelta(t, start.X+dx*2, c.Target.X, 1e-9)
			assert.InDelta(t, start.Y+dy*2, c.Target.Y, 1e-9)
			assert.Equal(t, start.Z, c.Target.Z)
		})
	}
}

func TestUpdateDragVelocity(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.BeginDrag(math.Vec2{X: 0, Y: 0}, 100)

	c.UpdateDrag(math.Vec2{X: 10, Y: -4}, 110)
	assert.InDelta(t, 2.0, c.Velocity.X, 1e-9)
	assert.InDelta(t, -0.8, c.Velocity.Y, 1e-9)

	// Same timestamp: target moves, velocity keeps the previous sample.
	c.UpdateDrag(math.Vec2{X: 20, Y: -4}, 110)
	assert.InDelta(t, 2.0, c.Velocity.X, 1e-9)
	assert.InDelta(t, 40.0, c.Target.X, 1e-9)
}

func TestUpdateDragIgnoredWhenIdle(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.UpdateDrag(math.Vec2{X: 50, Y: 50}, 10)
	assert.Equal(t, Vec3{}, c.Target)
	assert.Equal(t, Idle, c.State())
}

func TestVelocityDecaysWhileIdle(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Velocity = math.Vec2{X: 4, Y: -2}

	now := 0.0
	for i := 0; i < 50; i++ {
		before := c.Velocity
		now += 16
		c.Tick(now)
		assert.InDelta(t, before.X*0.95, c.Velocity.X, 1e-12)
		assert.InDelta(t, before.Y*0.95, c.Velocity.Y, 1e-12)
	}
}

func TestVelocityHeldWhileDragging(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.BeginDrag(math.Vec2{}, 0)
	c.Velocity = math.Vec2{X: 3}

	c.Tick(16)

	assert.Equal(t, 3.0, c.Velocity.X)
	assert.Equal(t, 0.0, c.Offset.X)
}

func TestSmallVelocityNoLongerMoves(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Velocity = math.Vec2{X: 0.01, Y: -0.005}

	c.Tick(16)

	// After decay both axes are below epsilon so only smoothing applies,
	// and the target is the origin.
	assert.Equal(t, Vec3{}, c.Offset)
}

func TestMomentumMovesOffset(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Velocity = math.Vec2{X: 1}

	c.Tick(16.67)

	assert.InDelta(t, 0.95, c.Offset.X, 1e-9)
}

func TestWheelZoomAndBlur(t *testing.T) {
	c := NewCamera(DefaultTuning())

	c.ApplyWheel(-100)
	assert.InDelta(t, -40, c.Target.Z, 1e-9)
	assert.Equal(t, 1.0, c.BlurFlash)

	c.Tick(16)
	assert.InDelta(t, 0.9, c.BlurFlash, 1e-9)

	// Steps accumulate across short frames.
	c.Tick(24)
	assert.InDelta(t, 0.9, c.BlurFlash, 1e-9)
	c.Tick(32)
	assert.InDelta(t, 0.81, c.BlurFlash, 1e-9)
}

func TestResetStopsMotion(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.BeginDrag(math.Vec2{}, 0)
	c.Velocity = math.Vec2{X: 5, Y: 5}
	c.Target = Vec3{X: 1, Y: 2, Z: 3}

	c.Reset(3000)

	assert.Equal(t, Vec3{Z: 3000}, c.Offset)
	assert.Equal(t, Vec3{Z: 3000}, c.Target)
	assert.Equal(t, math.Vec2{}, c.Velocity)
	assert.Equal(t, Idle, c.State())
}

func TestSettledAfterMomentumDies(t *testing.T) {
	c := NewCamera(DefaultTuning())
	require.True(t, c.Settled(0.5), "a fresh camera is at rest")

	c.BeginDrag(math.Vec2{}, 0)
	c.UpdateDrag(math.Vec2{X: 10}, 16)
	assert.False(t, c.Settled(0.5), "dragging")
	c.EndDrag()
	assert.False(t, c.Settled(0.5), "momentum left")

	now := 16.0
	for i := 0; i < 600 && !c.Settled(0.5); i++ {
		now += 16.67
		c.Tick(now)
	}
	assert.True(t, c.Settled(0.5))
	assert.InDelta(t, c.Target.X, c.Offset.X, 0.5)

	c.Target.Z += 40
	assert.False(t, c.Settled(0.5), "zoomed away from target")
}
