package viewport

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestEdgeIntensity(t *testing.T) {
	assert.Equal(t, 25.0, EdgeIntensity(0, 100, 25))
	assert.Equal(t, 6.25, EdgeIntensity(50, 100, 25))
	assert.Equal(t, 0.0, EdgeIntensity(100, 100, 25))
	assert.Equal(t, 0.0, EdgeIntensity(150, 100, 25))

	prev := EdgeIntensity(0, 100, 25)
	for d := 1.0; d < 100; d++ {
		cur := EdgeIntensity(d, 100, 25)
		require.Less(t, cur, prev, "falloff at %v", d)
		prev = cur
	}
}

func TestApplyEdgePan(t *testing.T) {
	view := Size{W: 1000, H: 800}

	t.Run("left edge", func(t *testing.T) {
		c := NewCamera(DefaultTuning())
		assert.True(t, c.ApplyEdgePan(math.Vec2{X: 50, Y: 400}, view))
		assert.Equal(t, 6.25, c.Target.X)
		assert.Equal(t, 0.0, c.Target.Y)
		assert.InDelta(t, 0.625, c.Velocity.X, 1e-12)
		assert.True(t, c.EdgePanning)
	})

	t.Run("bottom right corner", func(t *testing.T) {
		c := NewCamera(DefaultTuning())
		assert.True(t, c.ApplyEdgePan(math.Vec2{X: 1000, Y: 800}, view))
		assert.Equal(t, -25.0, c.Target.X)
		assert.Equal(t, -25.0, c.Target.Y)
	})

	t.Run("at threshold", func(t *testing.T) {
		c := NewCamera(DefaultTuning())
		c.EdgePanning = true
		assert.False(t, c.ApplyEdgePan(math.Vec2{X: 100, Y: 100}, view))
		assert.Equal(t, Vec3{}, c.Target)
		assert.False(t, c.EdgePanning)
	})
}

func TestPanToMinimapPoint(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Target.Z = 42
	view := Size{W: 1000, H: 800}
	mm := Size{W: 180, H: 120}

	c.PanToMinimapPoint(math.Vec2{X: 20, Y: 30}, 4000, mm, view)
	assert.InDelta(t, 20/(180.0/4000)-500, c.Target.X, 1e-9)
	assert.InDelta(t, 30/(120.0/4000)-400, c.Target.Y, 1e-9)
	assert.Equal(t, 42.0, c.Target.Z)

	c.PanToMinimapPoint(math.Vec2{X: 900, Y: -300}, 4000, mm, view)
	assert.Equal(t, 2000.0, c.Target.X)
	assert.Equal(t, -2000.0, c.Target.Y)
}

func TestViewportBox(t *testing.T) {
	box := ViewportBox(Vec3{X: -2000, Y: 0}, 4000, Size{W: 200, H: 100}, Size{W: 1000, H: 800})

	assert.InDelta(t, 0, box.X, 1e-9)
	assert.InDelta(t, 50, box.Y, 1e-9)
	assert.InDelta(t, 50, box.W, 1e-9)
	assert.InDelta(t, 20, box.H, 1e-9)
}

type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestShuffleBounds(t *testing.T) {
	entities := make([]Entity, 50)
	for i := range entities {
		entities[i] = Entity{ID: string(rune('a' + i%26)), X: 1, Y: 2, Z: 3}
	}

	for _, p := range []Profile{DesktopProfile(), MobileProfile()} {
		t.Run(p.Name, func(t *testing.T) {
			c := NewCamera(DefaultTuning())
			c.Velocity = math.Vec2{X: 3, Y: -7}
			rng := rand.New(rand.NewSource(7))

			out := c.Shuffle(entities, p, rng, 0)
			require.Len(t, out, len(entities))

			half := p.WorldSize * p.ShuffleSpread / 2
			for i, e := range out {
				assert.Equal(t, entities[i].ID, e.ID)
				assert.GreaterOrEqual(t, e.X, -half)
				assert.Less(t, e.X, half)
				assert.GreaterOrEqual(t, e.Y, -half)
				assert.Less(t, e.Y, half)
				assert.GreaterOrEqual(t, e.Z, p.ShuffleZMin)
				assert.Less(t, e.Z, p.ShuffleZMin+p.ShuffleDepth())
			}
			assert.Equal(t, math.Vec2{}, c.Velocity)
			assert.Equal(t, 2.0, c.BlurFlash)
			assert.Equal(t, p.InitialZ, c.Target.Z)
			assert.LessOrEqual(t, c.Target.X, half*p.TargetJitter)
			assert.GreaterOrEqual(t, c.Target.X, -half*p.TargetJitter)
		})
	}

	assert.Equal(t, Entity{ID: "a", X: 1, Y: 2, Z: 3}, entities[0], "input untouched")
}

func TestShuffleDesktopRecentres(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Target = Vec3{X: 300, Y: 300, Z: 900}

	out := c.Shuffle([]Entity{{ID: "x"}}, DesktopProfile(), &seqRand{vals: []float64{0, 0.5, 0.25}}, 0)

	assert.Equal(t, Vec3{}, c.Target)
	assert.Equal(t, Entity{ID: "x", X: -2000, Y: 0, Z: 250}, out[0])
}

func TestShuffleFlashClears(t *testing.T) {
	c := NewCamera(DefaultTuning())
	c.Tick(1000)
	c.Shuffle(nil, DesktopProfile(), &seqRand{vals: []float64{0.5}}, 1000)

	c.Tick(1016)
	assert.InDelta(t, 1.8, c.BlurFlash, 1e-9)

	c.Tick(1300)
	assert.Equal(t, 0.0, c.BlurFlash)
}

func TestQueueDrainsInOrder(t *testing.T) {
	c := NewCamera(DefaultTuning())
	l := Layout{View: Size{W: 1000, H: 800}, Minimap: Rect{X: 800, Y: 20, W: 180, H: 120}, WorldSize: 4000}
	var q Queue

	q.Push(Event{Kind: PointerDown, Source: Touch, Pos: math.Vec2{X: 500, Y: 400}, TimeMs: 0})
	q.Push(Event{Kind: PointerMove, Source: Touch, Pos: math.Vec2{X: 530, Y: 380}, TimeMs: 10})
	q.Push(Event{Kind: PointerUp, Source: Touch, Pos: math.Vec2{X: 530, Y: 380}, TimeMs: 20})
	q.Push(Event{Kind: Wheel, DeltaY: 250, TimeMs: 20})
	require.Equal(t, 4, q.Len())

	n := q.Drain(c, l)

	assert.Equal(t, 4, n)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, Vec3{X: 60, Y: -40, Z: 100}, c.Target)
	assert.InDelta(t, 6, c.Velocity.X, 1e-9)
}

func TestQueueMinimapDrag(t *testing.T) {
	c := NewCamera(DefaultTuning())
	l := Layout{View: Size{W: 1000, H: 800}, Minimap: Rect{X: 800, Y: 20, W: 180, H: 120}, WorldSize: 4000}
	var q Queue

	q.Push(Event{Kind: MinimapDown, Source: Touch, Pos: math.Vec2{X: 890, Y: 80}})
	q.Drain(c, l)
	assert.Equal(t, MinimapDragging, c.State())
	assert.InDelta(t, 1500, c.Target.X, 1e-9)
	assert.InDelta(t, 1600, c.Target.Y, 1e-9)

	// Dragging past the panel clamps to the world edge.
	q.Push(Event{Kind: PointerMove, Source: Touch, Pos: math.Vec2{X: 2000, Y: -500}})
	q.Push(Event{Kind: PointerUp, Source: Touch})
	q.Drain(c, l)
	assert.Equal(t, 2000.0, c.Target.X)
	assert.Equal(t, -2000.0, c.Target.Y)
	assert.Equal(t, Idle, c.State())
}

func TestQueueEdgePanMouseOnly(t *testing.T) {
	l := Layout{View: Size{W: 1000, H: 800}, WorldSize: 4000}
	edge := math.Vec2{X: 0, Y: 400}

	touch := NewCamera(DefaultTuning())
	var q Queue
	q.Push(Event{Kind: PointerMove, Source: Touch, Pos: edge})
	q.Drain(touch, l)
	assert.False(t, touch.EdgePanning)

	mouse := NewCamera(DefaultTuning())
	q.Push(Event{Kind: PointerMove, Source: Mouse, Pos: edge})
	q.Drain(mouse, l)
	assert.True(t, mouse.EdgePanning)
	assert.Equal(t, 25.0, mouse.Target.X)
}
