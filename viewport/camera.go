package viewport

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// State is the rig's input mode. Edge panning is tracked separately since it
// can happen in any state.
type State int

const (
	Idle State = iota
	Dragging
	MinimapDragging
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case MinimapDragging:
		return "minimap"
	default:
		return "idle"
	}
}

// Camera is the gallery's virtual camera. Offset eases toward Target every
// Tick; input handlers only ever move Target and Velocity.
type Camera struct {
	Offset   Vec3
	Target   Vec3
	Velocity math.Vec2

	// BlurFlash is a transient 0..2 intensity for the motion blur filter.
	BlurFlash   float64
	EdgePanning bool

	tuning Tuning
	state  State

	lastPos      math.Vec2
	lastSampleMs float64

	lastTickMs   float64
	blurAccumMs  float64
	flashClearAt float64 // 0 when no forced clear is pending
}

// NewCamera returns an idle camera at the origin.
func NewCamera(t Tuning) *Camera {
	return &Camera{tuning: t}
}

func (c *Camera) Tuning() Tuning { return c.tuning }
func (c *Camera) State() State   { return c.state }

// Reset puts the camera and its target at (0, 0, z) and stops all motion.
func (c *Camera) Reset(z float64) {
	c.Offset = Vec3{Z: z}
	c.Target = Vec3{Z: z}
	c.Velocity = math.Vec2{}
	c.state = Idle
	c.EdgePanning = false
}

// BeginDrag enters Dragging with pos as the first sample.
func (c *Camera) BeginDrag(pos math.Vec2, nowMs float64) {
	c.state = Dragging
	c.lastPos = pos
	c.lastSampleMs = nowMs
}

// UpdateDrag moves the target by the pointer delta since the previous
// sample and records the instantaneous velocity for momentum.
func (c *Camera) UpdateDrag(pos math.Vec2, nowMs float64) {
	if c.state != Dragging {
		return
	}
	dx := pos.X - c.lastPos.X
	dy := pos.Y - c.lastPos.Y
	gain := c.tuning.DragGain

	if elapsed := nowMs - c.lastSampleMs; elapsed > 0 {
		c.Velocity = math.Vec2{X: dx * gain / elapsed, Y: dy * gain / elapsed}
	}
	c.Target.X += dx * gain
	c.Target.Y += dy * gain

	c.lastPos = pos
	c.lastSampleMs = nowMs
}

// EndDrag leaves Dragging or MinimapDragging. Velocity is kept and decays
// over the following ticks.
func (c *Camera) EndDrag() {
	c.state = Idle
}

// Settled reports whether the camera has come to rest: idle, without
// momentum and within tol of its target on every axis.
func (c *Camera) Settled(tol float64) bool {
	if c.state != Idle {
		return false
	}
	eps := c.tuning.VelocityEpsilon
	if stdmath.Abs(c.Velocity.X) > eps || stdmath.Abs(c.Velocity.Y) > eps {
		return false
	}
	return stdmath.Abs(c.Target.X-c.Offset.X) <= tol &&
		stdmath.Abs(c.Target.Y-c.Offset.Y) <= tol &&
		stdmath.Abs(c.Target.Z-c.Offset.Z) <= tol
}

// ApplyWheel zooms along z and flashes the blur filter.
func (c *Camera) ApplyWheel(deltaY float64) {
	c.Target.Z += deltaY * c.tuning.WheelGain
	c.BlurFlash = c.tuning.WheelFlash
}

// Tick advances the camera to nowMs. It must be called once per frame after
// the frame's input has been applied.
func (c *Camera) Tick(nowMs float64) {
	elapsed := nowMs - c.lastTickMs
	if elapsed < 0 {
		elapsed = 0
	}
	c.lastTickMs = nowMs

	dt := stdmath.Min(elapsed, c.tuning.MaxFrameMs) / c.tuning.FrameMs
	k := c.tuning.Smoothing * dt

	c.Offset.X += (c.Target.X - c.Offset.X) * k
	c.Offset.Y += (c.Target.Y - c.Offset.Y) * k
	c.Offset.Z += (c.Target.Z - c.Offset.Z) * k

	if c.state == Idle {
		c.Velocity.X *= c.tuning.VelocityDecay
		c.Velocity.Y *= c.tuning.VelocityDecay

		eps := c.tuning.VelocityEpsilon
		if stdmath.Abs(c.Velocity.X) > eps || stdmath.Abs(c.Velocity.Y) > eps {
			c.Offset.X += c.Velocity.X
			c.Offset.Y += c.Velocity.Y
		}
	}

	c.decayBlur(elapsed, nowMs)
}

func (c *Camera) decayBlur(elapsed, nowMs float64) {
	if c.flashClearAt > 0 && nowMs >= c.flashClearAt {
		c.BlurFlash = 0
		c.flashClearAt = 0
	}
	if c.tuning.BlurStepMs <= 0 {
		return
	}
	c.blurAccumMs += elapsed
	steps := stdmath.Floor(c.blurAccumMs / c.tuning.BlurStepMs)
	if steps <= 0 {
		return
	}
	c.blurAccumMs -= steps * c.tuning.BlurStepMs
	c.BlurFlash *= stdmath.Pow(c.tuning.BlurDecay, steps)
}
