// Package viewport implements the gallery camera rig: an exponentially
// smoothed virtual camera with drag momentum, wheel zoom, edge panning and a
// perspective projection of project cards into screen space.
//
// Nothing in this package touches Ebiten. Input arrives as Events pushed onto
// a Queue, which is drained once per frame before a single Tick.
package viewport

// Tuning holds the rig's motion constants. Times are in milliseconds.
type Tuning struct {
	Smoothing  float64 // fraction of the remaining distance covered per reference frame
	FrameMs    float64 // reference frame length
	MaxFrameMs float64 // elapsed time is capped here so stalls don't jump

	DragGain        float64 // pointer delta multiplier while dragging
	VelocityDecay   float64 // momentum kept per tick
	VelocityEpsilon float64 // momentum below this no longer moves the camera

	WheelGain float64 // target z change per wheel pixel

	EdgeThreshold float64 // px from a viewport edge where edge panning starts
	EdgeSpeed     float64 // max edge pan step, reached at distance 0
	EdgeMomentum  float64 // velocity = (target - offset) * EdgeMomentum while edge panning

	WheelFlash     float64
	ShuffleFlash   float64
	ShuffleFlashMs float64 // shuffle flash is cleared this long after the shuffle
	BlurDecay      float64 // blur kept per BlurStepMs
	BlurStepMs     float64
}

// DefaultTuning returns the constants the gallery ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Smoothing:  0.15,
		FrameMs:    16.67,
		MaxFrameMs: 32,

		DragGain:        2,
		VelocityDecay:   0.95,
		VelocityEpsilon: 0.01,

		WheelGain: 0.4,

		EdgeThreshold: 100,
		EdgeSpeed:     25,
		EdgeMomentum:  0.1,

		WheelFlash:     1,
		ShuffleFlash:   2,
		ShuffleFlashMs: 300,
		BlurDecay:      0.9,
		BlurStepMs:     16,
	}
}
