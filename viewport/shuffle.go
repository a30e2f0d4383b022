package viewport

// Rand is the subset of *rand.Rand the shuffle needs.
type Rand interface {
	Float64() float64
}

// Shuffle scatters entities over the world and sends the camera back to its
// starting depth. The input slice is left untouched; the new layout is
// returned. The blur flash pulse is cleared ShuffleFlashMs after nowMs.
func (c *Camera) Shuffle(entities []Entity, p Profile, rng Rand, nowMs float64) []Entity {
	spread := p.WorldSize * p.ShuffleSpread

	out := make([]Entity, len(entities))
	for i, e := range entities {
		e.X = (rng.Float64() - 0.5) * spread
		e.Y = (rng.Float64() - 0.5) * spread
		e.Z = rng.Float64()*p.ShuffleDepth() + p.ShuffleZMin
		out[i] = e
	}

	target := Vec3{Z: p.InitialZ}
	if p.TargetJitter > 0 {
		target.X = (rng.Float64() - 0.5) * spread * p.TargetJitter
		target.Y = (rng.Float64() - 0.5) * spread * p.TargetJitter
	}
	c.Target = target
	c.Velocity.X, c.Velocity.Y = 0, 0

	c.BlurFlash = c.tuning.ShuffleFlash
	c.flashClearAt = nowMs + c.tuning.ShuffleFlashMs
	return out
}
