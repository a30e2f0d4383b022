// Package textfx animates header labels: a noisy hover scramble and a
// left-to-right decoding reveal. Both are stepped by elapsed milliseconds so
// the frame loop can drive them from its fixed tick.
package textfx

const (
	DefaultStepMs = 50.0

	printableLo = 33
	printableN  = 94 // '!'..'~'

	RevealCharset = "!@#$%^&*()_+-=[]{}|;:,.<>?/~`"
)

// Rand is the subset of *rand.Rand the effects draw from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Scramble replaces each rune with random printable ASCII with probability
// P on every step, for Rounds steps, then settles on the original text.
type Scramble struct {
	Original string
	P        float64
	Rounds   int
	StepMs   float64

	rng     Rand
	text    string
	round   int
	accumMs float64
	active  bool
}

func NewScramble(original string, rng Rand) *Scramble {
	return &Scramble{
		Original: original,
		P:        0.7,
		Rounds:   10,
		StepMs:   DefaultStepMs,
		rng:      rng,
		text:     original,
	}
}

// Start restarts the effect from the first round.
func (s *Scramble) Start() {
	s.active = true
	s.round = 0
	s.accumMs = 0
}

// Stop cancels the effect and restores the original text.
func (s *Scramble) Stop() {
	s.active = false
	s.text = s.Original
}

func (s *Scramble) Active() bool { return s.active }
func (s *Scramble) Text() string { return s.text }

// Update advances the effect by elapsedMs and returns the text to show.
func (s *Scramble) Update(elapsedMs float64) string {
	if !s.active {
		return s.text
	}
	s.accumMs += elapsedMs
	for s.active && s.accumMs >= s.StepMs {
		s.accumMs -= s.StepMs
		s.step()
	}
	return s.text
}

func (s *Scramble) step() {
	if s.round >= s.Rounds {
		s.Stop()
		return
	}
	src := []rune(s.Original)
	out := make([]rune, len(src))
	for i, r := range src {
		if s.rng.Float64() < s.P {
			out[i] = rune(printableLo + s.rng.Intn(printableN))
		} else {
			out[i] = r
		}
	}
	s.text = string(out)
	s.round++
}
