package textfx

import (
	"math/rand"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return r.n }

func TestScrambleRunsTenRoundsThenSettles(t *testing.T) {
	s := NewScramble("About", fixedRand{f: 0, n: 0})
	s.Start()

	got := s.Update(50)
	assert.Equal(t, "!!!!!", got)

	s.Update(50 * 9)
	assert.True(t, s.Active(), "ten rounds shown")

	assert.Equal(t, "About", s.Update(50))
	assert.False(t, s.Active())
}

func TestScrambleKeepsRunesAboveProbability(t *testing.T) {
	s := NewScramble("About", fixedRand{f: 0.7, n: 5})
	s.Start()
	assert.Equal(t, "About", s.Update(50))
	assert.True(t, s.Active())
}

func TestScrambleStopRestores(t *testing.T) {
	s := NewScramble("Name Here", rand.New(rand.NewSource(3)))
	s.Start()
	s.Update(120)
	s.Stop()

	assert.Equal(t, "Name Here", s.Text())
	assert.False(t, s.Active())
}

func TestScrambleOutputIsPrintableASCII(t *testing.T) {
	s := NewScramble("Portfolio", rand.New(rand.NewSource(11)))
	s.Start()
	for i := 0; i < 10; i++ {
		out := []rune(s.Update(50))
		require.Len(t, out, len("Portfolio"))
		for _, r := range out {
			assert.GreaterOrEqual(t, r, rune(33))
			assert.LessOrEqual(t, r, rune(126))
		}
	}
}

func TestScrambleIdleDoesNothing(t *testing.T) {
	s := NewScramble("About", fixedRand{})
	assert.Equal(t, "About", s.Update(1000))
}

func TestRevealSettlesLeftToRight(t *testing.T) {
	r := NewReveal("ab c", fixedRand{n: 0})
	r.Start()
	assert.Equal(t, "!! !", r.Text())

	assert.Equal(t, "a! !", r.Update(50))
	assert.Equal(t, "a! !", r.Update(100))
	assert.Equal(t, "ab !", r.Update(50))

	r.Update(50 * 6)
	assert.Equal(t, "ab c", r.Text())
	assert.True(t, r.Active())

	r.Update(50 * 10)
	assert.False(t, r.Active())
	assert.Equal(t, "ab c", r.Text())
}

func TestRevealUsesCharsetAndKeepsSpaces(t *testing.T) {
	r := NewReveal("HELLO WORLD", rand.New(rand.NewSource(5)))
	r.Start()

	out := []rune(r.Text())
	assert.Equal(t, ' ', out[5])
	for i, c := range out {
		if i == 5 {
			continue
		}
		assert.False(t, unicode.IsLetter(c))
		assert.Contains(t, RevealCharset, string(c))
	}
}
