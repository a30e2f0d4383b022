package textfx

// Reveal decodes a string left to right. Rune i stays noise until more than
// Spacing*i iterations have passed; spaces are never scrambled.
type Reveal struct {
	Original   string
	Iterations int
	Spacing    int
	StepMs     float64
	Charset    []rune

	rng       Rand
	text      string
	iteration int
	accumMs   float64
	active    bool
}

func NewReveal(original string, rng Rand) *Reveal {
	return &Reveal{
		Original:   original,
		Iterations: 20,
		Spacing:    3,
		StepMs:     DefaultStepMs,
		Charset:    []rune(RevealCharset),
		rng:        rng,
		text:       original,
	}
}

func (r *Reveal) Start() {
	r.active = true
	r.iteration = 0
	r.accumMs = 0
	r.step()
}

func (r *Reveal) Stop() {
	r.active = false
	r.text = r.Original
}

func (r *Reveal) Active() bool { return r.active }
func (r *Reveal) Text() string { return r.text }

func (r *Reveal) Update(elapsedMs float64) string {
	if !r.active {
		return r.text
	}
	r.accumMs += elapsedMs
	for r.active && r.accumMs >= r.StepMs {
		r.accumMs -= r.StepMs
		r.step()
	}
	return r.text
}

func (r *Reveal) step() {
	if r.iteration >= r.Iterations {
		r.Stop()
		return
	}
	src := []rune(r.Original)
	out := make([]rune, len(src))
	for i, c := range src {
		switch {
		case c == ' ':
			out[i] = ' '
		case r.iteration > i*r.Spacing:
			out[i] = c
		default:
			out[i] = r.Charset[r.rng.Intn(len(r.Charset))]
		}
	}
	r.text = string(out)
	r.iteration++
}
