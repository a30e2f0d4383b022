package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var preloaderRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// UpdatePreloader fills the bar by a random 1-4% every step. The light bar
// is done once full and shown for its minimum time; the dark one only waits
// out its time.
func UpdatePreloader(e *ecs.ECS) {
	entry, ok := components.Preloader.First(e.World)
	if !ok {
		return
	}
	p := components.Preloader.Get(entry)
	frame := cfg.Camera.FrameMs

	p.ElapsedMs += frame
	p.AccumMs += frame
	stepped := false
	for p.AccumMs >= cfg.Preloader.StepMs && p.Progress < 100 {
		p.AccumMs -= cfg.Preloader.StepMs
		p.Progress = min(100, p.Progress+preloaderRand.Float64()*3+1)
		stepped = true
	}
	if stepped {
		components.Tween.Set(entry, gween.New(float32(p.Displayed), float32(p.Progress), cfg.Preloader.TweenSeconds, ease.OutQuad))
	}

	displayed, _ := components.Tween.Get(entry).Update(float32(frame / 1000))
	p.Displayed = float64(displayed)

	p.Done = p.ElapsedMs >= p.MinMs && (p.Dark || p.Progress >= 100)
}

func DrawPreloader(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Preloader.First(e.World)
	if !ok {
		return
	}
	p := components.Preloader.Get(entry)

	bg, fg := cfg.Preloader.LightBG, cfg.Preloader.LightFG
	if p.Dark {
		bg, fg = cfg.Preloader.DarkBG, cfg.Preloader.DarkFG
	}
	screen.Fill(bg)

	b := screen.Bounds()
	w, h := cfg.Preloader.BarWidth, cfg.Preloader.BarHeight
	x := (float64(b.Dx()) - w) / 2
	y := float64(b.Dy()) / 2

	vector.FillRect(screen, float32(x), float32(y), float32(w*p.Displayed/100), float32(h), fg, false)

	face := fonts.Regular.Get()
	text.Draw(screen, p.Message, face, int(x), int(y)-12, fg)
	pct := fmt.Sprintf("%d%%", int(p.Displayed))
	text.Draw(screen, pct, face, int(x+w)-text.BoundString(face, pct).Dx(), int(y)-12, fg)
}

// PreloaderDone reports whether the loading bar has finished.
func PreloaderDone(e *ecs.ECS) bool {
	entry, ok := components.Preloader.First(e.World)
	if !ok {
		return true
	}
	return components.Preloader.Get(entry).Done
}
