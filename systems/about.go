package systems

import (
	"image"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	aboutMargin = 64
	aboutTop    = 140
	columnGap   = 48
	lineHeight  = 20
)

// UpdateAbout steps the heading reveal and scrolls the log panel, wrapping
// around once every line has passed.
func UpdateAbout(e *ecs.ECS) {
	entry, ok := components.About.First(e.World)
	if !ok {
		return
	}
	a := components.About.Get(entry)
	a.Heading.Update(cfg.Camera.FrameMs)

	total := float64(len(a.Content.Log)) * cfg.About.LogLineHeight
	if total == 0 {
		return
	}
	a.LogY += cfg.About.LogSpeed * cfg.Camera.FrameMs / 1000
	for a.LogY >= total {
		a.LogY -= total
	}
}

func DrawAbout(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.About.First(e.World)
	if !ok {
		return
	}
	a := components.About.Get(entry)
	screen.Fill(cfg.About.Background)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	column := (width - 2*aboutMargin - columnGap) / 2

	text.Draw(screen, a.Heading.Text(), fonts.Title.Get(), aboutMargin, aboutTop-40, cfg.About.AccentColor)

	// Left column: description and skills.
	regular := fonts.Regular.Get()
	y := aboutTop
	for _, line := range fonts.Wrap(regular, a.Content.Description, column) {
		text.Draw(screen, line, regular, aboutMargin, y, cfg.About.TextColor)
		y += lineHeight
	}
	y += lineHeight
	bold := fonts.Bold.Get()
	text.Draw(screen, "SKILLS", bold, aboutMargin, y, cfg.About.AccentColor)
	y += lineHeight + 4
	for _, skill := range a.Content.Skills {
		text.Draw(screen, "+ "+skill, regular, aboutMargin, y, cfg.About.TextColor)
		y += lineHeight
	}

	// Right column: experience.
	x := aboutMargin + column + columnGap
	y = aboutTop
	text.Draw(screen, "EXPERIENCE", bold, x, y, cfg.About.AccentColor)
	y += lineHeight + 4
	small := fonts.Small.Get()
	for _, exp := range a.Content.Experience {
		text.Draw(screen, exp.Title+" / "+exp.Company, regular, x, y, cfg.About.AccentColor)
		y += lineHeight - 4
		text.Draw(screen, exp.Period, small, x, y, cfg.About.TextColor)
		y += lineHeight
		for _, line := range fonts.Wrap(small, exp.Description, column) {
			text.Draw(screen, line, small, x, y, cfg.About.TextColor)
			y += lineHeight - 4
		}
		y += lineHeight / 2
	}

	drawLog(screen, a, image.Rect(x, height-aboutMargin-int(cfg.About.LogHeight), x+column, height-aboutMargin))
}

// drawLog draws the log twice, one copy after the other, so the scroll
// wraps without a gap.
func drawLog(screen *ebiten.Image, a *components.AboutData, r image.Rectangle) {
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, cfg.About.TextColor, false)
	panel := screen.SubImage(r.Inset(1)).(*ebiten.Image)

	face := fonts.Mono.Get()
	lh := cfg.About.LogLineHeight
	total := float64(len(a.Content.Log)) * lh
	for pass := 0; pass < 2; pass++ {
		for i, line := range a.Content.Log {
			y := float64(r.Min.Y) + lh*float64(i+1) + total*float64(pass) - a.LogY
			if y < float64(r.Min.Y) || y > float64(r.Max.Y)+lh {
				continue
			}
			text.Draw(panel, "> "+line, face, r.Min.X+8, int(y), cfg.About.TextColor)
		}
	}
}
