package systems

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCursorTrail records the pointer position and forgets samples older
// than the trail length.
func UpdateCursorTrail(e *ecs.ECS) {
	_, pointer, ok := getPointer(e)
	if !ok {
		return
	}
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	now := camera.ClockMs

	n := len(pointer.Trail)
	if pointer.Inside && (n == 0 || pointer.Trail[n-1].Pos != pointer.Pos) {
		pointer.Trail = append(pointer.Trail, components.TrailSample{Pos: pointer.Pos, TimeMs: now})
	}

	keep := 0
	for keep < len(pointer.Trail) && now-pointer.Trail[keep].TimeMs > cfg.Cursor.TrailMs {
		keep++
	}
	pointer.Trail = append(pointer.Trail[:0], pointer.Trail[keep:]...)
}

// DrawCursor renders the trail, a "+" cross at the pointer and the hovered
// project's name beside it.
func DrawCursor(e *ecs.ECS, screen *ebiten.Image) {
	_, pointer, ok := getPointer(e)
	if !ok || !pointer.Inside || pointer.OverUI {
		return
	}

	trail := pointer.Trail
	for i := 1; i < len(trail); i++ {
		a, b := trail[i-1].Pos, trail[i].Pos
		c := cfg.Cursor.TrailColor
		c.A = uint8(int(c.A) * i / len(trail))
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), cfg.Cursor.Thickness, c, true)
	}

	x, y := float32(pointer.Pos.X), float32(pointer.Pos.Y)
	s := cfg.Cursor.Size
	vector.StrokeLine(screen, x-s, y, x+s, y, cfg.Cursor.Thickness, cfg.Cursor.Color, false)
	vector.StrokeLine(screen, x, y-s, x, y+s, cfg.Cursor.Thickness, cfg.Cursor.Color, false)

	if pointer.Hovered != nil {
		name := components.Project.Get(pointer.Hovered).Project.Name
		text.Draw(screen, name, fonts.Small.Get(), int(x+s+4), int(y-s), cfg.Cursor.LabelColor)
	}
}
