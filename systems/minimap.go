package systems

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawMinimap renders the overview panel: a dot per project and the box the
// screen currently covers.
func DrawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	g, ok := getGallery(e)
	if !ok {
		return
	}
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	_, pointer, _ := getPointer(e)

	r := MinimapRect(g)
	size := viewport.Size{W: r.W, H: r.H}
	ws := g.Profile.WorldSize

	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Minimap.Background, false)

	panel := screen.SubImage(rectImage(r)).(*ebiten.Image)
	tags.Project.Each(e.World, func(entry *donburi.Entry) {
		p := components.Project.Get(entry)
		pt := viewport.MinimapPoint(p.Project.X, p.Project.Y, ws, size)
		c := cfg.Minimap.DotColor
		if pointer != nil && pointer.Hovered == entry {
			c = cfg.Minimap.HoverDotColor
		}
		vector.FillCircle(panel, float32(r.X+pt.X), float32(r.Y+pt.Y), cfg.Minimap.DotRadius, c, true)
	})

	box := viewport.ViewportBox(camera.Rig.Offset, ws, size, g.View)
	vector.StrokeRect(panel, float32(r.X+box.X), float32(r.Y+box.Y), float32(box.W), float32(box.H), 1, cfg.Minimap.ViewportColor, false)

	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Minimap.Border, false)
}
