package components

import (
	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ProjectData is one gallery card. Project carries the world position that
// only a shuffle changes; the rest is recomputed every frame.
type ProjectData struct {
	Project    assets.Project
	Projection viewport.Projection
	Hover      viewport.Hover

	// Scale eases toward Hover.Scale.
	Scale       float64
	ScaleTarget float64
	ScaleTween  *gween.Tween

	Thumbnail *ebiten.Image
}

var Project = donburi.NewComponentType[ProjectData]()
