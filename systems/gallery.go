package systems

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getGallery(e *ecs.ECS) (*components.GalleryData, bool) {
	entry, ok := components.Gallery.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Gallery.Get(entry), true
}

func getCamera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

func getPointer(e *ecs.ECS) (*donburi.Entry, *components.PointerData, bool) {
	entry, ok := tags.Pointer.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Pointer.Get(entry), true
}

// MinimapRect is the minimap panel in screen space, top-right under the header.
func MinimapRect(g *components.GalleryData) viewport.Rect {
	m := g.Profile.Minimap
	return viewport.Rect{
		X: g.View.W - m.W - cfg.Minimap.Margin,
		Y: cfg.Gallery.HeaderHeight + cfg.Minimap.Margin,
		W: m.W,
		H: m.H,
	}
}

func galleryLayout(g *components.GalleryData) viewport.Layout {
	return viewport.Layout{
		View:      g.View,
		Minimap:   MinimapRect(g),
		WorldSize: g.Profile.WorldSize,
	}
}

// drawsBelow orders cards back to front: raised cards last, nearer cards
// (larger depth scale) after farther ones.
func drawsBelow(a, b *components.ProjectData) bool {
	if a.Hover.Raised != b.Hover.Raised {
		return !a.Hover.Raised
	}
	return a.Projection.ScaleZ < b.Projection.ScaleZ
}
