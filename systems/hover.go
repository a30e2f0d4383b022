package systems

import (
	"github.com/automoto/folio/components"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/viewport"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateHover moves each card's hit-test object to where the card is drawn,
// then resolves which card is under the pointer and whether any card sits
// under the header. The resolv grid narrows the candidates; rectangles
// decide.
func UpdateHover(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	g, ok := getGallery(e)
	if !ok {
		return
	}
	pointerEntry, pointer, ok := getPointer(e)
	if !ok {
		return
	}

	screen := viewport.Rect{W: g.View.W, H: g.View.H}
	tags.Project.Each(e.World, func(entry *donburi.Entry) {
		p := components.Project.Get(entry)
		obj := components.Object.Get(entry).Object

		r, onScreen := clip(p.Projection.DrawRect(p.Scale), screen)
		if !p.Projection.Visible || !onScreen {
			if obj.Space != nil {
				space.Remove(obj)
			}
			return
		}
		place(obj, r)
		if obj.Space == nil {
			space.Add(obj)
		}
	})

	cursor := components.Object.Get(pointerEntry).Object
	cursor.X, cursor.Y = pointer.Pos.X, pointer.Pos.Y
	cursor.Update()

	pointer.Hovered = nil
	if pointer.CanHover(MinimapRect(g)) {
		pointer.Hovered = topmostAt(cursor, pointer.Pos)
	}

	updateHeader(e, g)
}

func topmostAt(probe *resolv.Object, at math.Vec2) *donburi.Entry {
	check := probe.Check(0, 0, tags.ResolvCard)
	if check == nil {
		return nil
	}
	var best *donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvCard) {
		entry := obj.Data.(*donburi.Entry)
		p := components.Project.Get(entry)
		if !p.Projection.DrawRect(p.Scale).Contains(at) {
			continue
		}
		if best == nil || drawsBelow(components.Project.Get(best), p) {
			best = entry
		}
	}
	return best
}

func updateHeader(e *ecs.ECS, g *components.GalleryData) {
	g.HeaderInverted, g.HeaderLight = false, false

	tags.Header.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		if obj.Space == nil {
			return
		}
		check := obj.Check(0, 0, tags.ResolvCard)
		if check == nil {
			return
		}
		area := viewport.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		for _, card := range check.ObjectsByTags(tags.ResolvCard) {
			p := components.Project.Get(card.Data.(*donburi.Entry))
			drawn := p.Projection.DrawRect(p.Scale)
			switch {
			case obj.HasTags(tags.ResolvHeader) && drawn.Overlaps(area):
				g.HeaderInverted = true
			case obj.HasTags(tags.ResolvCentre) && drawn.Contains(area.Center()):
				g.HeaderLight = true
			}
		}
	})
}

func place(obj *resolv.Object, r viewport.Rect) {
	obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
	obj.Update()
}

// clip limits r to bounds so huge close-up cards don't span thousands of
// grid cells.
func clip(r, bounds viewport.Rect) (viewport.Rect, bool) {
	x0, y0 := max(r.X, bounds.X), max(r.Y, bounds.Y)
	x1, y1 := min(r.X+r.W, bounds.X+bounds.W), min(r.Y+r.H, bounds.Y+bounds.H)
	if x1 <= x0 || y1 <= y0 {
		return viewport.Rect{}, false
	}
	return viewport.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}
