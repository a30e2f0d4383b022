package systems

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/viewport"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjection maps every card into screen space for this frame and
// eases its hover scale toward the tier the pointer puts it in.
func UpdateProjection(e *ecs.ECS) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	g, ok := getGallery(e)
	if !ok {
		return
	}
	_, pointer, ok := getPointer(e)
	if !ok {
		return
	}

	dt := float32(cfg.Camera.FrameMs / 1000)
	rest := viewport.Hover{Scale: g.Profile.RestScale}

	tags.Project.Each(e.World, func(entry *donburi.Entry) {
		p := components.Project.Get(entry)
		p.Projection = viewport.Project(p.Project.Entity, camera.Rig.Offset, g.Profile, g.View)

		switch {
		case !p.Projection.Visible, !pointer.Inside:
			p.Hover = rest
		default:
			p.Hover = viewport.HoverScale(p.Projection, pointer.Pos, g.Profile)
		}

		easeScale(p, p.Hover.Scale, dt)
	})
}

func easeScale(p *components.ProjectData, target float64, dt float32) {
	if target != p.ScaleTarget {
		p.ScaleTarget = target
		p.ScaleTween = gween.New(float32(p.Scale), float32(target), cfg.Gallery.HoverTweenSeconds, ease.OutCubic)
	}
	if p.ScaleTween == nil {
		return
	}
	current, done := p.ScaleTween.Update(dt)
	p.Scale = float64(current)
	if done {
		p.ScaleTween = nil
	}
}
