package factory

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHeader spawns two hit-test objects: the full header strip and a
// single point at its centre.
func CreateHeader(ecs *ecs.ECS, width float64) (strip, centre *donburi.Entry) {
	strip = archetypes.Header.Spawn(ecs)
	obj := resolv.NewObject(0, 0, width, cfg.Gallery.HeaderHeight, tags.ResolvHeader)
	obj.Data = strip
	components.Object.SetValue(strip, components.ObjectData{Object: obj})

	centre = archetypes.Header.Spawn(ecs)
	dot := resolv.NewObject(width/2, cfg.Gallery.HeaderHeight/2, 1, 1, tags.ResolvCentre)
	dot.Data = centre
	components.Object.SetValue(centre, components.ObjectData{Object: dot})
	return strip, centre
}
