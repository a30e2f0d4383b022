package factory

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the rig resting at the profile's starting depth.
func CreateCamera(ecs *ecs.ECS, profile viewport.Profile) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	rig := viewport.NewCamera(cfg.Camera.Tuning)
	rig.Reset(profile.InitialZ)
	components.Camera.Set(camera, &components.CameraData{Rig: rig})
	return camera
}
