package systems

import (
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/logging"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCamera applies queued input in arrival order, then advances the rig
// by one frame.
func UpdateCamera(e *ecs.ECS) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	g, ok := getGallery(e)
	if !ok {
		return
	}

	before := camera.Rig.State()
	camera.Events.Drain(camera.Rig, galleryLayout(g))
	if after := camera.Rig.State(); after != before {
		logging.Named("camera").Debug("state changed",
			zap.Stringer("from", before),
			zap.Stringer("to", after),
		)
	}

	camera.Rig.Tick(camera.ClockMs)

	settled := camera.Rig.Settled(cfg.Camera.SettleTolerance)
	if !settled {
		camera.Unsaved = true
	} else if camera.Unsaved {
		camera.Unsaved = false
		SaveLayout(e)
	}
}

// ResetCamera sends the camera home to the profile's starting depth.
func ResetCamera(e *ecs.ECS) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	g, ok := getGallery(e)
	if !ok {
		return
	}
	camera.Rig.Reset(g.Profile.InitialZ)
}
