package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/folio/components"
	"github.com/automoto/folio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit-test object in the resolv space and prints
// the camera state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCard) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			} else if obj.HasTags(tags.ResolvHeader) {
				c = color.RGBA{0, 200, 0, 255} // Green
			} else if obj.HasTags(tags.ResolvCursor) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	rig := camera.Rig
	msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f\nstate %s  edge %t\ntarget %.0f %.0f %.0f\nvelocity %.2f %.2f\nblur %.2f",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		rig.State(), rig.EdgePanning,
		rig.Target.X, rig.Target.Y, rig.Target.Z,
		rig.Velocity.X, rig.Velocity.Y,
		rig.BlurFlash,
	)
	if g, ok := getGallery(ecs); ok {
		msg += fmt.Sprintf("\nprofile %s  header inverted %t light %t", g.Profile.Name, g.HeaderInverted, g.HeaderLight)
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 80)
}
