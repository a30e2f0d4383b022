package systems

import (
	"fmt"
	"image"
	"math"

	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the camera position in the bottom-right corner, the footer
// in the bottom-left and any transient status line above it.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	g, ok := getGallery(e)
	if !ok {
		return
	}
	camera, ok := getCamera(e)
	if !ok {
		return
	}

	margin := int(cfg.HUD.Margin)
	height := int(g.View.H)
	face := fonts.Mono.Get()

	pos := PositionLabel(camera.Rig.Offset)
	posWidth := text.BoundString(face, pos).Dx()
	text.Draw(screen, pos, face, int(g.View.W)-margin-posWidth, height-margin, cfg.HUD.PositionColor)

	small := fonts.Small.Get()
	if g.Footer != "" {
		text.Draw(screen, g.Footer, small, margin, height-margin, cfg.HUD.FooterColor)
	}
	if g.Status != "" && camera.ClockMs < g.StatusUntilMs {
		text.Draw(screen, g.Status, small, margin, height-margin-18, cfg.HUD.PositionColor)
	}
}

// PositionLabel formats the camera offset the way the position display
// shows it.
func PositionLabel(offset viewport.Vec3) string {
	return fmt.Sprintf("X: %d Y: %d Z: %d",
		int(math.Round(offset.X)), int(math.Round(offset.Y)), int(math.Round(offset.Z)))
}

func rectImage(r viewport.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
}
