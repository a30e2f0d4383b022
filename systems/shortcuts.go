package systems

import (
	cfg "github.com/automoto/folio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShortcuts handles the gallery keys: S shuffles, F toggles
// fullscreen, Home recentres the camera and F3 toggles the debug overlay.
func UpdateShortcuts(e *ecs.ECS) {
	g, ok := getGallery(e)
	if !ok {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ShuffleRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ResetCamera(e)
	}

	settings := GetOrCreateSettings(e)
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		settings.Fullscreen = !ebiten.IsFullscreen()
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.Debug = !settings.Debug
		cfg.Debug.Debug = settings.Debug
		changed = true
	}
	if changed {
		SaveSettings(e)
	}
}
