package systems

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, seeding it from the
// command line on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	ent := e.World.Entry(e.World.Create(components.Settings))
	components.Settings.SetValue(ent, components.SettingsData{
		Debug:      cfg.Debug.Debug,
		Fullscreen: ebiten.IsFullscreen(),
	})
	return components.Settings.Get(ent)
}
