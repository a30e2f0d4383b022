package systems

import (
	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/logging"
	"github.com/automoto/folio/storage"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var store *storage.Store

// InitPersistence installs the store scenes read and write. A nil store
// disables persistence.
func InitPersistence(s *storage.Store) {
	store = s
}

// Store returns the installed store, possibly nil.
func Store() *storage.Store {
	return store
}

// RestoreLayout applies a saved layout for profile to g. The returned
// offset is where the camera was looking, or nil if nothing was saved.
func RestoreLayout(g assets.Gallery, profile string) (assets.Gallery, *viewport.Vec3) {
	layout, err := store.LoadLayout(profile)
	if err != nil {
		logging.Named("storage").Warn("ignoring saved layout", zap.String("profile", profile), zap.Error(err))
		return g, nil
	}
	if layout == nil {
		return g, nil
	}
	offset := layout.Offset
	return g.WithLayout(layout.Projects), &offset
}

// SaveLayout stores the current card positions and camera target.
func SaveLayout(e *ecs.ECS) {
	g, ok := getGallery(e)
	if !ok {
		return
	}
	camera, ok := getCamera(e)
	if !ok {
		return
	}

	layout := storage.Layout{
		Profile: g.Profile.Name,
		Offset:  camera.Rig.Target,
	}
	tags.Project.Each(e.World, func(entry *donburi.Entry) {
		layout.Projects = append(layout.Projects, components.Project.Get(entry).Project.Entity)
	})

	if err := g.Store.SaveLayout(layout); err != nil {
		logging.Named("storage").Warn("could not save layout", zap.Error(err))
	}
}

// ApplySavedSettings copies stored window settings into the global config
// before the first scene is built.
func ApplySavedSettings() {
	saved, err := store.LoadSettings()
	if err != nil {
		logging.Named("storage").Warn("ignoring saved settings", zap.Error(err))
		return
	}
	if saved == nil {
		return
	}
	cfg.Debug.Debug = cfg.Debug.Debug || saved.Debug
	ebiten.SetFullscreen(saved.Fullscreen)
}

// SaveSettings stores the current settings.
func SaveSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	err := store.SaveSettings(storage.Settings{
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	})
	if err != nil {
		logging.Named("storage").Warn("could not save settings", zap.Error(err))
	}
}
