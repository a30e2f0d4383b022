package factory

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePreloader spawns the loading bar. The dark variant precedes the
// About page and is shorter.
func CreatePreloader(ecs *ecs.ECS, dark bool) *donburi.Entry {
	preloader := archetypes.Preloader.Spawn(ecs)

	data := &components.PreloaderData{
		Dark:    dark,
		MinMs:   cfg.Preloader.MinGalleryMs,
		Message: cfg.Preloader.GalleryMessage,
	}
	if dark {
		data.MinMs = cfg.Preloader.AboutMs
		data.Message = cfg.Preloader.AboutMessage
	}
	components.Preloader.Set(preloader, data)
	components.Tween.Set(preloader, gween.New(0, 0, cfg.Preloader.TweenSeconds, ease.OutQuad))
	return preloader
}
