package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/storage"
	"github.com/automoto/folio/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGallery(ecs *ecs.ECS, g assets.Gallery, profile viewport.Profile, store *storage.Store) *donburi.Entry {
	gallery := archetypes.Gallery.Spawn(ecs)
	components.Gallery.Set(gallery, &components.GalleryData{
		Title:   g.Title,
		Footer:  g.Footer,
		Social:  g.Social,
		Profile: profile,
		View:    viewport.Size{W: float64(cfg.C.Width), H: float64(cfg.C.Height)},
		Store:   store,
		Rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	return gallery
}
