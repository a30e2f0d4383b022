package factory

import (
	"os"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/logging"
	"github.com/automoto/folio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	_ "image/jpeg"
	_ "image/png"
)

// CreateProject spawns a card. Its hit-test object starts empty and is
// placed by the hover system once the card has been projected.
func CreateProject(ecs *ecs.ECS, p assets.Project) *donburi.Entry {
	project := archetypes.Project.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvCard)
	obj.Data = project
	components.Object.SetValue(project, components.ObjectData{Object: obj})

	rest := cfg.Profile.RestScale
	components.Project.SetValue(project, components.ProjectData{
		Project:     p,
		Scale:       rest,
		ScaleTarget: rest,
		Thumbnail:   loadThumbnail(p),
	})
	return project
}

func loadThumbnail(p assets.Project) *ebiten.Image {
	if cfg.Debug.ThumbnailDir == "" || p.Thumbnail == "" {
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(os.DirFS(cfg.Debug.ThumbnailDir), p.Thumbnail)
	if err != nil {
		logging.Named("gallery").Debug("thumbnail unavailable",
			zap.String("project", p.ID), zap.String("path", p.Thumbnail), zap.Error(err))
		return nil
	}
	return img
}
