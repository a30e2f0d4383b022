package scenes

import (
	"sync"

	"github.com/automoto/folio/assets"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/systems/factory"
	"github.com/automoto/folio/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AboutScene displays the About page using ebitenui for navigation
type AboutScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	aboutUI      *ui.AboutUI
	once         sync.Once
	shouldGoBack bool
}

// NewAboutScene creates a new About scene
func NewAboutScene(sc SceneChanger) *AboutScene {
	return &AboutScene{sceneChanger: sc}
}

func (as *AboutScene) Update() {
	as.once.Do(as.configure)

	as.ecs.Update()
	as.aboutUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		as.shouldGoBack = true
	}
	if as.shouldGoBack {
		as.sceneChanger.ChangeScene(NewGalleryScene(as.sceneChanger))
	}
}

func (as *AboutScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.About.Background)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.aboutUI.UI.Draw(screen)
}

func (as *AboutScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())

	as.ecs.AddSystem(systems.UpdateAbout)
	as.ecs.AddRenderer(cfg.Default, systems.DrawAbout)

	factory.CreateAbout(as.ecs, assets.MustLoadAbout())

	as.aboutUI = ui.NewAboutUI(func() { as.shouldGoBack = true })
}
