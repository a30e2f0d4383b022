package scenes

import (
	"sync"

	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PreloaderScene shows a loading bar, then hands over to the next scene
type PreloaderScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	next         func() interface{}
	dark         bool
	once         sync.Once
}

// NewPreloaderScene creates a light preloader, shown before the gallery
func NewPreloaderScene(sc SceneChanger, next func() interface{}) *PreloaderScene {
	return &PreloaderScene{sceneChanger: sc, next: next}
}

// NewDarkPreloaderScene creates the short dark preloader shown before About
func NewDarkPreloaderScene(sc SceneChanger, next func() interface{}) *PreloaderScene {
	return &PreloaderScene{sceneChanger: sc, next: next, dark: true}
}

func (ps *PreloaderScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.PreloaderDone(ps.ecs) {
		ps.sceneChanger.ChangeScene(ps.next())
	}
}

func (ps *PreloaderScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	if ps.dark {
		screen.Fill(cfg.Preloader.DarkBG)
	} else {
		screen.Fill(cfg.Preloader.LightBG)
	}

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PreloaderScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	ps.ecs.AddSystem(systems.UpdatePreloader)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPreloader)

	factory.CreatePreloader(ps.ecs, ps.dark)
}
