package scenes

import (
	"sync"

	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/logging"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/systems/factory"
	"github.com/automoto/folio/ui"
	"github.com/automoto/folio/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GalleryScene is the pannable project field with its header
type GalleryScene struct {
	ecs             *ecs.ECS
	sceneChanger    SceneChanger
	galleryUI       *ui.GalleryUI
	once            sync.Once
	shouldOpenAbout bool
}

// NewGalleryScene creates a new gallery scene
func NewGalleryScene(sc SceneChanger) *GalleryScene {
	return &GalleryScene{sceneChanger: sc}
}

func (gs *GalleryScene) Update() {
	gs.once.Do(gs.configure)

	// The header runs first so the camera knows whether the pointer is on it
	gs.galleryUI.Update()
	gs.ecs.Update()

	if gs.shouldOpenAbout {
		systems.SaveLayout(gs.ecs)
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		sc := gs.sceneChanger
		sc.ChangeScene(NewDarkPreloaderScene(sc, func() interface{} {
			return NewAboutScene(sc)
		}))
	}
}

func (gs *GalleryScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Gallery.Background)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.galleryUI.UI.Draw(screen)

	// The cursor sits above the header
	systems.DrawCursor(gs.ecs, screen)
}

// ReloadProfiles applies a profile set read from disk while running.
func (gs *GalleryScene) ReloadProfiles(set viewport.ProfileSet) {
	if gs.ecs == nil {
		cfg.Profiles = set
		return
	}
	systems.ApplyProfiles(gs.ecs, set)
}

// Save stores the current layout and camera position.
func (gs *GalleryScene) Save() {
	if gs.ecs == nil {
		return
	}
	systems.SaveLayout(gs.ecs)
}

func (gs *GalleryScene) configure() {
	view := viewport.Size{W: float64(cfg.C.Width), H: float64(cfg.C.Height)}
	profile := cfg.SelectProfile(view.W)
	gallery, offset := systems.RestoreLayout(assets.MustLoadGallery(), profile.Name)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then the camera, then everything that reads its offset
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateShortcuts)
	ecs.AddSystem(systems.UpdateShuffle)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateProjection)
	ecs.AddSystem(systems.UpdateHover)
	ecs.AddSystem(systems.UpdateClicks)
	ecs.AddSystem(systems.UpdateCursorTrail)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawGallery)
	ecs.AddRenderer(cfg.Default, systems.DrawMinimap)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	gs.ecs = ecs

	// Hit testing runs in screen space
	spaceEntry := factory.CreateSpace(gs.ecs, view, cfg.Gallery.SpaceCell)
	space := components.Space.Get(spaceEntry)

	galleryEntry := factory.CreateGallery(gs.ecs, gallery, profile, systems.Store())
	galleryData := components.Gallery.Get(galleryEntry)

	cameraEntry := factory.CreateCamera(gs.ecs, profile)
	if offset != nil {
		rig := components.Camera.Get(cameraEntry).Rig
		rig.Offset = *offset
		rig.Target = *offset
	}

	pointer := factory.CreatePointer(gs.ecs)
	space.Add(components.Object.Get(pointer).Object)

	strip, centre := factory.CreateHeader(gs.ecs, view.W)
	space.Add(components.Object.Get(strip).Object, components.Object.Get(centre).Object)

	// Card objects join the space once they have been projected
	for _, p := range gallery.Projects {
		factory.CreateProject(gs.ecs, p)
	}

	gs.galleryUI = ui.NewGalleryUI(
		galleryData,
		components.Pointer.Get(pointer),
		func() { systems.ResetCamera(gs.ecs) },
		func() { gs.shouldOpenAbout = true },
		func() { galleryData.ShuffleRequested = true },
	)

	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	logging.Named("gallery").Info("gallery ready",
		zap.String("profile", profile.Name),
		zap.Int("projects", len(gallery.Projects)),
		zap.Bool("restored", offset != nil),
	)
}
