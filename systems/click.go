package systems

import (
	"sync"

	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/browser"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

const statusMs = 1500

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// UpdateClicks opens the hovered card's link on a click (a press released
// where it started) and copies it on a right click.
func UpdateClicks(e *ecs.ECS) {
	_, pointer, ok := getPointer(e)
	if !ok || pointer.OverUI || pointer.Hovered == nil {
		return
	}
	g, ok := getGallery(e)
	if !ok {
		return
	}
	project := components.Project.Get(pointer.Hovered).Project

	if pointer.Clicked(cfg.Camera.ClickSlop) {
		OpenProject(project)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		camera, ok := getCamera(e)
		if !ok {
			return
		}
		copyLink(g, project, camera.ClockMs)
	}
}

// OpenProject opens p's link in the system browser. Cards without a real
// link are ignored.
func OpenProject(p assets.Project) {
	if !p.HasLink() {
		logging.Named("gallery").Debug("project has no link", zap.String("project", p.ID))
		return
	}
	OpenLink(p.Link)
}

// OpenLink opens url in the system browser, logging failures.
func OpenLink(url string) {
	log := logging.Named("gallery")
	if err := browser.OpenURL(url); err != nil {
		log.Warn("could not open link", zap.String("link", url), zap.Error(err))
		return
	}
	log.Info("opened link", zap.String("link", url))
}

func copyLink(g *components.GalleryData, p assets.Project, nowMs float64) {
	if !p.HasLink() {
		return
	}
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		logging.Named("gallery").Warn("clipboard unavailable", zap.Error(clipboardErr))
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(p.Link))
	g.Status = "Link copied: " + p.Name
	g.StatusUntilMs = nowMs + statusMs
}
