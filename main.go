package main

import (
	"fmt"
	"os"

	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/logging"
	"github.com/automoto/folio/scenes"
	"github.com/automoto/folio/storage"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "folio"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// saver is implemented by scenes with state worth keeping across runs.
type saver interface {
	Save()
}

// profileReloader is implemented by scenes that react to edited profiles.
type profileReloader interface {
	ReloadProfiles(set viewport.ProfileSet)
}

type Game struct {
	scene   Scene
	watcher *assets.ProfileWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(watcher *assets.ProfileWatcher) *Game {
	g := &Game{watcher: watcher}

	if config.Debug.SkipPreloader {
		g.scene = scenes.NewGalleryScene(g)
	} else {
		g.scene = scenes.NewPreloaderScene(g, func() interface{} {
			return scenes.NewGalleryScene(g)
		})
	}

	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if s, ok := g.scene.(saver); ok {
			s.Save()
		}
		return ebiten.Termination
	}

	if g.watcher != nil {
		select {
		case set := <-g.watcher.Updates:
			if r, ok := g.scene.(profileReloader); ok {
				r.ReloadProfiles(set)
			} else {
				config.Profiles = set
			}
		default:
		}
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func newRootCmd() *cobra.Command {
	var log *zap.Logger

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Pan and zoom through a field of project cards",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(config.Debug.Debug)
			if err != nil {
				return err
			}
			log = l
			logging.Set(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(log)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.BoolVar(&config.Debug.ForceMobile, "mobile", false, "use the mobile profile regardless of width")
	flags.StringVar(&config.Debug.ProfilePath, "profile", "", "YAML file with desktop and mobile tuning profiles")
	flags.BoolVar(&config.Debug.Watch, "watch", false, "reload the profile file when it changes")
	flags.IntVar(&config.C.Width, "width", config.C.Width, "window width")
	flags.IntVar(&config.C.Height, "height", config.C.Height, "window height")
	flags.BoolVar(&config.Debug.SkipPreloader, "skip-preloader", false, "start directly in the gallery")
	flags.BoolVar(&config.Debug.Debug, "debug", false, "show the debug overlay and log at debug level")
	flags.BoolVar(&config.Debug.Reset, "reset", false, "forget saved layouts and settings")
	flags.StringVar(&config.Debug.ThumbnailDir, "thumbnails", "", "directory holding project thumbnail images")

	return cmd
}

func run(log *zap.Logger) error {
	profiles, err := loadProfiles()
	if err != nil {
		return err
	}
	config.Profiles = profiles
	config.SelectProfile(float64(config.C.Width))

	store, err := storage.Open(appName, log)
	if err != nil {
		log.Warn("persistence disabled", zap.Error(err))
		store = nil
	}
	if config.Debug.Reset {
		if err := store.Reset(profiles.Desktop.Name, profiles.Mobile.Name); err != nil {
			log.Warn("could not reset saved data", zap.Error(err))
		}
	}
	systems.InitPersistence(store)
	systems.ApplySavedSettings()

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	var watcher *assets.ProfileWatcher
	if config.Debug.Watch && config.Debug.ProfilePath != "" {
		watcher, err = assets.WatchProfiles(config.Debug.ProfilePath, log)
		if err != nil {
			return fmt.Errorf("watch profiles: %w", err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)

	log.Info("starting",
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height),
		zap.String("profile", config.Profile.Name),
	)
	return ebiten.RunGame(NewGame(watcher))
}

func loadProfiles() (viewport.ProfileSet, error) {
	if config.Debug.ProfilePath == "" {
		return assets.DefaultProfiles()
	}
	return assets.LoadProfilesFile(config.Debug.ProfilePath)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
