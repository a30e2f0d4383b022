package config

import (
	"image/color"

	"github.com/automoto/folio/viewport"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig wraps the rig tuning with the frame clock used to stamp input.
type CameraConfig struct {
	Tuning  viewport.Tuning
	FrameMs float64 // simulated time per Update at 60 TPS

	// A press released within ClickSlop pixels of where it started is a
	// click rather than a drag.
	ClickSlop float64

	// The layout is saved once the camera settles within SettleTolerance
	// of its target after moving.
	SettleTolerance float64
}

// GalleryConfig contains colours and sizes for the card field and header
type GalleryConfig struct {
	Background     color.RGBA
	CardColor      color.RGBA
	CardBorder     color.RGBA
	CardHoverColor color.RGBA
	LabelColor     color.RGBA

	HeaderHeight float64
	HeaderMargin float64
	TextDark     color.RGBA
	TextLight    color.RGBA

	HoverTweenSeconds float32 // hover scale easing time
	GhostOffset       float64 // px per unit of blur flash
	GhostAlpha        float32
	GhostCopies       int

	SpaceCell int // resolv cell size for hit testing
}

// MinimapConfig contains the overview panel look
type MinimapConfig struct {
	Margin        float64
	Background    color.RGBA
	Border        color.RGBA
	ViewportColor color.RGBA
	DotColor      color.RGBA
	HoverDotColor color.RGBA
	DotRadius     float32
}

// HUDConfig contains the position display and footer placement
type HUDConfig struct {
	Margin        float64
	PositionColor color.RGBA
	FooterColor   color.RGBA
}

// CursorConfig contains the custom "+" cursor and its trail
type CursorConfig struct {
	Size       float32
	Thickness  float32
	Color      color.RGBA
	TrailMs    float64
	TrailColor color.RGBA
	LabelColor color.RGBA
}

// PreloaderConfig contains the loading bar timings and both themes
type PreloaderConfig struct {
	StepMs         float64
	MinGalleryMs   float64
	AboutMs        float64
	BarWidth       float64
	BarHeight      float64
	TweenSeconds   float32
	LightBG        color.RGBA
	LightFG        color.RGBA
	DarkBG         color.RGBA
	DarkFG         color.RGBA
	GalleryMessage string
	AboutMessage   string
}

// AboutConfig contains the About page look
type AboutConfig struct {
	Background    color.RGBA
	TextColor     color.RGBA
	AccentColor   color.RGBA
	LogSpeed      float64 // px per second
	LogLineHeight float64
	LogHeight     float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipPreloader bool
	Debug         bool
	ForceMobile   bool
	ProfilePath   string
	Watch         bool
	Reset         bool
	ThumbnailDir  string
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Gallery GalleryConfig
var Minimap MinimapConfig
var HUD HUDConfig
var Cursor CursorConfig
var Preloader PreloaderConfig
var About AboutConfig
var Debug DebugConfig

// Profiles is the loaded desktop/mobile pair; Profile is the one in use.
var Profiles viewport.ProfileSet
var Profile viewport.Profile

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	OffWhite  = color.RGBA{R: 240, G: 238, B: 232, A: 255}
	DarkGrey  = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	MidGrey   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightGrey = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Accent    = color.RGBA{R: 255, G: 80, B: 40, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// SelectProfile picks the desktop or mobile profile for a viewport width.
func SelectProfile(viewportWidth float64) viewport.Profile {
	Profile = Profiles.Select(viewportWidth, Debug.ForceMobile)
	return Profile
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 800,
		Title:  "folio",
	}

	Camera = CameraConfig{
		Tuning:          viewport.DefaultTuning(),
		FrameMs:         1000.0 / 60.0,
		ClickSlop:       5,
		SettleTolerance: 0.5,
	}

	Gallery = GalleryConfig{
		Background:     OffWhite,
		CardColor:      DarkGrey,
		CardBorder:     color.RGBA{R: 30, G: 30, B: 30, A: 255},
		CardHoverColor: color.RGBA{R: 70, G: 90, B: 140, A: 255},
		LabelColor:     White,

		HeaderHeight: 64,
		HeaderMargin: 24,
		TextDark:     Black,
		TextLight:    White,

		HoverTweenSeconds: 0.7,
		GhostOffset:       4,
		GhostAlpha:        0.25,
		GhostCopies:       2,

		SpaceCell: 32,
	}

	Minimap = MinimapConfig{
		Margin:        20,
		Background:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
		Border:        color.RGBA{R: 255, G: 255, B: 255, A: 120},
		ViewportColor: Accent,
		DotColor:      LightGrey,
		HoverDotColor: White,
		DotRadius:     2,
	}

	HUD = HUDConfig{
		Margin:        20,
		PositionColor: Black,
		FooterColor:   MidGrey,
	}

	Cursor = CursorConfig{
		Size:       10,
		Thickness:  1.5,
		Color:      Black,
		TrailMs:    300,
		TrailColor: color.RGBA{R: 0, G: 0, B: 0, A: 90},
		LabelColor: Black,
	}

	Preloader = PreloaderConfig{
		StepMs:         50,
		MinGalleryMs:   2000,
		AboutMs:        500,
		BarWidth:       320,
		BarHeight:      2,
		TweenSeconds:   0.05,
		LightBG:        OffWhite,
		LightFG:        Black,
		DarkBG:         Black,
		DarkFG:         White,
		GalleryMessage: "Loading...",
		AboutMessage:   "Loading About...",
	}

	About = AboutConfig{
		Background:    Black,
		TextColor:     LightGrey,
		AccentColor:   White,
		LogSpeed:      18,
		LogLineHeight: 18,
		LogHeight:     180,
	}

	Profiles = viewport.DefaultProfiles()
	Profile = Profiles.Desktop
}
