package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PreloaderData is the progress bar shown before the gallery and the About page.
type PreloaderData struct {
	Progress  float64 // 0..100
	Displayed float64 // eased toward Progress
	ElapsedMs float64
	AccumMs   float64
	MinMs     float64
	Dark      bool
	Message   string
	Done      bool
}

var Preloader = donburi.NewComponentType[PreloaderData]()

var Tween = donburi.NewComponentType[gween.Tween]()
