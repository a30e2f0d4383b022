package components

import (
	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/textfx"
	"github.com/yohamta/donburi"
)

// AboutData is the About page content with its running effects.
type AboutData struct {
	Content assets.About
	Heading *textfx.Reveal
	LogY    float64 // scroll offset of the log panel
}

var About = donburi.NewComponentType[AboutData]()
