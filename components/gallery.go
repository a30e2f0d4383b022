package components

import (
	"math/rand"

	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/storage"
	"github.com/automoto/folio/viewport"
	"github.com/yohamta/donburi"
)

// GalleryData is the per-scene state shared by the gallery systems.
type GalleryData struct {
	Title   string
	Footer  string
	Social  assets.SocialLinks
	Profile viewport.Profile
	View    viewport.Size

	Store *storage.Store
	Rng   *rand.Rand

	// Header flags, refreshed by the hover pass.
	HeaderInverted bool // a visible card overlaps the header
	HeaderLight    bool // the header centre sits on a card

	// Set by the UI or the keyboard, consumed by the shuffle system.
	ShuffleRequested bool
	Status           string
	StatusUntilMs    float64
}

var Gallery = donburi.NewComponentType[GalleryData]()
