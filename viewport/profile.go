package viewport

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// HoverTier grows a card to Scale while the pointer is closer than Within
// card widths to the card centre.
type HoverTier struct {
	Within float64 `yaml:"within"`
	Scale  float64 `yaml:"scale"`
}

// Profile carries the device-class dependent presentation constants. One
// profile is picked at startup and passed to everything that projects cards.
type Profile struct {
	Name string `yaml:"name"`

	// MaxViewportWidth selects this profile when the viewport is at most
	// this wide. Zero means no limit.
	MaxViewportWidth float64 `yaml:"maxViewportWidth"`

	DepthReference   float64 `yaml:"depthReference"`
	BaseEntityWidth  float64 `yaml:"baseEntityWidth"`
	BaseEntityHeight float64 `yaml:"baseEntityHeight"`
	ScaleFactor      float64 `yaml:"scaleFactor"` // applied to explicit card sizes

	WorldSize float64 `yaml:"worldSize"`
	InitialZ  float64 `yaml:"initialZ"`

	ShuffleSpread float64 `yaml:"shuffleSpread"` // x/y spread as a multiple of WorldSize
	ShuffleZMin   float64 `yaml:"shuffleZMin"`
	ShuffleZRange float64 `yaml:"shuffleZRange"`
	ShuffleZWorld float64 `yaml:"shuffleZWorld"` // when set, the z range is this multiple of WorldSize instead
	TargetJitter  float64 `yaml:"targetJitter"`  // shuffle re-centres within ±TargetJitter*spread/2

	HoverTiers  []HoverTier `yaml:"hoverTiers"`
	RestScale   float64     `yaml:"restScale"`
	HoverRadius float64     `yaml:"hoverRadius"` // in card widths; closer shows the card in colour
	RaiseAbove  float64     `yaml:"raiseAbove"`  // hover scales above this draw on top

	Minimap Size `yaml:"minimap"`
}

// ProfileSet is the on-disk shape of profiles.yaml.
type ProfileSet struct {
	Desktop Profile `yaml:"desktop"`
	Mobile  Profile `yaml:"mobile"`
}

// DesktopProfile returns the built-in desktop constants.
func DesktopProfile() Profile {
	return Profile{
		Name:             "desktop",
		DepthReference:   3000,
		BaseEntityWidth:  280,
		BaseEntityHeight: 380,
		ScaleFactor:      1,
		WorldSize:        4000,
		InitialZ:         0,
		ShuffleSpread:    1,
		ShuffleZMin:      0,
		ShuffleZRange:    1000,
		TargetJitter:     0,
		HoverTiers: []HoverTier{
			{Within: 0.5, Scale: 2.0},
			{Within: 1, Scale: 1.4},
			{Within: 1.5, Scale: 0.9},
		},
		RestScale:   0.3,
		HoverRadius: 0.9,
		RaiseAbove:  0.7,
		Minimap:     Size{W: 180, H: 120},
	}
}

// MobileProfile returns the built-in constants for narrow viewports.
func MobileProfile() Profile {
	return Profile{
		Name:             "mobile",
		MaxViewportWidth: 425,
		DepthReference:   20000,
		BaseEntityWidth:  40,
		BaseEntityHeight: 60,
		ScaleFactor:      40.0 / 280.0,
		WorldSize:        1500,
		InitialZ:         3000,
		ShuffleSpread:    1.5,
		ShuffleZMin:      1000,
		ShuffleZWorld:    1.5,
		TargetJitter:     0.8,
		HoverTiers: []HoverTier{
			{Within: 0.5, Scale: 0.7},
			{Within: 1, Scale: 0.5},
			{Within: 1.5, Scale: 0.4},
		},
		RestScale:   0.3,
		HoverRadius: 0.9,
		RaiseAbove:  0.7,
		Minimap:     Size{W: 80, H: 50},
	}
}

// DefaultProfiles returns the built-in profile pair.
func DefaultProfiles() ProfileSet {
	return ProfileSet{Desktop: DesktopProfile(), Mobile: MobileProfile()}
}

// ParseProfiles decodes a profiles document on top of the built-in
// defaults, so a document only needs the fields it changes.
func ParseProfiles(data []byte) (ProfileSet, error) {
	set := DefaultProfiles()
	if err := yaml.Unmarshal(data, &set); err != nil {
		return ProfileSet{}, fmt.Errorf("viewport: parse profiles: %w", err)
	}
	if err := set.Desktop.Validate(); err != nil {
		return ProfileSet{}, fmt.Errorf("viewport: desktop profile: %w", err)
	}
	if err := set.Mobile.Validate(); err != nil {
		return ProfileSet{}, fmt.Errorf("viewport: mobile profile: %w", err)
	}
	return set, nil
}

// Select picks the mobile profile when the viewport fits within its
// MaxViewportWidth, the desktop profile otherwise.
func (s ProfileSet) Select(viewportWidth float64, forceMobile bool) Profile {
	if forceMobile {
		return s.Mobile
	}
	if s.Mobile.MaxViewportWidth > 0 && viewportWidth <= s.Mobile.MaxViewportWidth {
		return s.Mobile
	}
	return s.Desktop
}

var (
	ErrNonPositiveDepth = errors.New("depthReference must be positive")
	ErrNonPositiveSize  = errors.New("base entity size must be positive")
	ErrNonPositiveWorld = errors.New("worldSize must be positive")
)

// Validate rejects profiles whose constants would break the projection.
// Hover tiers are sorted nearest first as a side effect.
func (p *Profile) Validate() error {
	if p.DepthReference <= 0 {
		return ErrNonPositiveDepth
	}
	if p.BaseEntityWidth <= 0 || p.BaseEntityHeight <= 0 {
		return ErrNonPositiveSize
	}
	if p.WorldSize <= 0 {
		return ErrNonPositiveWorld
	}
	if p.ScaleFactor <= 0 {
		p.ScaleFactor = 1
	}
	if p.ShuffleSpread <= 0 {
		p.ShuffleSpread = 1
	}
	sort.SliceStable(p.HoverTiers, func(i, j int) bool {
		return p.HoverTiers[i].Within < p.HoverTiers[j].Within
	})
	return nil
}

// ShuffleDepth is the width of the z band a shuffle scatters cards over.
func (p Profile) ShuffleDepth() float64 {
	if p.ShuffleZWorld > 0 {
		return p.WorldSize * p.ShuffleZWorld
	}
	return p.ShuffleZRange
}

// CardSize returns the unscaled on-screen size of e. Explicit sizes are
// authored against the desktop base width and shrink by ScaleFactor.
func (p Profile) CardSize(e Entity) (w, h float64) {
	w, h = p.BaseEntityWidth, p.BaseEntityHeight
	if e.Width > 0 {
		w = e.Width
	}
	if e.Height > 0 {
		h = e.Height
	}
	if e.Width > 0 && e.Height > 0 {
		w = e.Width * p.ScaleFactor
		h = e.Height * p.ScaleFactor
	}
	return w, h
}
