package ui

import (
	"bytes"
	"image/color"
	"math/rand"
	"time"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/textfx"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// header is one colour variant of the header links. Two are built, dark and
// light, and only the one matching the background under the header shows.
type header struct {
	container *widget.Container
	name      *widget.Button
	about     *widget.Button
	shuffle   *widget.Button
}

// GalleryUI holds the ebitenui header over the gallery
type GalleryUI struct {
	UI      *ebitenui.UI
	Gallery *components.GalleryData
	Pointer *components.PointerData

	// Callbacks
	OnHome    func()
	OnAbout   func()
	OnShuffle func()

	dark, light         header
	social, socialInv   *widget.Container
	nameFx, aboutFx     *textfx.Scramble
	hovered             int
	showLight, inverted bool

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewGalleryUI creates the gallery header with ebitenui
func NewGalleryUI(gallery *components.GalleryData, pointer *components.PointerData, onHome, onAbout, onShuffle func()) *GalleryUI {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gui := &GalleryUI{
		Gallery:   gallery,
		Pointer:   pointer,
		OnHome:    onHome,
		OnAbout:   onAbout,
		OnShuffle: onShuffle,
		nameFx:    textfx.NewScramble(gallery.Title, rng),
		aboutFx:   textfx.NewScramble("About", rng),
	}

	gui.loadFonts()
	gui.buildUI()

	return gui
}

func (gui *GalleryUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	gui.titleFace = &text.GoTextFace{
		Source: bold,
		Size:   20,
	}
	gui.normalFace = &text.GoTextFace{
		Source: regular,
		Size:   16,
	}
	gui.smallFace = &text.GoTextFace{
		Source: regular,
		Size:   13,
	}
}

func (gui *GalleryUI) buildUI() {
	// Root container is transparent so the gallery shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	gui.dark = gui.buildHeader(cfg.Gallery.TextDark)
	gui.light = gui.buildHeader(cfg.Gallery.TextLight)
	gui.light.container.GetWidget().Visibility = widget.Visibility_Hide
	rootContainer.AddChild(gui.dark.container)
	rootContainer.AddChild(gui.light.container)

	gui.social = gui.buildSocial(cfg.Gallery.TextDark, color.Transparent)
	gui.socialInv = gui.buildSocial(cfg.Gallery.TextLight, cfg.Gallery.TextDark)
	gui.socialInv.GetWidget().Visibility = widget.Visibility_Hide
	rootContainer.AddChild(gui.social)
	rootContainer.AddChild(gui.socialInv)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GalleryUI) buildHeader(textColor color.Color) header {
	margin := int(cfg.Gallery.HeaderMargin)
	padding := widget.Insets{Top: margin / 2, Left: margin, Right: margin}
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h := header{container: container}
	h.name = gui.linkButton(gui.Gallery.Title, &gui.titleFace, textColor, gui.nameFx, func() {
		if gui.OnHome != nil {
			gui.OnHome()
		}
	})
	h.about = gui.linkButton("About", &gui.normalFace, textColor, gui.aboutFx, func() {
		if gui.OnAbout != nil {
			gui.OnAbout()
		}
	})
	h.shuffle = gui.linkButton("Shuffle", &gui.normalFace, textColor, nil, func() {
		if gui.OnShuffle != nil {
			gui.OnShuffle()
		}
	})
	container.AddChild(h.name)
	container.AddChild(h.about)
	container.AddChild(h.shuffle)
	return h
}

func (gui *GalleryUI) buildSocial(textColor, background color.Color) *widget.Container {
	margin := int(cfg.Gallery.HeaderMargin)
	padding := widget.Insets{Top: margin / 2, Left: 8, Right: margin, Bottom: 4}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	links := []struct{ label, url string }{
		{"Instagram", gui.Gallery.Social.Instagram},
		{"LinkedIn", gui.Gallery.Social.LinkedIn},
		{"YouTube", gui.Gallery.Social.YouTube},
	}
	for _, l := range links {
		if l.url == "" {
			continue
		}
		url := l.url // Capture for closure
		container.AddChild(gui.linkButton(l.label, &gui.smallFace, textColor, nil, func() {
			systems.OpenLink(url)
		}))
	}
	return container
}

// linkButton is a borderless text button. Hovering it marks the pointer as
// over the UI and, when fx is set, runs the scramble.
func (gui *GalleryUI) linkButton(label string, face *text.Face, textColor color.Color, fx *textfx.Scramble, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(linkImage()),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    textColor,
			Hover:   cfg.Accent,
			Pressed: cfg.Accent,
		}),
		widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
			gui.hovered++
			if fx != nil {
				fx.Start()
			}
		}),
		widget.ButtonOpts.CursorExitedHandler(func(args *widget.ButtonHoverEventArgs) {
			gui.hovered = max(0, gui.hovered-1)
			if fx != nil {
				fx.Stop()
			}
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func linkImage() *widget.ButtonImage {
	none := image.NewNineSliceColor(color.Transparent)
	return &widget.ButtonImage{
		Idle:     none,
		Hover:    none,
		Pressed:  none,
		Disabled: none,
	}
}

// Update runs the widgets, steps the scramble effects and picks the header
// variants for what is behind the header this frame.
func (gui *GalleryUI) Update() {
	gui.UI.Update()

	name := gui.nameFx.Update(cfg.Camera.FrameMs)
	about := gui.aboutFx.Update(cfg.Camera.FrameMs)
	for _, h := range []header{gui.dark, gui.light} {
		h.name.Text().Label = name
		h.about.Text().Label = about
	}

	showLight := gui.Gallery.HeaderLight
	inverted := gui.Gallery.HeaderInverted
	if showLight != gui.showLight || inverted != gui.inverted {
		// Hidden widgets never see the cursor leave.
		gui.showLight, gui.inverted = showLight, inverted
		gui.hovered = 0
		gui.nameFx.Stop()
		gui.aboutFx.Stop()
	}
	gui.dark.container.GetWidget().Visibility = visibility(!showLight)
	gui.light.container.GetWidget().Visibility = visibility(showLight)
	gui.social.GetWidget().Visibility = visibility(!inverted)
	gui.socialInv.GetWidget().Visibility = visibility(inverted)

	if gui.Pointer != nil {
		gui.Pointer.OverUI = gui.hovered > 0
	}
}

func visibility(show bool) widget.Visibility {
	if show {
		return widget.Visibility_Show
	}
	return widget.Visibility_Hide
}
