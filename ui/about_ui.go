package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/folio/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// AboutUI holds the Back button over the About page
type AboutUI struct {
	UI     *ebitenui.UI
	OnBack func()

	normalFace text.Face
}

func NewAboutUI(onBack func()) *AboutUI {
	aui := &AboutUI{OnBack: onBack}

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	aui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}

	aui.buildUI()
	return aui
}

func (aui *AboutUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	margin := int(cfg.Gallery.HeaderMargin)
	padding := widget.Insets{Top: margin / 2, Left: margin}
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	idle := image.NewNineSliceColor(color.Transparent)
	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     idle,
			Hover:    image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{60, 60, 60, 255}),
			Disabled: idle,
		}),
		widget.ButtonOpts.Text("< Back", &aui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.About.TextColor,
			Hover:   cfg.About.AccentColor,
			Pressed: cfg.Accent,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if aui.OnBack != nil {
				aui.OnBack()
			}
		}),
	)
	bar.AddChild(backButton)
	rootContainer.AddChild(bar)

	aui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (aui *AboutUI) Update() {
	aui.UI.Update()
}
