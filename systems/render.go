package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	cardOp    = &colorm.DrawImageOptions{}
	drawOrder []*components.ProjectData
	blank     *ebiten.Image
)

// Below this the blur flash is not worth drawing.
const minBlur = 0.01

func blankImage() *ebiten.Image {
	if blank == nil {
		blank = ebiten.NewImage(1, 1)
		blank.Fill(color.White)
	}
	return blank
}

// DrawGallery renders the visible cards back to front, raised cards last.
// Cards are grayscale unless hovered; a blur flash adds offset ghosts.
func DrawGallery(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	screen.Fill(cfg.Gallery.Background)

	drawOrder = drawOrder[:0]
	tags.Project.Each(e.World, func(entry *donburi.Entry) {
		p := components.Project.Get(entry)
		if p.Projection.Visible {
			drawOrder = append(drawOrder, p)
		}
	})
	sort.SliceStable(drawOrder, func(i, j int) bool {
		return drawsBelow(drawOrder[i], drawOrder[j])
	})

	blur := camera.Rig.BlurFlash
	for _, p := range drawOrder {
		r := p.Projection.DrawRect(p.Scale)
		if blur > minBlur {
			for i := cfg.Gallery.GhostCopies; i >= 1; i-- {
				off := blur * cfg.Gallery.GhostOffset * float64(i)
				drawCard(screen, p, viewport.Rect{X: r.X - off, Y: r.Y, W: r.W, H: r.H}, cfg.Gallery.GhostAlpha)
				drawCard(screen, p, viewport.Rect{X: r.X + off, Y: r.Y, W: r.W, H: r.H}, cfg.Gallery.GhostAlpha)
			}
		}
		drawCard(screen, p, r, 1)
		if p.Hover.Hovered {
			drawCardLabel(screen, p, r)
		}
	}
}

func drawCard(screen *ebiten.Image, p *components.ProjectData, r viewport.Rect, alpha float32) {
	if r.W < 1 || r.H < 1 {
		return
	}

	img := p.Thumbnail
	var cm colorm.ColorM
	if img == nil {
		img = blankImage()
		tint := cfg.Gallery.CardColor
		if p.Hover.Hovered {
			tint = cfg.Gallery.CardHoverColor
		}
		cm.ScaleWithColor(tint)
	}
	if !p.Hover.Hovered {
		cm.ChangeHSV(0, 0, 1)
	}
	cm.Scale(1, 1, 1, float64(alpha))

	b := img.Bounds()
	cardOp.GeoM.Reset()
	cardOp.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	cardOp.GeoM.Translate(r.X, r.Y)
	colorm.DrawImage(screen, img, cm, cardOp)

	if alpha == 1 {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Gallery.CardBorder, false)
	}
}

func drawCardLabel(screen *ebiten.Image, p *components.ProjectData, r viewport.Rect) {
	face := fonts.Small.Get()
	name := p.Project.Name
	if text.BoundString(face, name).Dx() > int(r.W)-8 {
		return
	}
	text.Draw(screen, name, face, int(r.X)+4, int(r.Y+r.H)-6, cfg.Gallery.LabelColor)
}
