package neonstreet

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Decorator draws everything decorative: backdrop, shop facades, avatar.
// The scene only tells it where things are and which shop is active; it
// never inspects what a decorator draws.
type Decorator interface {
	// PlaceShops is called whenever the street or the geometry changes.
	// hit holds each shop's interactive region in world coordinates.
	PlaceShops(shops []Shop, slots []Vec2, hit []Rect)
	// PlaceAvatar moves the avatar. Called every tick.
	PlaceAvatar(at Vec2)
	// Highlight marks the active shop.
	Highlight(index int)
	// Draw renders one frame through the camera.
	Draw(dst *ebiten.Image, cam *Camera)
}

// CategoryColor returns the neon tint used for a shop category.
func CategoryColor(c Category) color.RGBA {
	switch c {
	case CategoryYield:
		return color.RGBA{0xbf, 0x00, 0xff, 0xff}
	case CategoryOTC:
		return color.RGBA{0xff, 0x99, 0x00, 0xff}
	case CategoryBridge:
		return color.RGBA{0x00, 0xff, 0xff, 0xff}
	case CategorySwap:
		return color.RGBA{0xff, 0x00, 0xff, 0xff}
	case CategoryLending:
		return color.RGBA{0x00, 0x80, 0xff, 0xff}
	default:
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
}

var (
	backdropColor = color.RGBA{0x14, 0x08, 0x24, 0xff}
	groundColor   = color.RGBA{0x0a, 0x0a, 0x12, 0xff}
	labelFace     = text.NewGoXFace(basicfont.Face7x13)
)

// PlaceholderDecorator draws flat neon boxes and labels. It is the
// fallback when no art is available, so the street stays navigable with
// zero assets.
type PlaceholderDecorator struct {
	shops  []Shop
	slots  []Vec2
	hit    []Rect
	avatar Vec2
	active int

	// AvatarImage replaces the drawn figure when set.
	AvatarImage *ebiten.Image

	frame int
}

// NewPlaceholderDecorator returns a decorator with no shops placed.
func NewPlaceholderDecorator() *PlaceholderDecorator {
	return &PlaceholderDecorator{active: -1}
}

func (d *PlaceholderDecorator) PlaceShops(shops []Shop, slots []Vec2, hit []Rect) {
	d.shops, d.slots, d.hit = shops, slots, hit
}

func (d *PlaceholderDecorator) PlaceAvatar(at Vec2) { d.avatar = at }

func (d *PlaceholderDecorator) Highlight(index int) { d.active = index }

func (d *PlaceholderDecorator) Draw(dst *ebiten.Image, cam *Camera) {
	d.frame++
	dst.Fill(backdropColor)

	if len(d.slots) > 0 {
		_, gy := cam.WorldToScreen(0, d.slots[0].Y)
		b := dst.Bounds()
		vector.DrawFilledRect(dst, 0, float32(gy), float32(b.Dx()), float32(b.Dy())-float32(gy), groundColor, false)
	}

	view := cam.VisibleBounds()
	for i, r := range d.hit {
		if r.Overlaps(view) {
			d.drawShop(dst, cam, i, r)
		}
	}
	d.drawAvatar(dst, cam)
}

func (d *PlaceholderDecorator) drawShop(dst *ebiten.Image, cam *Camera, i int, r Rect) {
	sh := d.shops[i]
	x0, y0 := cam.WorldToScreen(r.X, r.Y)
	x1, y1 := cam.WorldToScreen(r.X+r.Width, r.Y+r.Height)
	w, h := float32(x1-x0), float32(y1-y0)

	tint := CategoryColor(sh.Category)
	fill := tint
	fill.A = 0x30
	stroke := float32(2)
	if i == d.active {
		fill.A = 0x60
		stroke = 4
	}
	vector.DrawFilledRect(dst, float32(x0), float32(y0), w, h, fill, false)
	vector.StrokeRect(dst, float32(x0), float32(y0), w, h, stroke, tint, false)

	cx := (x0 + x1) / 2
	drawLabel(dst, sh.Label, cx, y0+16, tint)
	if i == d.active && sh.Caption != "" {
		drawLabel(dst, sh.Caption, cx, y0-12, color.White)
	}
}

func (d *PlaceholderDecorator) drawAvatar(dst *ebiten.Image, cam *Camera) {
	// Idle bob is cosmetic and never written back to the tracked position.
	bob := 3 * math.Sin(float64(d.frame)/20)
	sx, sy := cam.WorldToScreen(d.avatar.X, d.avatar.Y)
	sy += 40 + bob

	if d.AvatarImage != nil {
		b := d.AvatarImage.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy()))
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(sx, sy)
		dst.DrawImage(d.AvatarImage, op)
		return
	}

	cyan := color.RGBA{0x00, 0xff, 0xff, 0xff}
	vector.DrawFilledRect(dst, float32(sx-15), float32(sy-50), 30, 50, color.RGBA{0x2a, 0x2a, 0x2a, 0xff}, false)
	vector.StrokeRect(dst, float32(sx-17), float32(sy-40), 35, 30, 2, cyan, false)
	vector.DrawFilledCircle(dst, float32(sx), float32(sy-65), 15, color.RGBA{0xd4, 0xa3, 0x73, 0xff}, true)
	vector.DrawFilledRect(dst, float32(sx-9), float32(sy-67), 18, 4, cyan, false)
}

// drawLabel draws centered text with its top edge at y.
func drawLabel(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, labelFace, op)
}
