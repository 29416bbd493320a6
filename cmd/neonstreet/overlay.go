package main

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/neonstreet"
	"golang.org/x/image/font/basicfont"
)

const (
	statusTicks = 120
	itemHeight  = 28
)

var (
	panelColor  = color.RGBA{0x10, 0x10, 0x20, 0xd0}
	accentColor = color.RGBA{0x00, 0xff, 0xff, 0xff}
	dimColor    = color.RGBA{0x40, 0x40, 0x50, 0xff}
	hintText    = "LEFT/RIGHT shops   UP/DOWN streets   M music   C copy location   drag to swipe"
)

// overlay draws the street picker, arrow buttons and music toggle. It only
// talks to the bridge.
type overlay struct {
	bridge   *neonstreet.Bridge
	viewport func() neonstreet.Viewport
	face     text.Face

	open       bool
	status     string
	statusLeft int
	touchIDs   []ebiten.TouchID
}

func newOverlay(b *neonstreet.Bridge, viewport func() neonstreet.Viewport) *overlay {
	return &overlay{
		bridge:   b,
		viewport: viewport,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

type buttons struct {
	prevShop, nextShop     neonstreet.Rect
	prevStreet, nextStreet neonstreet.Rect
	street, music          neonstreet.Rect
}

func (o *overlay) buttons() buttons {
	vp := o.viewport()
	w, h := vp.Width, vp.Height
	return buttons{
		prevShop:   neonstreet.Rect{X: 16, Y: h/2 - 30, Width: 48, Height: 60},
		nextShop:   neonstreet.Rect{X: w - 64, Y: h/2 - 30, Width: 48, Height: 60},
		prevStreet: neonstreet.Rect{X: w/2 - 164, Y: 12, Width: 36, Height: 32},
		nextStreet: neonstreet.Rect{X: w/2 + 128, Y: 12, Width: 36, Height: 32},
		street:     neonstreet.Rect{X: w/2 - 120, Y: 12, Width: 240, Height: 32},
		music:      neonstreet.Rect{X: w - 140, Y: 12, Width: 124, Height: 32},
	}
}

func (o *overlay) item(i int) neonstreet.Rect {
	b := o.buttons().street
	return neonstreet.Rect{X: b.X, Y: b.Y + b.Height + 4 + float64(i*itemHeight), Width: b.Width, Height: itemHeight}
}

// blocks claims every point the overlay owns. While the dropdown is open
// it claims the whole screen: a click anywhere closes it.
func (o *overlay) blocks(x, y float64) bool {
	if o.open {
		return true
	}
	b := o.buttons()
	for _, r := range []neonstreet.Rect{b.prevShop, b.nextShop, b.prevStreet, b.nextStreet, b.street, b.music} {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

func (o *overlay) update() error {
	if o.statusLeft > 0 {
		o.statusLeft--
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		o.press(float64(x), float64(y))
	}
	o.touchIDs = inpututil.AppendJustPressedTouchIDs(o.touchIDs[:0])
	for _, id := range o.touchIDs {
		x, y := ebiten.TouchPosition(id)
		o.press(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		o.open = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.copyLocation()
	}
	return nil
}

func (o *overlay) press(x, y float64) {
	if o.open {
		for i, st := range o.bridge.Streets() {
			if o.item(i).Contains(x, y) {
				o.bridge.JumpToStreet(st.Name)
				break
			}
		}
		o.open = false
		return
	}

	b := o.buttons()
	switch {
	case b.street.Contains(x, y):
		o.open = true
	case b.prevShop.Contains(x, y):
		o.bridge.Step(neonstreet.Previous)
	case b.nextShop.Contains(x, y):
		o.bridge.Step(neonstreet.Next)
	case b.prevStreet.Contains(x, y):
		o.bridge.StepStreet(neonstreet.Previous)
	case b.nextStreet.Contains(x, y):
		o.bridge.StepStreet(neonstreet.Next)
	case b.music.Contains(x, y):
		o.bridge.ToggleMusic()
	}
}

func (o *overlay) copyLocation() {
	loc := fmt.Sprintf("%s / %s", o.bridge.ActiveStreetName(), o.bridge.ActiveShop().Label)
	if err := clipboard.WriteAll(loc); err != nil {
		// Needs xclip, xsel or wl-clipboard on Linux.
		neonstreet.Logger().Warn("clipboard copy failed", "err", err)
		o.flash("clipboard unavailable")
		return
	}
	o.flash("copied: " + loc)
}

func (o *overlay) flash(msg string) {
	o.status = msg
	o.statusLeft = statusTicks
}

func (o *overlay) draw(screen *ebiten.Image) {
	b := o.buttons()
	o.button(screen, b.prevShop, "<", !o.bridge.AtFirstShop())
	o.button(screen, b.nextShop, ">", !o.bridge.AtLastShop())
	o.button(screen, b.prevStreet, "<", !o.bridge.AtFirstStreet())
	o.button(screen, b.nextStreet, ">", !o.bridge.AtLastStreet())
	o.button(screen, b.street, o.bridge.ActiveStreetName()+"  v", true)

	music := "MUSIC: OFF"
	if o.bridge.IsMusicPlaying() {
		music = "MUSIC: ON"
	}
	o.button(screen, b.music, music, true)

	if o.open {
		active := o.bridge.ActiveStreetName()
		for i, st := range o.bridge.Streets() {
			o.button(screen, o.item(i), st.Name, st.Name != active)
		}
	}

	vp := o.viewport()
	msg := hintText
	if o.statusLeft > 0 {
		msg = o.status
	}
	o.label(screen, msg, vp.Width/2, vp.Height-24, color.White)
}

func (o *overlay) button(screen *ebiten.Image, r neonstreet.Rect, label string, enabled bool) {
	edge := accentColor
	if !enabled {
		edge = dimColor
	}
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, edge, false)
	o.label(screen, label, r.X+r.Width/2, r.Y+r.Height/2-6, edge)
}

func (o *overlay) label(screen *ebiten.Image, s string, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, o.face, op)
}
