package neonstreet

import "math"

// LayoutMode selects how shop slots are spread along the street.
type LayoutMode uint8

const (
	// LayoutFractions places every shop at a fixed fraction of the viewport
	// width. The whole street is visible at once.
	LayoutFractions LayoutMode = iota
	// LayoutScrolling places shops at a fixed pixel stride in a world wider
	// than the viewport. A camera follows the tracked entity.
	LayoutScrolling
)

// Viewport is the renderable area in screen pixels.
type Viewport struct {
	Width, Height float64
}

// Valid reports whether the viewport has positive area.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// LayoutParams holds the geometry knobs shared by both layout modes.
type LayoutParams struct {
	Mode LayoutMode

	// Fractions are the relative x positions used when their count matches
	// the shop count. Otherwise slots are spread evenly between EdgeFraction
	// and 1-EdgeFraction.
	Fractions    []float64
	EdgeFraction float64

	// GroundFraction is the y position of every slot as a fraction of height.
	GroundFraction float64

	ShopWidth  float64
	ShopHeight float64

	// Scrolling mode only.
	Spacing     float64
	WorldMargin float64
}

// DefaultLayoutParams returns the geometry of the five-shop street.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Mode:           LayoutFractions,
		Fractions:      []float64{0.14, 0.30, 0.50, 0.70, 0.86},
		EdgeFraction:   0.14,
		GroundFraction: 0.7,
		ShopWidth:      240,
		ShopHeight:     280,
		Spacing:        150,
		WorldMargin:    300,
	}
}

// stride is the distance between neighbouring slots in scrolling mode.
func (p LayoutParams) stride() float64 {
	return p.ShopWidth + p.Spacing
}

// fractionsFor returns the x fractions for n slots.
func (p LayoutParams) fractionsFor(n int) []float64 {
	if len(p.Fractions) == n {
		return p.Fractions
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = 0.5
		return out
	}
	span := 1 - 2*p.EdgeFraction
	for i := range out {
		out[i] = p.EdgeFraction + span*float64(i)/float64(n-1)
	}
	return out
}

// ComputePositions returns one slot coordinate per shop for the given
// viewport. It keeps no state, so calling it on every resize never drifts.
// A shopCount of zero yields an empty slice.
func ComputePositions(vp Viewport, shopCount int, p LayoutParams) []Vec2 {
	if shopCount <= 0 {
		return []Vec2{}
	}
	out := make([]Vec2, shopCount)
	y := vp.Height * p.GroundFraction

	switch p.Mode {
	case LayoutScrolling:
		stride := p.stride()
		for i := range out {
			out[i] = Vec2{X: p.WorldMargin + float64(i)*stride + p.ShopWidth/2, Y: y}
		}
	default:
		for i, f := range p.fractionsFor(shopCount) {
			out[i] = Vec2{X: f * vp.Width, Y: y}
		}
	}
	return out
}

// Layout owns the viewport geometry and the position table derived from it.
// It is the only writer of either.
type Layout struct {
	params    LayoutParams
	viewport  Viewport
	shopCount int
	positions []Vec2
	hitHalfW  float64
}

// NewLayout validates the initial geometry and computes the first table.
func NewLayout(vp Viewport, shopCount int, p LayoutParams) (*Layout, error) {
	if !vp.Valid() {
		return nil, ErrInvalidViewport
	}
	if shopCount <= 0 {
		return nil, ErrNoShops
	}
	l := &Layout{params: p, viewport: vp, shopCount: shopCount}
	l.recompute()
	return l, nil
}

// Resize replaces the viewport and recomputes the table. It returns false,
// leaving everything untouched, when the geometry is unchanged or has no
// area (a minimized window).
func (l *Layout) Resize(vp Viewport) bool {
	if !vp.Valid() || vp == l.viewport {
		return false
	}
	l.viewport = vp
	l.recompute()
	logger.Debug("layout resized", "width", vp.Width, "height", vp.Height)
	return true
}

// SetShopCount recomputes the table for a street with a different number of
// shops. Non-positive counts are ignored.
func (l *Layout) SetShopCount(n int) bool {
	if n <= 0 || n == l.shopCount {
		return false
	}
	l.shopCount = n
	l.recompute()
	return true
}

func (l *Layout) recompute() {
	l.positions = ComputePositions(l.viewport, l.shopCount, l.params)

	// Hit regions never overlap: shrink them to 90% of the tightest gap.
	half := l.params.ShopWidth / 2
	for i := 1; i < len(l.positions); i++ {
		gap := l.positions[i].X - l.positions[i-1].X
		half = math.Min(half, gap*0.45)
	}
	l.hitHalfW = half
}

// Params returns the layout parameters.
func (l *Layout) Params() LayoutParams {
	return l.params
}

// Viewport returns the current viewport.
func (l *Layout) Viewport() Viewport {
	return l.viewport
}

// ShopCount returns the number of slots in the table.
func (l *Layout) ShopCount() int {
	return l.shopCount
}

// Positions returns the position table. The returned slice MUST NOT be mutated.
func (l *Layout) Positions() []Vec2 {
	return l.positions
}

// Position returns the slot coordinate for index i.
func (l *Layout) Position(i int) (Vec2, bool) {
	if i < 0 || i >= len(l.positions) {
		return Vec2{}, false
	}
	return l.positions[i], true
}

// WorldBounds returns the extent of the street in world coordinates. In
// fractions mode this is the viewport itself.
func (l *Layout) WorldBounds() Rect {
	if l.params.Mode == LayoutScrolling {
		w := l.params.stride()*float64(l.shopCount) + 2*l.params.WorldMargin
		return Rect{Width: w, Height: l.viewport.Height}
	}
	return Rect{Width: l.viewport.Width, Height: l.viewport.Height}
}

// HitRegion returns the interactive rectangle of shop i in world
// coordinates. Shops stand on their slot: the slot is the bottom-center.
func (l *Layout) HitRegion(i int) (Rect, bool) {
	p, ok := l.Position(i)
	if !ok {
		return Rect{}, false
	}
	return Rect{
		X:      p.X - l.hitHalfW,
		Y:      p.Y - l.params.ShopHeight,
		Width:  2 * l.hitHalfW,
		Height: l.params.ShopHeight,
	}, true
}

// ShopAt returns the index of the shop whose hit region contains the world
// point (x, y), or -1.
func (l *Layout) ShopAt(x, y float64) int {
	for i := range l.positions {
		r, _ := l.HitRegion(i)
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
