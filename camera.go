package neonstreet

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cameraPan is an in-flight PanTo. Both axes share one duration and easing.
type cameraPan struct {
	x, y  *gween.Tween
	destX float64
	destY float64
	doneX bool
	doneY bool
}

// Camera maps between world and screen space. The street is never scaled,
// so the view is a translation that puts (X, Y) on the viewport center.
//
// In fractions layout the camera sits still on the viewport center. In
// scrolling layout it pans to each newly active shop and is clamped to the
// street's world bounds.
type Camera struct {
	// X and Y are the world-space point shown at the viewport center.
	X, Y float64
	// Viewport is the screen-space rectangle the street is drawn into.
	Viewport Rect

	// BoundsEnabled keeps the visible area inside Bounds.
	BoundsEnabled bool
	Bounds        Rect

	pan *cameraPan
}

// NewCamera creates a camera centered on the given viewport, so world and
// screen coordinates coincide.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Viewport: viewport,
	}
}

// PanTo eases the camera toward (x, y) over duration. The destination is
// clamped to the bounds first, so the pan never runs into the edge. A pan
// already heading to the same destination is left alone; a different one
// restarts from the current position. A non-positive duration jumps.
func (c *Camera) PanTo(x, y float64, duration time.Duration, easeFn ease.TweenFunc) {
	x, y = c.clamp(x, y)
	if c.pan != nil && c.pan.destX == x && c.pan.destY == y {
		return
	}
	if x == c.X && y == c.Y {
		c.pan = nil
		return
	}
	secs := float32(duration.Seconds())
	if secs <= 0 {
		c.Snap(x, y)
		return
	}
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	c.pan = &cameraPan{
		x:     gween.New(float32(c.X), float32(x), secs, easeFn),
		y:     gween.New(float32(c.Y), float32(y), secs, easeFn),
		destX: x,
		destY: y,
	}
}

// Panning reports whether a PanTo is in flight.
func (c *Camera) Panning() bool { return c.pan != nil }

// SetViewport replaces the screen rectangle after a resize.
func (c *Camera) SetViewport(vp Rect) {
	c.Viewport = vp
}

// SetBounds enables clamping to a world rectangle.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.X, c.Y = c.clamp(c.X, c.Y)
}

// ClearBounds disables clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Snap moves the camera to (x, y) at once, within bounds, and cancels any
// pan. Used at startup and after a resize.
func (c *Camera) Snap(x, y float64) {
	c.pan = nil
	c.X, c.Y = c.clamp(x, y)
}

// Update advances a pan by dt seconds.
func (c *Camera) Update(dt float32) {
	p := c.pan
	if p == nil {
		return
	}
	if !p.doneX {
		v, done := p.x.Update(dt)
		c.X, p.doneX = float64(v), done
	}
	if !p.doneY {
		v, done := p.y.Update(dt)
		c.Y, p.doneY = float64(v), done
	}
	if p.doneX && p.doneY {
		c.X, c.Y = p.destX, p.destY
		c.pan = nil
		return
	}
	// Easings with overshoot still stay inside the street.
	c.X, c.Y = c.clamp(c.X, c.Y)
}

// clamp restricts a camera center so the visible area stays within Bounds.
// A world narrower than the viewport is centered instead.
func (c *Camera) clamp(x, y float64) (float64, float64) {
	if !c.BoundsEnabled {
		return x, y
	}
	return clampAxis(x, c.Bounds.X, c.Bounds.Width, c.Viewport.Width/2),
		clampAxis(y, c.Bounds.Y, c.Bounds.Height, c.Viewport.Height/2)
}

func clampAxis(v, lo, size, half float64) float64 {
	minV, maxV := lo+half, lo+size-half
	if minV > maxV {
		return lo + size/2
	}
	return math.Max(minV, math.Min(v, maxV))
}

// offset is the translation from world to screen space.
func (c *Camera) offset() (float64, float64) {
	return c.Viewport.X + c.Viewport.Width/2 - c.X,
		c.Viewport.Y + c.Viewport.Height/2 - c.Y
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	dx, dy := c.offset()
	return wx + dx, wy + dy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	dx, dy := c.offset()
	return sx - dx, sy - dy
}

// VisibleBounds returns the part of the world currently on screen.
func (c *Camera) VisibleBounds() Rect {
	x, y := c.ScreenToWorld(c.Viewport.X, c.Viewport.Y)
	return Rect{X: x, Y: y, Width: c.Viewport.Width, Height: c.Viewport.Height}
}
