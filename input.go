package neonstreet

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultSwipeThreshold is the horizontal drag distance in pixels a pointer
// must cover between press and release to count as a swipe.
const DefaultSwipeThreshold = 50.0

// Navigation is the command surface the input router drives.
type Navigation interface {
	Step(dir Direction) int
	StepStreet(dir Direction) bool
	JumpToStreet(name string) bool
	SelectShop(i int) bool
}

// Key is a logical key the router understands.
type Key uint8

const (
	KeyShopPrev Key = iota
	KeyShopNext
	KeyStreetPrev
	KeyStreetNext
	KeyMusic
	numKeys
)

var keyNames = [numKeys]string{"shop-prev", "shop-next", "street-prev", "street-next", "music"}

// String returns the key name used in test scripts.
func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey maps a script key name back to a Key.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}

// InputSource reports the raw level state of the input devices for the
// current tick. The router derives edges itself.
type InputSource interface {
	KeyDown(k Key) bool
	// Pointer returns the primary pointer position in screen coordinates
	// and whether it is pressed.
	Pointer() (x, y float64, pressed bool)
}

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	blocked bool
	shop    int // shop under the press, -1 for none
	startX  float64
	startY  float64
	lastX   float64
	lastY   float64
}

// InputRouter turns buttons, keys, pointer drags and dropdown picks into
// the two canonical navigation operations (step and street jump), plus
// direct shop selection from hit-tests.
type InputRouter struct {
	nav            Navigation
	swipeThreshold float64

	hitTest  func(wx, wy float64) int
	toWorld  func(sx, sy float64) (float64, float64)
	onMusic  func()
	keysDown [numKeys]bool
	pointer  pointerState

	// Blocker, when set, claims screen points that belong to an overlay.
	// A press that starts on a claimed point is ignored entirely.
	Blocker func(sx, sy float64) bool
}

// NewInputRouter creates a router driving nav. A non-positive threshold
// falls back to DefaultSwipeThreshold.
func NewInputRouter(nav Navigation, swipeThreshold float64) *InputRouter {
	if swipeThreshold <= 0 {
		swipeThreshold = DefaultSwipeThreshold
	}
	return &InputRouter{nav: nav, swipeThreshold: swipeThreshold}
}

// SetHitTester installs the function mapping a world point to a shop index
// (or -1).
func (r *InputRouter) SetHitTester(fn func(wx, wy float64) int) { r.hitTest = fn }

// SetScreenToWorld installs the camera conversion used before hit-testing.
func (r *InputRouter) SetScreenToWorld(fn func(sx, sy float64) (float64, float64)) {
	r.toWorld = fn
}

// SetMusicToggle installs the action bound to KeyMusic.
func (r *InputRouter) SetMusicToggle(fn func()) { r.onMusic = fn }

// SwipeThreshold returns the swipe distance in pixels.
func (r *InputRouter) SwipeThreshold() float64 { return r.swipeThreshold }

// Click handles a discrete on-screen arrow button. No debouncing: a click
// is already a single event.
func (r *InputRouter) Click(dir Direction) int {
	return r.nav.Step(dir)
}

// ClickStreet handles a discrete previous/next street button.
func (r *InputRouter) ClickStreet(dir Direction) bool {
	return r.nav.StepStreet(dir)
}

// Select handles a dropdown pick. Closing the dropdown is the overlay's job.
func (r *InputRouter) Select(streetName string) bool {
	return r.nav.JumpToStreet(streetName)
}

// Process reads one tick of device state from src.
func (r *InputRouter) Process(src InputSource) {
	for k := Key(0); k < numKeys; k++ {
		r.processKey(k, src.KeyDown(k))
	}
	x, y, pressed := src.Pointer()
	r.processPointer(x, y, pressed)
}

// processKey is edge-triggered: an action fires on the up→down transition
// only, so a held key (and its OS auto-repeat) produces one action.
func (r *InputRouter) processKey(k Key, down bool) {
	was := r.keysDown[k]
	r.keysDown[k] = down
	if !down || was {
		return
	}
	switch k {
	case KeyShopPrev:
		r.nav.Step(Previous)
	case KeyShopNext:
		r.nav.Step(Next)
	case KeyStreetPrev:
		r.nav.StepStreet(Previous)
	case KeyStreetNext:
		r.nav.StepStreet(Next)
	case KeyMusic:
		if r.onMusic != nil {
			r.onMusic()
		}
	}
}

// processPointer runs the press/drag/release state machine for the primary
// pointer. Screen coordinates are used for the swipe distance; world
// coordinates for hit-testing.
//
// Nothing changes until release. A release within the swipe threshold is a
// tap and selects the shop under the press; past it, the gesture is a swipe
// and steps once from the current shop, wherever it started.
func (r *InputRouter) processPointer(sx, sy float64, pressed bool) {
	ps := &r.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		ps.shop = -1
		ps.blocked = r.Blocker != nil && r.Blocker(sx, sy)
		if !ps.blocked {
			ps.shop = r.shopAt(sx, sy)
		}

	case !pressed && ps.down:
		ps.down = false
		if ps.blocked {
			ps.blocked = false
			return
		}
		dx := sx - ps.startX
		if math.Abs(dx) <= r.swipeThreshold {
			if ps.shop >= 0 {
				r.nav.SelectShop(ps.shop)
			}
			return
		}
		// Content follows the finger: dragging right reveals what is to
		// the left.
		if dx > 0 {
			r.nav.Step(Previous)
		} else {
			r.nav.Step(Next)
		}

	case pressed && ps.down:
		ps.lastX, ps.lastY = sx, sy
	}
}

func (r *InputRouter) shopAt(sx, sy float64) int {
	if r.hitTest == nil {
		return -1
	}
	wx, wy := sx, sy
	if r.toWorld != nil {
		wx, wy = r.toWorld(sx, sy)
	}
	return r.hitTest(wx, wy)
}

// --- Ebitengine source ---

// EbitenInput reads keyboard, mouse and the first touch point from
// Ebitengine. Call from inside Game.Update only.
type EbitenInput struct {
	touchIDs     []ebiten.TouchID
	lastTouchX   float64
	lastTouchY   float64
	touchPressed bool
}

var keyBindings = [numKeys][]ebiten.Key{
	KeyShopPrev:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	KeyShopNext:   {ebiten.KeyArrowRight, ebiten.KeyD},
	KeyStreetPrev: {ebiten.KeyArrowUp, ebiten.KeyPageUp},
	KeyStreetNext: {ebiten.KeyArrowDown, ebiten.KeyPageDown},
	KeyMusic:      {ebiten.KeyM},
}

// KeyDown reports whether any physical key bound to k is held.
func (e *EbitenInput) KeyDown(k Key) bool {
	for _, key := range keyBindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Pointer prefers an active touch over the mouse. When a touch lifts, its
// last position is reported with pressed=false so the swipe distance is
// measured where the finger left the screen.
func (e *EbitenInput) Pointer() (float64, float64, bool) {
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	if len(e.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(e.touchIDs[0])
		e.lastTouchX, e.lastTouchY = float64(tx), float64(ty)
		e.touchPressed = true
		return e.lastTouchX, e.lastTouchY, true
	}
	if e.touchPressed {
		e.touchPressed = false
		return e.lastTouchX, e.lastTouchY, false
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
