package neonstreet

import (
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// panEase shapes the scrolling camera's pan to a newly active shop.
var panEase = ease.OutCubic

// Scene is the top-level object that owns the layout, the navigation
// state, the avatar motion, the camera and the input router. It implements
// ebiten.Game.
//
// Data flows one way: input router → navigator → layout lookup → motion.
// The decorator only ever receives coordinates.
type Scene struct {
	cfg      Config
	duration time.Duration

	layout *Layout
	nav    *Navigator
	motion *Motion
	camera *Camera
	router *InputRouter
	bridge *Bridge
	audio  AudioPlayer
	deco   Decorator
	input  InputSource
	handle CallbackHandle

	updateFunc func() error
	drawFunc   func(screen *ebiten.Image)
	debug      bool

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is the directory Screenshot writes PNG files to.
	ScreenshotDir string
}

// NewScene validates cfg and builds a scene for the given viewport. The
// avatar starts on the configured shop, at rest. Music is silent until
// SetAudio is called.
func NewScene(cfg Config, vp Viewport) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	nav, err := NewNavigator(cfg.StreetList(), cfg.NavigatorOptions())
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	layout, err := NewLayout(vp, nav.ShopCount(), cfg.LayoutParams())
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	start, _ := layout.Position(nav.ShopIndex())

	s := &Scene{
		cfg:           cfg,
		duration:      cfg.AnimationDuration(),
		layout:        layout,
		nav:           nav,
		motion:        NewMotion(start, cfg.MotionMode(), cfg.FollowDamping, nil),
		camera:        NewCamera(Rect{Width: vp.Width, Height: vp.Height}),
		audio:         SilentAudio{},
		deco:          NewPlaceholderDecorator(),
		input:         &EbitenInput{},
		ScreenshotDir: "screenshots",
	}
	s.router = NewInputRouter(nav, cfg.SwipeThreshold)
	s.router.SetHitTester(layout.ShopAt)
	s.router.SetScreenToWorld(s.camera.ScreenToWorld)
	s.bridge = NewBridge(nav, s.router, s.audio)
	s.router.SetMusicToggle(func() { s.bridge.ToggleMusic() })
	s.handle = nav.OnChange(s.onNavigate)

	s.configureCamera()
	s.placeDecor()

	logger.Info("scene ready",
		"street", nav.ActiveStreet().Name,
		"shop", nav.ShopIndex(),
		"width", vp.Width, "height", vp.Height)
	return s, nil
}

// Bridge returns the overlay command/query surface.
func (s *Scene) Bridge() *Bridge { return s.bridge }

// Navigator returns the navigation state.
func (s *Scene) Navigator() *Navigator { return s.nav }

// StreetLayout returns the position table.
func (s *Scene) StreetLayout() *Layout { return s.layout }

// Motion returns the avatar motion controller.
func (s *Scene) Motion() *Motion { return s.motion }

// Camera returns the view camera.
func (s *Scene) Camera() *Camera { return s.camera }

// Router returns the input router.
func (s *Scene) Router() *InputRouter { return s.router }

// Config returns the configuration the scene was built from.
func (s *Scene) Config() Config { return s.cfg }

// SetAudio installs the music player used by the bridge. A nil player
// restores SilentAudio. The player being replaced is closed if it holds
// resources, and the next toggle starts the new one from the top.
func (s *Scene) SetAudio(a AudioPlayer) {
	if a == nil {
		a = SilentAudio{}
	}
	if s.audio == a {
		return
	}
	if c, ok := s.audio.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("closing replaced music player", "err", err)
		}
	}
	s.audio = a
	s.bridge.audio = a
	s.bridge.started = false
}

// SetDecorator replaces the placeholder decorator.
func (s *Scene) SetDecorator(d Decorator) {
	if d == nil {
		d = NewPlaceholderDecorator()
	}
	s.deco = d
	s.placeDecor()
}

// SetInputSource replaces the device source read each tick. Nil disables
// device input; injected events still work.
func (s *Scene) SetInputSource(src InputSource) {
	s.input = src
}

// SetEventStore sets the optional ECS bridge.
func (s *Scene) SetEventStore(store EventStore) {
	s.nav.SetEventStore(store)
}

// SetUpdateFunc registers a callback run once per tick after input has
// been routed and before motion advances.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDrawFunc registers a callback drawn on top of the street, in screen
// space. Overlays use it.
func (s *Scene) SetDrawFunc(fn func(screen *ebiten.Image)) {
	s.drawFunc = fn
}

// SetDebugMode enables per-frame timing logs at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Resize rebuilds the geometry for a new viewport and snaps the avatar and
// camera onto the active shop. Invalid or unchanged viewports are ignored,
// so calling it every frame is harmless.
func (s *Scene) Resize(vp Viewport) bool {
	if !s.layout.Resize(vp) {
		return false
	}
	p, _ := s.layout.Position(s.nav.ShopIndex())
	s.motion.Sync(p)
	s.configureCamera()
	s.placeDecor()
	return true
}

// Update implements ebiten.Game.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	err := s.Tick(dt)
	if s.debug {
		s.debugLog(frameStats{phase: "update", elapsed: time.Since(t0)})
	}
	return err
}

// Tick advances the scene by dt seconds: scripted steps, input, the
// update callback, then motion and camera. Update calls it with 1/TPS;
// frontends without an Ebitengine loop call it from their own ticker.
func (s *Scene) Tick(dt float32) error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.motion.Update(dt)
	s.camera.Update(dt)
	s.deco.PlaceAvatar(s.motion.Position())
	return nil
}

func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.input != nil {
		s.router.Process(s.input)
	}
}

// Draw implements ebiten.Game.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.deco.Draw(screen, s.camera)
	if s.drawFunc != nil {
		s.drawFunc(screen)
	}
	s.flushScreenshots(screen)
	if s.debug {
		s.debugLog(frameStats{phase: "draw", elapsed: time.Since(t0)})
	}
}

// Layout implements ebiten.Game. The logical screen always matches the
// window, so the street reflows instead of scaling.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if !vp.Valid() {
		cur := s.layout.Viewport()
		return int(cur.Width), int(cur.Height)
	}
	s.Resize(vp)
	return outsideWidth, outsideHeight
}

// Close detaches the scene from its navigator and releases the music.
func (s *Scene) Close() error {
	s.handle.Remove()
	if c, ok := s.audio.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Scene) onNavigate(evt NavigationEvent) {
	scrolling := s.layout.Params().Mode == LayoutScrolling
	if evt.Type == EventStreetChanged {
		if s.layout.SetShopCount(s.nav.ShopCount()) && scrolling {
			s.camera.SetBounds(s.layout.WorldBounds())
		}
		s.placeDecor()
	}
	target, ok := s.layout.Position(evt.ShopIndex)
	if !ok {
		return
	}
	s.motion.MoveTo(target, s.duration)
	if scrolling {
		s.camera.PanTo(target.X, target.Y, s.duration, panEase)
	}
	s.deco.Highlight(evt.ShopIndex)
}

// configureCamera centers the camera in fractions mode. In scrolling mode
// it clamps to the street's world and snaps onto the active shop; later
// moves pan from onNavigate.
func (s *Scene) configureCamera() {
	vp := s.layout.Viewport()
	s.camera.SetViewport(Rect{Width: vp.Width, Height: vp.Height})
	if s.layout.Params().Mode == LayoutScrolling {
		s.camera.SetBounds(s.layout.WorldBounds())
		p, _ := s.layout.Position(s.nav.ShopIndex())
		s.camera.Snap(p.X, p.Y)
		return
	}
	s.camera.ClearBounds()
	s.camera.Snap(vp.Width/2, vp.Height/2)
}

func (s *Scene) placeDecor() {
	n := s.layout.ShopCount()
	hit := make([]Rect, n)
	for i := range hit {
		hit[i], _ = s.layout.HitRegion(i)
	}
	s.deco.PlaceShops(s.nav.Shops(), s.layout.Positions(), hit)
	s.deco.Highlight(s.nav.ShopIndex())
	s.deco.PlaceAvatar(s.motion.Position())
}
