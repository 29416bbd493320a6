package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/neonstreet"
	"github.com/spf13/cobra"
)

// A terminal cell stands for this many layout pixels, so swipe thresholds
// and tween distances keep their meaning.
const (
	cellW = 8
	cellH = 16
)

func tuiCmd(gf *globalFlags) *cobra.Command {
	var noMusic bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Walk the street in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(gf.configPath)
			if err != nil {
				return err
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			t, err := newTerminal(screen, cfg, noMusic)
			if err != nil {
				return err
			}
			defer t.cleanup()
			t.run()
			return nil
		},
	}

	cmd.Flags().BoolVar(&noMusic, "no-music", false, "never open the audio device")
	return cmd
}

type pointerSample struct {
	x, y    float64
	pressed bool
}

// termInput adapts tcell events to the level-triggered InputSource the
// router expects. Terminals report presses but not releases, so every key
// event becomes one tick down followed by one tick up.
type termInput struct {
	pending map[neonstreet.Key]int
	held    map[neonstreet.Key]bool
	samples []pointerSample
	last    pointerSample
}

func newTermInput() *termInput {
	return &termInput{
		pending: make(map[neonstreet.Key]int),
		held:    make(map[neonstreet.Key]bool),
	}
}

func (t *termInput) press(k neonstreet.Key) { t.pending[k]++ }

func (t *termInput) KeyDown(k neonstreet.Key) bool {
	if t.held[k] {
		t.held[k] = false
		return false
	}
	if t.pending[k] > 0 {
		t.pending[k]--
		t.held[k] = true
		return true
	}
	return false
}

// mouse queues a pointer sample in layout pixels. Motion with no button
// held is dropped.
func (t *termInput) mouse(col, row int, pressed bool) {
	prev := t.last
	if n := len(t.samples); n > 0 {
		prev = t.samples[n-1]
	}
	if !pressed && !prev.pressed {
		return
	}
	t.samples = append(t.samples, pointerSample{
		x:       float64(col*cellW + cellW/2),
		y:       float64(row*cellH + cellH/2),
		pressed: pressed,
	})
}

// Pointer replays one queued sample per tick so a quick click still shows
// up as a press and then a release.
func (t *termInput) Pointer() (float64, float64, bool) {
	if len(t.samples) > 0 {
		t.last = t.samples[0]
		t.samples = t.samples[1:]
	}
	return t.last.x, t.last.y, t.last.pressed
}

type terminal struct {
	screen     tcell.Screen
	scene      *neonstreet.Scene
	input      *termInput
	status     string
	statusLeft int
}

func newTerminal(screen tcell.Screen, cfg neonstreet.Config, noMusic bool) (*terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	cfg.Layout.ShopWidth = 14 * cellW
	cfg.Layout.ShopHeight = 6 * cellH
	cfg.Layout.Spacing = 6 * cellW
	cfg.Layout.WorldMargin = 10 * cellW

	cols, rows := screen.Size()
	scene, err := neonstreet.NewScene(cfg, viewportFor(cols, rows))
	if err != nil {
		screen.Fini()
		return nil, err
	}

	t := &terminal{screen: screen, scene: scene, input: newTermInput()}
	scene.SetInputSource(t.input)
	if !noMusic {
		scene.SetAudio(neonstreet.OpenMusic(cfg.Music.Path, cfg.Music.Volume))
		if cfg.Music.Autoplay {
			scene.Bridge().ToggleMusic()
		}
	}
	return t, nil
}

func viewportFor(cols, rows int) neonstreet.Viewport {
	return neonstreet.Viewport{Width: float64(cols * cellW), Height: float64(rows * cellH)}
}

func (t *terminal) cleanup() {
	t.scene.Close()
	t.screen.Fini()
}

func (t *terminal) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go pollEvents(t.screen, eventChan, quit)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			if err := t.tick(dt); err != nil {
				neonstreet.Logger().Error("tick", "err", err)
				return
			}
			t.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized, when
// PollEvent returns nil, or until quit is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func (t *terminal) tick(dt float32) error {
	if t.statusLeft > 0 {
		t.statusLeft--
		if t.statusLeft == 0 {
			t.status = ""
		}
	}
	return t.scene.Tick(dt)
}

func (t *terminal) flash(msg string) {
	t.status = msg
	t.statusLeft = statusTicks
}

func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		t.input.mouse(col, row, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.scene.Resize(viewportFor(cols, rows))
		t.screen.Sync()
	}
	return true
}

func (t *terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		t.input.press(neonstreet.KeyShopPrev)
	case tcell.KeyRight:
		t.input.press(neonstreet.KeyShopNext)
	case tcell.KeyUp, tcell.KeyPgUp:
		t.input.press(neonstreet.KeyStreetPrev)
	case tcell.KeyDown, tcell.KeyPgDn:
		t.input.press(neonstreet.KeyStreetNext)
	case tcell.KeyRune:
		return t.handleRune(ev.Rune())
	}
	return true
}

func (t *terminal) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r == 'a':
		t.input.press(neonstreet.KeyShopPrev)
	case r == 'd':
		t.input.press(neonstreet.KeyShopNext)
	case r == 'm':
		t.input.press(neonstreet.KeyMusic)
	case r == 'c':
		b := t.scene.Bridge()
		loc := fmt.Sprintf("%s / %s", b.ActiveStreetName(), b.ActiveShop().Label)
		if err := clipboard.WriteAll(loc); err != nil {
			t.flash("clipboard unavailable")
		} else {
			t.flash("copied: " + loc)
		}
	case r >= '1' && r <= '9':
		// Number keys stand in for the street dropdown.
		streets := t.scene.Bridge().Streets()
		if i := int(r - '1'); i < len(streets) {
			t.scene.Bridge().JumpToStreet(streets[i].Name)
		}
	}
	return true
}

func (t *terminal) draw() {
	s := t.screen
	s.Clear()
	cols, rows := s.Size()
	cam := t.scene.Camera()
	b := t.scene.Bridge()
	l := t.scene.StreetLayout()

	// Street tabs.
	x := 1
	for i, st := range b.Streets() {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if st.Name == b.ActiveStreetName() {
			style = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
		}
		x = putString(s, x, 0, fmt.Sprintf("[%d] %s", i+1, st.Name), style) + 2
	}

	// Ground.
	if p, ok := l.Position(0); ok {
		_, gy := cam.WorldToScreen(0, p.Y)
		row := int(gy / cellH)
		for c := 0; c < cols; c++ {
			s.SetContent(c, row, '═', nil, tcell.StyleDefault.Foreground(tcell.ColorPurple))
		}
	}

	shops := t.scene.Navigator().Shops()
	active := b.ShopIndex()
	view := cam.VisibleBounds()
	for i := range shops {
		r, _ := l.HitRegion(i)
		if !r.Overlaps(view) {
			continue
		}
		x0, y0 := cam.WorldToScreen(r.X, r.Y)
		x1, y1 := cam.WorldToScreen(r.X+r.Width, r.Y+r.Height)
		c := neonstreet.CategoryColor(shops[i].Category)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		if i == active {
			style = style.Bold(true)
		}
		drawBox(s, int(x0/cellW), int(y0/cellH), int(x1/cellW)-1, int(y1/cellH)-1, shops[i].Label, style)
	}

	p := t.scene.Motion().Position()
	ax, ay := cam.WorldToScreen(p.X, p.Y)
	avatar := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	s.SetContent(int(ax/cellW), int(ay/cellH)+1, '@', nil, avatar)

	if caption := b.ActiveShop().Caption; caption != "" {
		putString(s, max(0, int(ax/cellW)-len(caption)/2), int(ay/cellH)+2, caption, tcell.StyleDefault)
	}

	music := "off"
	if b.IsMusicPlaying() {
		music = "on"
	}
	footer := t.status
	if footer == "" {
		footer = "←/→ shops  ↑/↓ streets  1-9 jump  m music (" + music + ")  c copy  q quit"
	}
	putString(s, 1, rows-1, footer, tcell.StyleDefault.Foreground(tcell.ColorGray))
	s.Show()
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func drawBox(s tcell.Screen, x0, y0, x1, y1 int, label string, style tcell.Style) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, '─', nil, style)
		s.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, '│', nil, style)
		s.SetContent(x1, y, '│', nil, style)
	}
	s.SetContent(x0, y0, '┌', nil, style)
	s.SetContent(x1, y0, '┐', nil, style)
	s.SetContent(x0, y1, '└', nil, style)
	s.SetContent(x1, y1, '┘', nil, style)

	inner := x1 - x0 - 1
	if inner <= 0 {
		return
	}
	runes := []rune(label)
	if len(runes) > inner {
		runes = runes[:inner]
	}
	putString(s, x0+1+(inner-len(runes))/2, y0+1, string(runes), style)
}
