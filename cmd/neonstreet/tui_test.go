package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/neonstreet"
)

func newTestTerminal(t *testing.T) (*terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	term, err := newTerminal(screen, neonstreet.DefaultConfig(), true)
	if err != nil {
		t.Fatalf("newTerminal: %v", err)
	}
	t.Cleanup(term.cleanup)
	return term, screen
}

func TestTermInputPulsesKeys(t *testing.T) {
	in := newTermInput()
	in.press(neonstreet.KeyShopNext)
	in.press(neonstreet.KeyShopNext)

	want := []bool{true, false, true, false, false}
	for i, w := range want {
		if got := in.KeyDown(neonstreet.KeyShopNext); got != w {
			t.Errorf("tick %d: KeyDown = %v, want %v", i, got, w)
		}
	}
}

func TestTermInputMouseClick(t *testing.T) {
	in := newTermInput()
	in.mouse(3, 2, false) // hover with no button is dropped
	in.mouse(3, 2, true)
	in.mouse(3, 2, false)

	x, y, pressed := in.Pointer()
	if x != 28 || y != 40 || !pressed {
		t.Errorf("first sample = (%v,%v,%v), want (28,40,true)", x, y, pressed)
	}
	if _, _, pressed = in.Pointer(); pressed {
		t.Error("second sample should be the release")
	}
	if _, _, pressed = in.Pointer(); pressed {
		t.Error("pointer stays released once the queue is empty")
	}
}

func TestTerminalKeys(t *testing.T) {
	term, _ := newTestTerminal(t)

	term.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	for range 2 {
		if err := term.tick(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}
	if got := term.scene.Navigator().ShopIndex(); got != 3 {
		t.Errorf("shop = %d, want 3", got)
	}

	term.handleRune('3')
	if got := term.scene.Bridge().ActiveStreetName(); got != "Synth Market" {
		t.Errorf("street = %q, want Synth Market", got)
	}
	if term.handleRune('q') {
		t.Error("q should quit")
	}
}

func TestTerminalStatusExpires(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.flash("copied: Neon Boulevard / YIELD")

	for range statusTicks - 1 {
		if err := term.tick(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}
	if term.status == "" {
		t.Fatal("status cleared early")
	}
	if err := term.tick(1.0 / 60); err != nil {
		t.Fatal(err)
	}
	if term.status != "" {
		t.Errorf("status = %q, want cleared", term.status)
	}
}

func TestTerminalDrawShowsStatus(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.flash("copied: x")
	term.draw()

	cells, w, h := screen.GetContents()
	var row []rune
	for _, c := range cells[(h-1)*w+1 : (h-1)*w+10] {
		row = append(row, c.Runes...)
	}
	if got := string(row); got != "copied: x" {
		t.Errorf("footer = %q, want %q", got, "copied: x")
	}
}

func TestPollEventsStopsAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	go func() {
		pollEvents(screen, events, make(chan struct{}))
		close(done)
	}()

	screen.Fini()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event loop still running after Fini")
	}
}

func TestPollEventsStopsOnQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	// Nobody reads events, so the loop can only leave through quit.
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		pollEvents(screen, events, quit)
		close(done)
	}()

	close(quit)
	screen.PostEvent(tcell.NewEventInterrupt(nil))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event loop ignored quit")
	}
}
