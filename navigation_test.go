package neonstreet

import (
	"errors"
	"testing"
)

func newTestNavigator(t *testing.T) *Navigator {
	t.Helper()
	cfg := DefaultConfig()
	nav, err := NewNavigator(cfg.StreetList(), cfg.NavigatorOptions())
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return nav
}

func TestNavigatorStepClampsAtLast(t *testing.T) {
	nav := newTestNavigator(t)
	if nav.ShopIndex() != 2 {
		t.Fatalf("start index = %d, want 2", nav.ShopIndex())
	}
	var got int
	for range 3 {
		got = nav.Step(Next)
	}
	if got != 4 || nav.ShopIndex() != 4 {
		t.Errorf("after 3 steps index = %d (returned %d), want 4", nav.ShopIndex(), got)
	}
	if !nav.AtLastShop() {
		t.Error("AtLastShop = false")
	}
}

func TestNavigatorStepClampsAtFirst(t *testing.T) {
	nav := newTestNavigator(t)
	for range 10 {
		nav.Step(Previous)
	}
	if nav.ShopIndex() != 0 {
		t.Errorf("index = %d, want 0", nav.ShopIndex())
	}
	if !nav.AtFirstShop() {
		t.Error("AtFirstShop = false")
	}
}

func TestNavigatorStepRoundTrip(t *testing.T) {
	nav := newTestNavigator(t)
	for start := range 5 {
		nav.SelectShop(start)
		if start == 0 || start == 4 {
			continue
		}
		nav.Step(Next)
		nav.Step(Previous)
		if nav.ShopIndex() != start {
			t.Errorf("next then previous from %d landed on %d", start, nav.ShopIndex())
		}
	}
}

func TestNavigatorAbsorbedStepDoesNotNotify(t *testing.T) {
	nav := newTestNavigator(t)
	nav.SelectShop(4)
	var calls int
	nav.OnChange(func(NavigationEvent) { calls++ })
	nav.Step(Next)
	nav.Step(Next)
	if calls != 0 {
		t.Errorf("absorbed steps notified %d times", calls)
	}
}

func TestNavigatorJumpToStreetResetsShop(t *testing.T) {
	nav := newTestNavigator(t)
	nav.Step(Next)
	nav.Step(Next)
	if !nav.JumpToStreet("Chrome Alley") {
		t.Fatal("JumpToStreet returned false")
	}
	if nav.StreetIndex() != 1 {
		t.Errorf("street = %d, want 1", nav.StreetIndex())
	}
	if nav.ShopIndex() != 2 {
		t.Errorf("shop after jump = %d, want middle 2", nav.ShopIndex())
	}
}

func TestNavigatorJumpToActiveStreetResets(t *testing.T) {
	nav := newTestNavigator(t)
	nav.Step(Previous)
	var evt NavigationEvent
	nav.OnChange(func(e NavigationEvent) { evt = e })
	if !nav.JumpToStreet("Neon Boulevard") {
		t.Fatal("jump to the active street returned false")
	}
	if nav.ShopIndex() != 2 || evt.Type != EventStreetChanged {
		t.Errorf("shop = %d, event = %+v", nav.ShopIndex(), evt)
	}
}

func TestNavigatorJumpToUnknownStreet(t *testing.T) {
	nav := newTestNavigator(t)
	nav.Step(Next)
	var calls int
	nav.OnChange(func(NavigationEvent) { calls++ })

	for _, name := range []string{"", "Nowhere", "neon boulevard"} {
		if nav.JumpToStreet(name) {
			t.Errorf("JumpToStreet(%q) = true", name)
		}
	}
	if nav.StreetIndex() != 0 || nav.ShopIndex() != 3 || calls != 0 {
		t.Errorf("state changed: street %d shop %d calls %d", nav.StreetIndex(), nav.ShopIndex(), calls)
	}
}

func TestNavigatorStepStreet(t *testing.T) {
	nav := newTestNavigator(t)
	if nav.StepStreet(Previous) {
		t.Error("StepStreet(Previous) at first street returned true")
	}
	for i := 1; i < 4; i++ {
		nav.Step(Next)
		if !nav.StepStreet(Next) {
			t.Fatalf("StepStreet(Next) to %d returned false", i)
		}
		if nav.StreetIndex() != i || nav.ShopIndex() != 2 {
			t.Errorf("street %d shop %d, want street %d shop 2", nav.StreetIndex(), nav.ShopIndex(), i)
		}
	}
	if nav.StepStreet(Next) || !nav.AtLastStreet() {
		t.Error("StepStreet(Next) at last street should be absorbed")
	}
}

func TestNavigatorPerStreetShops(t *testing.T) {
	shops := DefaultConfig().ShopList()
	streets := []Street{
		{Name: "Main"},
		{Name: "Short", Shops: shops[:3]},
		{Name: "Tiny", Shops: shops[:1]},
	}

	tests := []struct {
		name      string
		reset     int
		street    string
		wantShop  int
		wantCount int
	}{
		{"middle of three", -1, "Short", 1, 3},
		{"single shop", -1, "Tiny", 0, 1},
		{"fixed reset", 0, "Short", 0, 3},
		{"reset clamped", 4, "Short", 2, 3},
		{"default list", 4, "Main", 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, err := NewNavigator(streets, NavigatorOptions{DefaultShops: shops, StartShop: 0, ResetShop: tt.reset})
			if err != nil {
				t.Fatal(err)
			}
			nav.JumpToStreet(tt.street)
			if nav.ShopIndex() != tt.wantShop || nav.ShopCount() != tt.wantCount {
				t.Errorf("shop %d of %d, want %d of %d", nav.ShopIndex(), nav.ShopCount(), tt.wantShop, tt.wantCount)
			}
		})
	}
}

func TestNewNavigatorErrors(t *testing.T) {
	shops := DefaultConfig().ShopList()
	tests := []struct {
		name    string
		streets []Street
		opts    NavigatorOptions
		want    error
	}{
		{"no streets", nil, NavigatorOptions{DefaultShops: shops}, ErrNoStreets},
		{"no shops", []Street{{Name: "A"}}, NavigatorOptions{}, ErrNoShops},
		{"bad start street", []Street{{Name: "A"}}, NavigatorOptions{DefaultShops: shops, StartStreet: 1}, ErrInvalidIndex},
		{"bad start shop", []Street{{Name: "A"}}, NavigatorOptions{DefaultShops: shops, StartShop: 5}, ErrInvalidIndex},
		{"negative start shop", []Street{{Name: "A"}}, NavigatorOptions{DefaultShops: shops, StartShop: -1}, ErrInvalidIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNavigator(tt.streets, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNavigatorSelectShop(t *testing.T) {
	nav := newTestNavigator(t)
	tests := []struct {
		i    int
		want bool
	}{
		{2, false}, // already active
		{-1, false},
		{5, false},
		{0, true},
		{4, true},
	}
	for _, tt := range tests {
		if got := nav.SelectShop(tt.i); got != tt.want {
			t.Errorf("SelectShop(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
	if nav.ShopIndex() != 4 {
		t.Errorf("index = %d, want 4", nav.ShopIndex())
	}
}

func TestNavigatorOnChangeRemove(t *testing.T) {
	nav := newTestNavigator(t)
	var a, b []NavigationEvent
	ha := nav.OnChange(func(e NavigationEvent) { a = append(a, e) })
	nav.OnChange(func(e NavigationEvent) { b = append(b, e) })

	nav.Step(Next)
	ha.Remove()
	ha.Remove() // second remove is a no-op
	nav.Step(Next)

	if len(a) != 1 || len(b) != 2 {
		t.Fatalf("a got %d events, b got %d; want 1 and 2", len(a), len(b))
	}
	e := b[1]
	if e.Type != EventShopChanged || e.ShopIndex != 4 || e.ShopID != "shop-5" || e.StreetName != "Neon Boulevard" {
		t.Errorf("event = %+v", e)
	}
}

type recordingStore struct {
	events []NavigationEvent
}

func (s *recordingStore) EmitEvent(e NavigationEvent) { s.events = append(s.events, e) }

func TestNavigatorEventStore(t *testing.T) {
	nav := newTestNavigator(t)
	store := &recordingStore{}
	nav.SetEventStore(store)

	nav.Step(Previous)
	nav.StepStreet(Next)
	nav.JumpToStreet("missing")

	if len(store.events) != 2 {
		t.Fatalf("store got %d events, want 2", len(store.events))
	}
	if store.events[1].Type != EventStreetChanged || store.events[1].StreetIndex != 1 {
		t.Errorf("second event = %+v", store.events[1])
	}
}

func TestNavigatorStreetsIsCopy(t *testing.T) {
	nav := newTestNavigator(t)
	s := nav.Streets()
	s[0].Name = "changed"
	if nav.ActiveStreet().Name != "Neon Boulevard" {
		t.Error("mutating Streets() leaked into the navigator")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		in   EventType
		want string
	}{
		{EventShopChanged, "shop-changed"},
		{EventStreetChanged, "street-changed"},
		{EventType(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
