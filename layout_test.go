package neonstreet

import (
	"errors"
	"testing"
)

func TestComputePositionsFractions(t *testing.T) {
	p := DefaultLayoutParams()
	got := ComputePositions(Viewport{Width: 1000, Height: 600}, 5, p)
	want := []float64{140, 300, 500, 700, 860}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, x := range want {
		if !approxEqual(got[i].X, x, epsilon) {
			t.Errorf("positions[%d].X = %v, want %v", i, got[i].X, x)
		}
		if !approxEqual(got[i].Y, 420, epsilon) {
			t.Errorf("positions[%d].Y = %v, want 420", i, got[i].Y)
		}
	}
}

func TestLayoutResizeMovesMiddleShop(t *testing.T) {
	l, err := NewLayout(Viewport{Width: 1000, Height: 600}, 5, DefaultLayoutParams())
	if err != nil {
		t.Fatal(err)
	}
	p, _ := l.Position(2)
	if !approxEqual(p.X, 500, epsilon) {
		t.Fatalf("before resize x = %v, want 500", p.X)
	}
	if !l.Resize(Viewport{Width: 500, Height: 400}) {
		t.Fatal("Resize returned false for a new viewport")
	}
	p, _ = l.Position(2)
	if !approxEqual(p.X, 250, epsilon) {
		t.Errorf("after resize x = %v, want 250", p.X)
	}
	if !approxEqual(p.Y, 280, epsilon) {
		t.Errorf("after resize y = %v, want 280", p.Y)
	}
}

func TestLayoutResizeIgnoresInvalidAndUnchanged(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	l, _ := NewLayout(vp, 5, DefaultLayoutParams())
	before := append([]Vec2(nil), l.Positions()...)

	tests := []struct {
		name string
		vp   Viewport
	}{
		{"same", vp},
		{"zero width", Viewport{Width: 0, Height: 600}},
		{"zero height", Viewport{Width: 800, Height: 0}},
		{"negative", Viewport{Width: -1, Height: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if l.Resize(tt.vp) {
				t.Error("Resize returned true")
			}
			for i, p := range l.Positions() {
				if p != before[i] {
					t.Errorf("positions[%d] changed to %v", i, p)
				}
			}
		})
	}
}

func TestComputePositionsDeterministic(t *testing.T) {
	vp := Viewport{Width: 1366, Height: 768}
	for _, mode := range []LayoutMode{LayoutFractions, LayoutScrolling} {
		p := DefaultLayoutParams()
		p.Mode = mode
		a := ComputePositions(vp, 7, p)
		b := ComputePositions(vp, 7, p)
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("mode %d: positions[%d] differ: %v vs %v", mode, i, a[i], b[i])
			}
		}
	}
}

func TestComputePositionsStrictlyIncreasing(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720}
	for _, n := range []int{1, 2, 3, 5, 8} {
		for _, mode := range []LayoutMode{LayoutFractions, LayoutScrolling} {
			p := DefaultLayoutParams()
			p.Mode = mode
			got := ComputePositions(vp, n, p)
			if len(got) != n {
				t.Fatalf("n=%d mode=%d: len = %d", n, mode, len(got))
			}
			for i := 1; i < n; i++ {
				if got[i].X <= got[i-1].X {
					t.Errorf("n=%d mode=%d: x[%d]=%v not > x[%d]=%v", n, mode, i, got[i].X, i-1, got[i-1].X)
				}
			}
		}
	}
}

func TestComputePositionsSingleShopCentered(t *testing.T) {
	got := ComputePositions(Viewport{Width: 900, Height: 500}, 1, DefaultLayoutParams())
	if len(got) != 1 || !approxEqual(got[0].X, 450, epsilon) {
		t.Errorf("single shop = %v, want x=450", got)
	}
}

func TestComputePositionsEvenSpreadWhenCountDiffers(t *testing.T) {
	p := DefaultLayoutParams()
	got := ComputePositions(Viewport{Width: 1000, Height: 600}, 3, p)
	want := []float64{140, 500, 860}
	for i, x := range want {
		if !approxEqual(got[i].X, x, epsilon) {
			t.Errorf("positions[%d].X = %v, want %v", i, got[i].X, x)
		}
	}
}

func TestComputePositionsEmpty(t *testing.T) {
	if got := ComputePositions(Viewport{Width: 800, Height: 600}, 0, DefaultLayoutParams()); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestComputePositionsScrolling(t *testing.T) {
	p := DefaultLayoutParams()
	p.Mode = LayoutScrolling
	got := ComputePositions(Viewport{Width: 800, Height: 600}, 3, p)
	// margin + i*(shopW+spacing) + shopW/2
	want := []float64{420, 810, 1200}
	for i, x := range want {
		if !approxEqual(got[i].X, x, epsilon) {
			t.Errorf("positions[%d].X = %v, want %v", i, got[i].X, x)
		}
	}

	l, _ := NewLayout(Viewport{Width: 800, Height: 600}, 3, p)
	b := l.WorldBounds()
	if !approxEqual(b.Width, 3*390+600, epsilon) || b.Height != 600 {
		t.Errorf("WorldBounds = %+v", b)
	}
}

func TestNewLayoutErrors(t *testing.T) {
	if _, err := NewLayout(Viewport{}, 5, DefaultLayoutParams()); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("zero viewport err = %v, want ErrInvalidViewport", err)
	}
	if _, err := NewLayout(Viewport{Width: 10, Height: 10}, 0, DefaultLayoutParams()); !errors.Is(err, ErrNoShops) {
		t.Errorf("no shops err = %v, want ErrNoShops", err)
	}
}

func TestLayoutHitRegions(t *testing.T) {
	l, _ := NewLayout(Viewport{Width: 1000, Height: 600}, 5, DefaultLayoutParams())

	// Tightest gap is 160 (0.30-0.14), so regions shrink to 0.9*160 wide.
	r, ok := l.HitRegion(2)
	if !ok {
		t.Fatal("HitRegion(2) not ok")
	}
	if !approxEqual(r.Width, 144, epsilon) || !approxEqual(r.X, 428, epsilon) {
		t.Errorf("HitRegion(2) = %+v", r)
	}
	if !approxEqual(r.Y+r.Height, 420, epsilon) {
		t.Errorf("region bottom = %v, want ground 420", r.Y+r.Height)
	}

	for i := 1; i < 5; i++ {
		a, _ := l.HitRegion(i - 1)
		b, _ := l.HitRegion(i)
		if a.X+a.Width >= b.X {
			t.Errorf("regions %d and %d overlap", i-1, i)
		}
	}

	if _, ok := l.HitRegion(5); ok {
		t.Error("HitRegion(5) should be out of range")
	}

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"middle shop", 500, 300, 2},
		{"first shop", 140, 400, 0},
		{"between shops", 220, 300, -1},
		{"below ground", 500, 430, -1},
		{"above roof", 500, 100, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ShopAt(tt.x, tt.y); got != tt.want {
				t.Errorf("ShopAt(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLayoutSetShopCount(t *testing.T) {
	l, _ := NewLayout(Viewport{Width: 1000, Height: 600}, 5, DefaultLayoutParams())
	if l.SetShopCount(5) {
		t.Error("same count should report no change")
	}
	if l.SetShopCount(0) {
		t.Error("zero count should be ignored")
	}
	if !l.SetShopCount(3) {
		t.Fatal("SetShopCount(3) returned false")
	}
	if len(l.Positions()) != 3 || l.ShopCount() != 3 {
		t.Errorf("positions = %d, count = %d", len(l.Positions()), l.ShopCount())
	}
}
