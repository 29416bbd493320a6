package neonstreet

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

const tick = float32(1.0 / 60)

func runMotion(m *Motion, ticks int) {
	for range ticks {
		m.Update(tick)
	}
}

func TestMotionTweenReachesTarget(t *testing.T) {
	m := NewMotion(Vec2{X: 100, Y: 400}, MotionTween, 0, nil)
	m.MoveTo(Vec2{X: 500, Y: 400}, 500*time.Millisecond)
	if !m.Moving() {
		t.Fatal("Moving = false after MoveTo")
	}
	runMotion(m, 15)
	mid := m.Position().X
	if mid <= 100 || mid >= 500 {
		t.Errorf("mid-flight x = %v, want strictly between 100 and 500", mid)
	}
	runMotion(m, 30)
	if m.Moving() {
		t.Error("still moving after the full duration")
	}
	if m.Position() != (Vec2{X: 500, Y: 400}) {
		t.Errorf("final position = %v", m.Position())
	}
}

func TestMotionRetargetMidFlight(t *testing.T) {
	m := NewMotion(Vec2{X: 0, Y: 0}, MotionTween, 0, ease.Linear)
	m.MoveTo(Vec2{X: 1000}, time.Second)
	runMotion(m, 30) // halfway to 1000

	from := m.Position().X
	m.MoveTo(Vec2{X: 200}, time.Second)

	// The next frame continues from where the avatar was, not from the
	// first target or from the original start.
	m.Update(tick)
	if x := m.Position().X; x > from || x < 200 {
		t.Errorf("first frame after retarget x = %v, want within [200, %v]", x, from)
	}

	prev := m.Position().X
	for range 120 {
		m.Update(tick)
		x := m.Position().X
		if x < 200-1e-3 {
			t.Fatalf("overshot target: x = %v", x)
		}
		if x > prev+1e-3 {
			t.Fatalf("moved away from the new target: %v -> %v", prev, x)
		}
		prev = x
	}
	if m.Position().X != 200 || m.Moving() {
		t.Errorf("final = %v moving=%v, want 200 at rest", m.Position(), m.Moving())
	}
}

func TestMotionMoveToSameTargetIsNoop(t *testing.T) {
	m := NewMotion(Vec2{X: 0}, MotionTween, 0, ease.Linear)
	m.MoveTo(Vec2{X: 600}, time.Second)
	runMotion(m, 30)
	before := m.Position()

	// Re-requesting the same target must not restart the tween.
	m.MoveTo(Vec2{X: 600}, time.Second)
	m.Update(tick)
	if m.Position().X <= before.X {
		t.Errorf("tween restarted: %v -> %v", before, m.Position())
	}

	rest := NewMotion(Vec2{X: 50}, MotionTween, 0, nil)
	rest.MoveTo(Vec2{X: 50}, time.Second)
	if rest.Moving() {
		t.Error("MoveTo current position started an animation")
	}
}

func TestMotionFollowSettles(t *testing.T) {
	m := NewMotion(Vec2{X: 0, Y: 300}, MotionFollow, 0.1, nil)
	m.MoveTo(Vec2{X: 100, Y: 300}, time.Hour) // duration is ignored

	m.Update(tick)
	if !approxEqual(m.Position().X, 10, 1e-4) {
		t.Errorf("first follow step x = %v, want 10", m.Position().X)
	}

	prev := m.Position().X
	for i := 0; i < 600 && m.Moving(); i++ {
		m.Update(tick)
		x := m.Position().X
		if x < prev || x > 100 {
			t.Fatalf("follow not monotone: %v -> %v", prev, x)
		}
		prev = x
	}
	if m.Moving() || m.Position().X != 100 {
		t.Errorf("follow did not settle: %v moving=%v", m.Position(), m.Moving())
	}
}

func TestMotionFollowFrameRateIndependent(t *testing.T) {
	a := NewMotion(Vec2{}, MotionFollow, 0.2, nil)
	b := NewMotion(Vec2{}, MotionFollow, 0.2, nil)
	a.MoveTo(Vec2{X: 100}, 0)
	b.MoveTo(Vec2{X: 100}, 0)

	for range 10 {
		a.Update(1.0 / 60)
	}
	for range 5 {
		b.Update(1.0 / 30)
	}
	if !approxEqual(a.Position().X, b.Position().X, 1e-3) {
		t.Errorf("60 TPS x = %v, 30 TPS x = %v", a.Position().X, b.Position().X)
	}
}

func TestMotionSync(t *testing.T) {
	m := NewMotion(Vec2{}, MotionTween, 0, nil)
	m.MoveTo(Vec2{X: 400}, time.Second)
	runMotion(m, 5)
	m.Sync(Vec2{X: 250, Y: 280})
	if m.Moving() || m.Position() != (Vec2{X: 250, Y: 280}) || m.Target() != m.Position() {
		t.Errorf("after Sync: pos %v target %v moving %v", m.Position(), m.Target(), m.Moving())
	}
	m.Update(tick)
	if m.Position() != (Vec2{X: 250, Y: 280}) {
		t.Errorf("Update after Sync moved to %v", m.Position())
	}
}

func TestMotionZeroDurationTakesOneFrame(t *testing.T) {
	m := NewMotion(Vec2{}, MotionTween, 0, nil)
	m.MoveTo(Vec2{X: 10}, 0)
	m.Update(tick)
	if m.Moving() || m.Position().X != 10 {
		t.Errorf("after one frame: %v moving=%v", m.Position(), m.Moving())
	}
}

func TestNewMotionDefaults(t *testing.T) {
	m := NewMotion(Vec2{X: 1}, MotionFollow, 5, nil)
	if m.damping != 1 || m.easeFn == nil || m.Mode() != MotionFollow {
		t.Errorf("damping %v easeFn nil=%v mode %v", m.damping, m.easeFn == nil, m.Mode())
	}
}
