package neonstreet

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MotionMode selects how the tracked entity approaches its target.
type MotionMode uint8

const (
	// MotionTween eases from the current position to the target over the
	// requested duration.
	MotionTween MotionMode = iota
	// MotionFollow applies a per-frame damped approach
	// (position += (target - position) * damping) and ignores durations.
	MotionFollow
)

const (
	// settleEpsilon is the distance in pixels below which a follow is
	// considered at rest and snapped onto its target.
	settleEpsilon = 0.01
	// referenceTPS is the tick rate the follow damping factor is tuned for.
	referenceTPS = 60
)

// Motion animates one tracked entity (avatar or camera focus) toward a
// target. It is frame driven: nothing moves until Update is called.
//
// There is no global animation manager; the owner calls Update each tick.
type Motion struct {
	mode    MotionMode
	easeFn  ease.TweenFunc
	damping float64

	pos    Vec2
	target Vec2
	tweenX *gween.Tween
	tweenY *gween.Tween
	moving bool
}

// NewMotion places the entity at start, at rest. A nil easing function
// defaults to cubic ease-out. Damping is clamped to (0, 1].
func NewMotion(start Vec2, mode MotionMode, damping float64, easeFn ease.TweenFunc) *Motion {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	if damping <= 0 || damping > 1 {
		damping = 1
	}
	return &Motion{
		mode:    mode,
		easeFn:  easeFn,
		damping: damping,
		pos:     start,
		target:  start,
	}
}

// MoveTo starts, or retargets, an animation toward target. A retarget
// always begins from the current rendered position. Asking for the target
// already being approached, or already reached, changes nothing.
func (m *Motion) MoveTo(target Vec2, duration time.Duration) {
	if target == m.target && (m.moving || m.pos == target) {
		return
	}
	m.target = target
	m.moving = true

	if m.mode == MotionFollow {
		return
	}
	secs := float32(duration.Seconds())
	if secs <= 0 {
		secs = 1.0 / referenceTPS
	}
	m.tweenX = gween.New(float32(m.pos.X), float32(target.X), secs, m.easeFn)
	m.tweenY = gween.New(float32(m.pos.Y), float32(target.Y), secs, m.easeFn)
}

// Update advances the animation by dt seconds.
func (m *Motion) Update(dt float32) {
	if !m.moving {
		return
	}
	if m.mode == MotionFollow {
		m.follow(float64(dt))
		return
	}

	x, doneX := m.tweenX.Update(dt)
	y, doneY := m.tweenY.Update(dt)
	m.pos = Vec2{X: float64(x), Y: float64(y)}
	if doneX && doneY {
		m.settle()
	}
}

// follow applies the damped approach, scaled so the response matches the
// reference tick rate whatever dt is.
func (m *Motion) follow(dt float64) {
	f := 1 - math.Pow(1-m.damping, dt*referenceTPS)
	m.pos.X += (m.target.X - m.pos.X) * f
	m.pos.Y += (m.target.Y - m.pos.Y) * f
	if math.Abs(m.target.X-m.pos.X) < settleEpsilon && math.Abs(m.target.Y-m.pos.Y) < settleEpsilon {
		m.settle()
	}
}

func (m *Motion) settle() {
	m.pos = m.target
	m.moving = false
	m.tweenX, m.tweenY = nil, nil
}

// Sync places the entity on p immediately and cancels any animation. Used
// at initialization and after a resize, when the old coordinates no longer
// mean anything.
func (m *Motion) Sync(p Vec2) {
	m.target = p
	m.settle()
}

// Position returns the current rendered position.
func (m *Motion) Position() Vec2 { return m.pos }

// Target returns the position being approached.
func (m *Motion) Target() Vec2 { return m.target }

// Moving reports whether an animation is in flight.
func (m *Motion) Moving() bool { return m.moving }

// Mode returns the motion mode.
func (m *Motion) Mode() MotionMode { return m.mode }
