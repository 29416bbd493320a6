package neonstreet

import "time"

// frameStats holds the timing of one Update or Draw call.
// Only collected when the scene is in debug mode.
type frameStats struct {
	phase   string
	elapsed time.Duration
}

// debugLog reports frame timings and the tracked entity at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	p := s.motion.Position()
	logger.Debug("frame",
		"phase", stats.phase,
		"elapsed", stats.elapsed,
		"x", p.X,
		"moving", s.motion.Moving(),
		"queued", len(s.injectQueue))
}
