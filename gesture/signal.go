// Package gesture reduces perception-backend detections (hand landmarks or
// labeled bounding boxes) to the single boolean signal the effects consume.
package gesture

import (
	"go.uber.org/atomic"
)

// Signal is the process-wide gesture flag. One writer (the detection feed or
// the keyboard fallback), read by the active effect once per render frame.
// Last write wins; there is no queue and no back-pressure — a human gesture
// persists over many frames, so dropped intermediate detections are harmless.
type Signal struct {
	active atomic.Bool
}

// Set updates the flag
func (s *Signal) Set(active bool) {
	s.active.Store(active)
}

// Active returns the last written value
func (s *Signal) Active() bool {
	return s.active.Load()
}
