// Package audio plays the one-shot gesture cue. Playback is fire-and-forget
// with an active-flag guard; the stage cancels (never awaits) the cue on
// effect switch and teardown.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	cueFrequency = 880.0
	cueDuration  = 350 * time.Millisecond
)

// Cue is the audio side channel fired on a gesture rising edge. A trigger
// while the previous playback is still active is dropped, so cues never
// overlap. All failures are non-fatal: an uninitialized cue is silent.
type Cue struct {
	mu          sync.Mutex
	initialized bool
	playing     bool
	ctrl        *beep.Ctrl
}

// NewCue creates a silent, uninitialized cue
func NewCue() *Cue {
	return &Cue{}
}

// Init opens the speaker. Callers treat an error as "run without sound".
func (c *Cue) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Trigger starts the cue unless one is already playing or audio is down
func (c *Cue) Trigger() {
	c.mu.Lock()

	if !c.initialized || c.playing {
		c.mu.Unlock()
		return
	}

	tone, err := generators.SineTone(sampleRate, cueFrequency)
	if err != nil {
		c.mu.Unlock()
		return
	}

	c.playing = true
	ctrl := &beep.Ctrl{
		Streamer: beep.Take(sampleRate.N(cueDuration), tone),
	}
	c.ctrl = ctrl

	// Play outside c.mu: the completion callback runs under the speaker
	// lock and takes c.mu, so holding both here could deadlock
	c.mu.Unlock()

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		c.mu.Lock()
		c.playing = false
		c.ctrl = nil
		c.mu.Unlock()
	})))
}

// Cancel stops an in-flight cue immediately. Idempotent, safe before Init.
func (c *Cue) Cancel() {
	// The speaker lock must be taken without holding c.mu: the completion
	// callback runs under the speaker lock and takes c.mu itself.
	c.mu.Lock()
	ctrl := c.ctrl
	c.ctrl = nil
	c.playing = false
	c.mu.Unlock()

	if ctrl != nil {
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
	}
}

// Close shuts the speaker down. Idempotent.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	c.initialized = false
}
