package render

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/glowfield/particle"
)

// Logical window resolution; ebiten scales to the actual window
const (
	windowWidth  = 1024
	windowHeight = 768
)

// Window renders into an ebiten window and doubles as the frame driver:
// ebiten invokes Update once per display refresh, which forwards to OnFrame
// (the stage tick plus host input sampling). Render just parks the buffer
// for the next Draw — same goroutine, no locking needed.
type Window struct {
	// OnFrame receives (elapsed, dt) seconds each display refresh; a non-nil
	// error ends the loop (return ebiten.Termination for a clean quit)
	OnFrame func(elapsed, dt float64) error

	start       time.Time
	lastElapsed float64

	buf  *particle.Buffer
	size float64
}

// NewWindow creates the windowed renderer; Run starts the ebiten loop
func NewWindow(onFrame func(elapsed, dt float64) error) *Window {
	return &Window{OnFrame: onFrame}
}

// Run opens the window and blocks until it closes
func (w *Window) Run() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("glowfield")
	return ebiten.RunGame(w)
}

// Render implements PointRenderer
func (w *Window) Render(buf *particle.Buffer, size float64) {
	w.buf = buf
	w.size = size
}

// Dispose implements PointRenderer. Idempotent.
func (w *Window) Dispose() {
	w.buf = nil
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	if w.start.IsZero() {
		w.start = time.Now()
	}
	elapsed := time.Since(w.start).Seconds()
	dt := elapsed - w.lastElapsed
	w.lastElapsed = elapsed

	if w.OnFrame != nil {
		return w.OnFrame(elapsed, dt)
	}
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	if w.buf == nil {
		return
	}

	halfW := float64(windowWidth) / 2
	halfH := float64(windowHeight) / 2
	radius := pointRadius(w.size)

	for i := 0; i < w.buf.Count; i++ {
		base := i * particle.Stride
		sx, sy, ok := project(w.buf.Positions[base], w.buf.Positions[base+1], w.buf.Positions[base+2])
		if !ok {
			continue
		}

		px := float32(halfW + sx*halfW)
		py := float32(halfH - sy*halfW)

		vector.DrawFilledCircle(screen, px, py, radius, color.RGBA{
			R: uint8(channelTo255(w.buf.Colors[base])),
			G: uint8(channelTo255(w.buf.Colors[base+1])),
			B: uint8(channelTo255(w.buf.Colors[base+2])),
			A: 0xff,
		}, false)
	}
}

// Layout implements ebiten.Game
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// pointRadius maps world point size to pixels, clamped so particles stay
// visible but never blobby
func pointRadius(size float64) float32 {
	r := size * 150
	if r < 1 {
		r = 1
	}
	if r > 6 {
		r = 6
	}
	return float32(r)
}
