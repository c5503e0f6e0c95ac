package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glowfield/particle"
)

// cellAspect compensates terminal cells being roughly twice as tall as wide
const cellAspect = 0.5

// glyphRamp orders glyphs by apparent brightness; the point size picks the
// glyph so bigger particles read heavier
var glyphRamp = []rune{'·', '•', '●', '█'}

// Terminal renders the particle buffer onto a tcell screen, one cell per
// projected particle, brighter colors near the camera.
type Terminal struct {
	screen tcell.Screen
	width  int
	height int
	status string
}

// NewTerminal initializes the screen. The caller owns the event loop and
// must call Fini on the way out.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	t := &Terminal{screen: screen}
	t.width, t.height = screen.Size()
	return t, nil
}

// Screen exposes the underlying tcell screen for the host event loop
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// HandleResize refreshes cached dimensions after a tcell resize event
func (t *Terminal) HandleResize() {
	t.width, t.height = t.screen.Size()
	t.screen.Sync()
}

// Render projects and draws every particle, then flips the screen
func (t *Terminal) Render(buf *particle.Buffer, size float64) {
	t.screen.Clear()

	if buf != nil {
		glyph := glyphForSize(size)
		halfW := float64(t.width) / 2
		halfH := float64(t.height) / 2

		for i := 0; i < buf.Count; i++ {
			base := i * particle.Stride
			sx, sy, ok := project(buf.Positions[base], buf.Positions[base+1], buf.Positions[base+2])
			if !ok {
				continue
			}

			// Same world-to-cell scale on both axes, then aspect-correct Y
			col := int(halfW + sx*halfW)
			row := int(halfH - sy*halfW*cellAspect)
			if col < 0 || col >= t.width || row < 0 || row >= t.height {
				continue
			}

			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
				channelTo255(buf.Colors[base]),
				channelTo255(buf.Colors[base+1]),
				channelTo255(buf.Colors[base+2]),
			))
			t.screen.SetContent(col, row, glyph, nil, style)
		}
	}

	t.drawStatus()
	t.screen.Show()
}

// SetStatus replaces the status line drawn in the bottom-left corner; empty
// hides it
func (t *Terminal) SetStatus(status string) {
	t.status = status
}

func (t *Terminal) drawStatus() {
	if t.status == "" || t.height == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	row := t.height - 1
	for i, r := range t.status {
		if i >= t.width {
			break
		}
		t.screen.SetContent(i, row, r, nil, style)
	}
}

// Dispose clears the screen contents; the buffer itself is owned elsewhere.
// Idempotent: disposal after teardown is tolerated.
func (t *Terminal) Dispose() {
	if t.screen != nil {
		t.screen.Clear()
	}
}

// Fini restores the terminal. Idempotent via tcell.
func (t *Terminal) Fini() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

func glyphForSize(size float64) rune {
	switch {
	case size >= 0.08:
		return glyphRamp[3]
	case size >= 0.04:
		return glyphRamp[2]
	case size >= 0.02:
		return glyphRamp[1]
	default:
		return glyphRamp[0]
	}
}

func channelTo255(v float64) int32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return int32(v * 255)
}
