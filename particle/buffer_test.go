package particle

import (
	"testing"

	"github.com/lixenwraith/glowfield/vmath"
)

func TestNewBufferLengths(t *testing.T) {
	counts := []int{1, 7, 100, 4000}

	for _, count := range counts {
		buf := NewBuffer(count)
		if buf.Count != count {
			t.Errorf("Expected count %d, got %d", count, buf.Count)
		}
		if len(buf.Positions) != count*Stride {
			t.Errorf("Expected %d position floats, got %d", count*Stride, len(buf.Positions))
		}
		if len(buf.Colors) != count*Stride {
			t.Errorf("Expected %d color floats, got %d", count*Stride, len(buf.Colors))
		}
	}
}

func TestNewBufferNegativeCount(t *testing.T) {
	buf := NewBuffer(-5)
	if buf.Count != 0 || len(buf.Positions) != 0 {
		t.Errorf("Expected empty buffer for negative count, got count=%d", buf.Count)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	buf := NewBuffer(10)
	want := vmath.Vec3F{X: 1.5, Y: -2.25, Z: 3.75}

	buf.SetPosition(4, want)

	if got := buf.Position(4); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	// Neighbors stay untouched
	if got := buf.Position(3); got != (vmath.Vec3F{}) {
		t.Errorf("Expected neighbor 3 untouched, got %+v", got)
	}
	if got := buf.Position(5); got != (vmath.Vec3F{}) {
		t.Errorf("Expected neighbor 5 untouched, got %+v", got)
	}
}

func TestColorRoundTrip(t *testing.T) {
	buf := NewBuffer(3)
	want := vmath.Vec3F{X: 0.1, Y: 0.2, Z: 0.3}

	buf.SetColor(2, want)

	if got := buf.Color(2); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestIndexAddressesSameParticle(t *testing.T) {
	buf := NewBuffer(5)

	for i := 0; i < buf.Count; i++ {
		buf.SetPosition(i, vmath.Vec3F{X: float64(i)})
		buf.SetColor(i, vmath.Vec3F{Y: float64(i) / 10})
	}

	for i := 0; i < buf.Count; i++ {
		if buf.Position(i).X != float64(i) {
			t.Errorf("Position index %d corrupted: %+v", i, buf.Position(i))
		}
		if buf.Color(i).Y != float64(i)/10 {
			t.Errorf("Color index %d corrupted: %+v", i, buf.Color(i))
		}
	}
}
