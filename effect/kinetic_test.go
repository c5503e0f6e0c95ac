package effect

import (
	"math"
	"testing"

	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/vmath"
)

func TestRainWrapsWithinOneFrame(t *testing.T) {
	eff := New(KindRain, vmath.NewFastRand(9)).(*Rain)
	cfg := DefaultConfig(KindRain)
	cfg.Count = 300
	buf := eff.Rebuild(cfg)

	// 30 seconds of frames: every particle wraps repeatedly
	for frame := 0; frame < 1800; frame++ {
		eff.Advance(buf, Context{Dt: testDt})

		for i := 0; i < buf.Count; i++ {
			y := buf.Position(i).Y
			if y < parameter.RainFloor {
				t.Fatalf("Frame %d: particle %d below floor after advance: %v", frame, i, y)
			}
			if y > parameter.RainCeiling {
				t.Fatalf("Frame %d: particle %d above ceiling: %v", frame, i, y)
			}
		}
	}
}

func TestRainNeverStops(t *testing.T) {
	eff := New(KindRain, vmath.NewFastRand(9)).(*Rain)
	cfg := DefaultConfig(KindRain)
	cfg.Count = 10
	buf := eff.Rebuild(cfg)

	prev := make([]float64, buf.Count)
	for i := 0; i < buf.Count; i++ {
		prev[i] = buf.Position(i).Y
	}

	eff.Advance(buf, Context{Dt: testDt})

	for i := 0; i < buf.Count; i++ {
		if buf.Position(i).Y == prev[i] {
			t.Errorf("Particle %d did not move", i)
		}
	}
}

func TestWaveStaysWithinAmplitude(t *testing.T) {
	eff := New(KindWave, vmath.NewFastRand(1)).(*Wave)
	cfg := DefaultConfig(KindWave)
	cfg.Count = 400
	buf := eff.Rebuild(cfg)

	for frame := 0; frame < 600; frame++ {
		eff.Advance(buf, Context{Elapsed: float64(frame) * testDt, Dt: testDt})

		for i := 0; i < buf.Count; i++ {
			if y := math.Abs(buf.Position(i).Y); y > parameter.WaveAmplitude+1e-9 {
				t.Fatalf("Frame %d: particle %d beyond amplitude: %v", frame, i, y)
			}
		}
	}
}

func TestGalaxySpinPreservesRadius(t *testing.T) {
	eff := New(KindGalaxy, vmath.NewFastRand(3)).(*Galaxy)
	cfg := DefaultConfig(KindGalaxy)
	cfg.Count = 200
	buf := eff.Rebuild(cfg)

	radii := make([]float64, buf.Count)
	for i := 0; i < buf.Count; i++ {
		pos := buf.Position(i)
		radii[i] = math.Hypot(pos.X, pos.Z)
	}

	eff.Advance(buf, Context{Elapsed: 3.7, Dt: testDt})

	for i := 0; i < buf.Count; i++ {
		pos := buf.Position(i)
		if math.Abs(math.Hypot(pos.X, pos.Z)-radii[i]) > 1e-9 {
			t.Fatalf("Particle %d changed radius while spinning", i)
		}
	}
}

func TestSphereParticlesStayOnShell(t *testing.T) {
	eff := New(KindSphere, vmath.NewFastRand(3)).(*Sphere)
	cfg := DefaultConfig(KindSphere)
	cfg.Count = 200
	buf := eff.Rebuild(cfg)

	eff.Advance(buf, Context{Elapsed: 1.23, Dt: testDt})

	// All particles share one radius at any instant
	want := vmath.V3FMag(buf.Position(0))
	for i := 1; i < buf.Count; i++ {
		if math.Abs(vmath.V3FMag(buf.Position(i))-want) > 1e-9 {
			t.Fatalf("Particle %d off shell: %v vs %v", i, vmath.V3FMag(buf.Position(i)), want)
		}
	}

	// And the radius pulses within its configured band
	lo := parameter.SphereRadius * (1 - parameter.SpherePulseAmplitude)
	hi := parameter.SphereRadius * (1 + parameter.SpherePulseAmplitude)
	if want < lo-1e-9 || want > hi+1e-9 {
		t.Errorf("Shell radius %v outside pulse band [%v, %v]", want, lo, hi)
	}
}
