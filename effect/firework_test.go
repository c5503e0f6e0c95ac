package effect

import (
	"math"
	"testing"

	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/vmath"
)

const testDt = 1.0 / 60

func newFirework(t *testing.T, count int) (*Firework, *particle.Buffer) {
	t.Helper()

	eff := New(KindFirework, vmath.NewFastRand(42)).(*Firework)
	cfg := DefaultConfig(KindFirework)
	cfg.Count = count
	buf := eff.Rebuild(cfg)
	return eff, buf
}

func TestFireworkStartsIdle(t *testing.T) {
	eff, _ := newFirework(t, 100)
	if eff.CurrentPhase() != PhaseIdle {
		t.Errorf("Expected IDLE after rebuild, got %v", eff.CurrentPhase())
	}
}

func TestFireworkIdleToLaunchToExplode(t *testing.T) {
	eff, buf := newFirework(t, 100)
	ctx := Context{Dt: testDt, Gesture: true}

	eff.Advance(buf, ctx)
	if eff.CurrentPhase() != PhaseLaunch {
		t.Fatalf("Expected LAUNCH after first gestured advance, got %v", eff.CurrentPhase())
	}

	// Threshold / step frames later the machine must explode; allow margin
	maxFrames := int(parameter.FireworkLaunchThreshold/parameter.FireworkLaunchStep) + 5
	for i := 0; i < maxFrames && eff.CurrentPhase() == PhaseLaunch; i++ {
		ctx.Elapsed += testDt
		eff.Advance(buf, ctx)
	}

	if eff.CurrentPhase() != PhaseExplode {
		t.Fatalf("Expected EXPLODE after launch threshold, got %v", eff.CurrentPhase())
	}
}

func TestFireworkLaunchDeterministicFrameCount(t *testing.T) {
	run := func() int {
		eff, buf := newFirework(t, 50)
		ctx := Context{Dt: testDt, Gesture: true}
		frames := 0
		for eff.CurrentPhase() != PhaseExplode {
			eff.Advance(buf, ctx)
			frames++
			if frames > 1000 {
				t.Fatal("Machine never reached EXPLODE")
			}
		}
		return frames
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Expected deterministic launch duration, got %d and %d frames", a, b)
	}
}

func TestFireworkLaunchAbortResetsToIdle(t *testing.T) {
	eff, buf := newFirework(t, 100)

	eff.Advance(buf, Context{Dt: testDt, Gesture: true})
	for i := 0; i < 10; i++ {
		eff.Advance(buf, Context{Dt: testDt, Gesture: true})
	}
	if eff.CurrentPhase() != PhaseLaunch {
		t.Fatalf("Expected LAUNCH mid-climb, got %v", eff.CurrentPhase())
	}

	// Releasing the gesture aborts on the next advance
	eff.Advance(buf, Context{Dt: testDt, Gesture: false})
	if eff.CurrentPhase() != PhaseIdle {
		t.Fatalf("Expected IDLE after gesture release, got %v", eff.CurrentPhase())
	}
	if eff.launchHeight != 0 {
		t.Errorf("Expected launch progress cleared, got %v", eff.launchHeight)
	}

	// Re-engaging must start the climb from zero
	eff.Advance(buf, Context{Dt: testDt, Gesture: true})
	eff.Advance(buf, Context{Dt: testDt, Gesture: true})
	if eff.launchHeight > 2*parameter.FireworkLaunchStep {
		t.Errorf("Expected climb restart from zero, got height %v", eff.launchHeight)
	}
}

func TestFireworkIdleConvergesToHeart(t *testing.T) {
	eff, buf := newFirework(t, 100)

	for i := 0; i < 500; i++ {
		eff.Advance(buf, Context{Dt: testDt})
	}

	for i := 0; i < buf.Count; i++ {
		got := buf.Position(i)
		want := eff.heart.Position(i)
		if vmath.V3FMag(vmath.V3FSub(got, want)) > 1e-6 {
			t.Fatalf("Particle %d did not converge to heart: got %+v want %+v", i, got, want)
		}
	}
}

func TestFireworkExplodeRespawnsWhileGestureHeld(t *testing.T) {
	eff, buf := newFirework(t, 200)
	ctx := Context{Dt: testDt, Gesture: true}

	for eff.CurrentPhase() != PhaseExplode {
		eff.Advance(buf, ctx)
	}

	// Long enough for gravity to drag everything through the floor at least
	// once; with the gesture held nothing may rest below the floor
	for i := 0; i < 5000; i++ {
		eff.Advance(buf, ctx)
	}

	below := 0
	for i := 0; i < buf.Count; i++ {
		if buf.Position(i).Y < parameter.FireworkFloor {
			below++
		}
	}
	if below > 0 {
		t.Errorf("Expected fountain respawn to keep particles above the floor, %d below", below)
	}
}

func TestFireworkExplodeFreezesAfterRelease(t *testing.T) {
	eff, buf := newFirework(t, 200)
	ctx := Context{Dt: testDt, Gesture: true}

	for eff.CurrentPhase() != PhaseExplode {
		eff.Advance(buf, ctx)
	}

	// Release and let gravity spend every particle
	released := Context{Dt: testDt, Gesture: false}
	for i := 0; i < 10000; i++ {
		eff.Advance(buf, released)
	}

	if eff.CurrentPhase() != PhaseExplode {
		t.Fatalf("Expected machine to stay in EXPLODE, got %v", eff.CurrentPhase())
	}

	for i := 0; i < buf.Count; i++ {
		y := buf.Position(i).Y
		if y < parameter.FireworkFloor-1e-9 {
			t.Fatalf("Particle %d sank below the floor: %v", i, y)
		}
		if math.Abs(y-parameter.FireworkFloor) > 1e-9 {
			t.Fatalf("Particle %d did not settle at the floor: %v", i, y)
		}
	}
}
