package vmath

import (
	"math"
	"testing"
)

func TestSmoothConvergesToTarget(t *testing.T) {
	target := 42.0
	cur := -10.0

	for i := 0; i < 1000; i++ {
		cur = Smooth(cur, target, 0.1)
	}

	if math.Abs(cur-target) > 1e-9 {
		t.Errorf("Expected convergence to %v, got %v", target, cur)
	}
}

func TestSmoothNeverOvershoots(t *testing.T) {
	rates := []float64{0.05, 0.1, 0.15, 0.5, 1.0}
	target := 5.0

	for _, rate := range rates {
		cur := 0.0
		for i := 0; i < 500; i++ {
			cur = Smooth(cur, target, rate)
			if cur > target {
				t.Errorf("Rate %v overshot target at step %d: %v > %v", rate, i, cur, target)
				break
			}
		}
	}
}

func TestSmoothFixedPoint(t *testing.T) {
	if got := Smooth(7.0, 7.0, 0.1); got != 7.0 {
		t.Errorf("Expected target to be a fixed point, got %v", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(1234)
	b := NewFastRand(1234)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(99)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}

func TestUnitSphereMagnitude(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.UnitSphere()
		mag := V3FMag(v)
		if math.Abs(mag-1.0) > 1e-9 {
			t.Fatalf("Expected unit magnitude, got %v", mag)
		}
	}
}

func TestUnitSphereCoversBothHemispheres(t *testing.T) {
	r := NewFastRand(7)
	up, down := 0, 0
	for i := 0; i < 1000; i++ {
		if r.UnitSphere().Y >= 0 {
			up++
		} else {
			down++
		}
	}
	// Uniform sampling should not collapse to one hemisphere
	if up < 300 || down < 300 {
		t.Errorf("Hemisphere imbalance: up=%d down=%d", up, down)
	}
}

func TestDiskPointWithinRadius(t *testing.T) {
	r := NewFastRand(5)
	const radius = 3.0
	for i := 0; i < 1000; i++ {
		x, z := r.DiskPoint(radius)
		if math.Hypot(x, z) > radius+1e-9 {
			t.Fatalf("Disk point outside radius: (%v, %v)", x, z)
		}
	}
}

func TestCubicSignedBounds(t *testing.T) {
	r := NewFastRand(11)
	for i := 0; i < 1000; i++ {
		v := r.CubicSigned()
		if v <= -1 || v >= 1 {
			t.Fatalf("CubicSigned out of (-1,1): %v", v)
		}
	}
}

func TestV3FRotateYPreservesMagnitude(t *testing.T) {
	v := Vec3F{1, 2, 3}
	rot := V3FRotateY(v, 1.3)
	if math.Abs(V3FMag(rot)-V3FMag(v)) > 1e-9 {
		t.Errorf("Rotation changed magnitude: %v -> %v", V3FMag(v), V3FMag(rot))
	}
	if rot.Y != v.Y {
		t.Errorf("Rotation about Y changed Y: %v -> %v", v.Y, rot.Y)
	}
}

func TestV3FNormalizeZero(t *testing.T) {
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("Expected zero vector, got %+v", got)
	}
}
