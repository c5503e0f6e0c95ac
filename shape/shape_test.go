package shape

import (
	"math"
	"sort"
	"testing"

	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/vmath"
)

func galaxyParams() GalaxyParams {
	return GalaxyParams{
		Radius:   parameter.GalaxyRadius,
		Branches: parameter.GalaxyBranches,
		Spin:     parameter.GalaxySpin,
		Jitter:   parameter.GalaxyJitter,
		Inside:   parameter.GalaxyInsideColor,
		Outside:  parameter.GalaxyOutsideColor,
	}
}

func heartParams() HeartParams {
	return HeartParams{
		Scale:     parameter.HeartScale,
		Thickness: parameter.HeartThickness,
		Top:       parameter.HeartTopColor,
		Bottom:    parameter.HeartBottomColor,
	}
}

func textParams() TextParams {
	return TextParams{
		Text:         "GO",
		RasterWidth:  parameter.TextRasterWidth,
		RasterHeight: parameter.TextRasterHeight,
		FontSize:     parameter.TextFontSize,
		Threshold:    parameter.TextThreshold,
		WorldScale:   parameter.TextWorldScale,
		Jitter:       parameter.TextJitter,
		Color:        parameter.GalaxyInsideColor,
	}
}

func cakeParams() CakeParams {
	return CakeParams{
		BaseFraction:   parameter.CakeBaseFraction,
		TopFraction:    parameter.CakeTopFraction,
		CandleFraction: parameter.CakeCandleFraction,
		TextFraction:   parameter.CakeTextFraction,
		BaseRadius:     parameter.CakeBaseRadius,
		BaseBottom:     parameter.CakeBaseBottom,
		BaseTop:        parameter.CakeBaseTop,
		TopRadius:      parameter.CakeTopRadius,
		TopBottom:      parameter.CakeTopBottom,
		TopTop:         parameter.CakeTopHeight,
		CandleRadius:   parameter.CakeCandleRadius,
		CandleBottom:   parameter.CakeCandleBottom,
		CandleTip:      parameter.CakeCandleTip,
		Text:           "HB",
		TextScale:      parameter.CakeTextScale,
		TextY:          parameter.CakeTextY,
		TextZ:          parameter.CakeTextZ,
		BaseColor:      parameter.CakeBaseColor,
		TopColor:       parameter.CakeTopColor,
		CandleColor:    parameter.CakeCandleColor,
		TextColor:      parameter.CakeTextColor,
	}
}

func assertFinite(t *testing.T, name string, set *PointSet, count int) {
	t.Helper()

	if set.Len() != count {
		t.Errorf("%s: expected %d points, got %d", name, count, set.Len())
	}
	for i, v := range set.Positions {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s: non-finite position float at %d: %v", name, i, v)
		}
	}
	for i, v := range set.Colors {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s: non-finite color float at %d: %v", name, i, v)
		}
	}
}

func TestGeneratorsCountAndFinite(t *testing.T) {
	counts := []int{1, 2, 17, 1000}

	for _, count := range counts {
		rng := vmath.NewFastRand(42)

		assertFinite(t, "galaxy", Galaxy(count, galaxyParams(), rng), count)
		assertFinite(t, "heart", Heart(count, heartParams(), rng), count)
		assertFinite(t, "text", Text(count, textParams(), rng), count)

		cake, _ := Cake(count, cakeParams(), rng)
		assertFinite(t, "cake", cake, count)
	}
}

func TestGalaxyColorGradientMonotonic(t *testing.T) {
	p := galaxyParams()
	p.Jitter = 0 // radius recoverable from position

	rng := vmath.NewFastRand(7)
	set := Galaxy(500, p, rng)

	type sample struct {
		radius float64
		dist   float64 // color distance to the inside endpoint
	}
	samples := make([]sample, set.Len())
	inside := vmath.Vec3F{X: p.Inside.R, Y: p.Inside.G, Z: p.Inside.B}
	for i := range samples {
		pos := set.Position(i)
		samples[i] = sample{
			radius: math.Hypot(pos.X, pos.Z),
			dist:   vmath.V3FMag(vmath.V3FSub(set.Color(i), inside)),
		}
	}

	sort.Slice(samples, func(a, b int) bool { return samples[a].radius < samples[b].radius })

	const eps = 1e-9
	for i := 1; i < len(samples); i++ {
		if samples[i].dist+eps < samples[i-1].dist {
			t.Fatalf("Color gradient not monotonic by radius: r=%v dist=%v after r=%v dist=%v",
				samples[i].radius, samples[i].dist, samples[i-1].radius, samples[i-1].dist)
		}
	}
}

func TestHeartSpansExpectedExtent(t *testing.T) {
	rng := vmath.NewFastRand(3)
	set := Heart(1000, heartParams(), rng)

	xMax := 0.0
	for i := 0; i < set.Len(); i++ {
		if x := math.Abs(set.Position(i).X); x > xMax {
			xMax = x
		}
	}

	// x = 16·sin³t peaks at ±16 curve units
	want := 16 * parameter.HeartScale
	if math.Abs(xMax-want) > 0.1 {
		t.Errorf("Expected x extent near %v, got %v", want, xMax)
	}
}

func TestTextProducesGlyphCloud(t *testing.T) {
	rng := vmath.NewFastRand(5)
	set := Text(2000, textParams(), rng)

	// Glyph pixels must spread beyond pure jitter around the origin
	spread := 0.0
	for i := 0; i < set.Len(); i++ {
		pos := set.Position(i)
		if d := math.Hypot(pos.X, pos.Y); d > spread {
			spread = d
		}
	}

	if spread < 10*parameter.TextJitter {
		t.Errorf("Expected glyph spread, got max distance %v", spread)
	}
}

func TestTextZeroBrightPixelsFallsBackToOrigin(t *testing.T) {
	p := textParams()
	p.Threshold = 2.0 // impossible luminance: no pixel qualifies

	rng := vmath.NewFastRand(5)
	set := Text(100, p, rng)

	assertFinite(t, "text-fallback", set, 100)
	for i := 0; i < set.Len(); i++ {
		pos := set.Position(i)
		if math.Abs(pos.X) > p.Jitter || math.Abs(pos.Y) > p.Jitter || math.Abs(pos.Z) > p.Jitter {
			t.Fatalf("Fallback particle %d strayed from origin: %+v", i, pos)
		}
	}
}

func TestTextEmptyStringFallsBack(t *testing.T) {
	p := textParams()
	p.Text = ""

	set := Text(50, p, vmath.NewFastRand(1))
	assertFinite(t, "text-empty", set, 50)
}

func TestCakeBandsPartitionCount(t *testing.T) {
	const count = 1000
	rng := vmath.NewFastRand(9)
	_, bands := Cake(count, cakeParams(), rng)

	if bands.Base.Start != 0 {
		t.Errorf("Expected base band at 0, got %d", bands.Base.Start)
	}
	if bands.Base.End != bands.Top.Start || bands.Top.End != bands.Candle.Start ||
		bands.Candle.End != bands.Text.Start || bands.Text.End != bands.Flame.Start {
		t.Error("Expected contiguous bands")
	}
	if bands.Flame.End != count {
		t.Errorf("Expected flame band to end at %d, got %d", count, bands.Flame.End)
	}
	if bands.Flame.Len() <= 0 {
		t.Error("Expected non-empty flame remainder")
	}
}

func TestCakeFlameBandParksAtCandleTip(t *testing.T) {
	p := cakeParams()
	rng := vmath.NewFastRand(9)
	set, bands := Cake(500, p, rng)

	for i := bands.Flame.Start; i < bands.Flame.End; i++ {
		pos := set.Position(i)
		if pos.Y != p.CandleTip || pos.X != 0 || pos.Z != 0 {
			t.Fatalf("Flame particle %d not at candle tip: %+v", i, pos)
		}
	}
}

func TestCakeCylinderBandsWithinRadius(t *testing.T) {
	p := cakeParams()
	rng := vmath.NewFastRand(9)
	set, bands := Cake(2000, p, rng)

	checks := []struct {
		name   string
		band   Band
		radius float64
		bottom float64
		top    float64
	}{
		{"base", bands.Base, p.BaseRadius, p.BaseBottom, p.BaseTop},
		{"top", bands.Top, p.TopRadius, p.TopBottom, p.TopTop},
		{"candle", bands.Candle, p.CandleRadius, p.CandleBottom, p.CandleTip},
	}

	for _, c := range checks {
		for i := c.band.Start; i < c.band.End; i++ {
			pos := set.Position(i)
			if math.Hypot(pos.X, pos.Z) > c.radius+1e-9 {
				t.Fatalf("%s particle %d outside radius: %+v", c.name, i, pos)
			}
			if pos.Y < c.bottom-1e-9 || pos.Y > c.top+1e-9 {
				t.Fatalf("%s particle %d outside height range: %+v", c.name, i, pos)
			}
		}
	}
}
