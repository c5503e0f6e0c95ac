package shape

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glowfield/vmath"
)

// Band is a contiguous particle index subrange [Start,End)
type Band struct {
	Start, End int
}

// Len returns the number of particles in the band
func (b Band) Len() int {
	return b.End - b.Start
}

// Contains reports whether particle i falls inside the band
func (b Band) Contains(i int) bool {
	return i >= b.Start && i < b.End
}

// CakeBands records which particle indices belong to which part of the cake.
// Flame is the trailing remainder with no precomputed target; the cake effect
// runs its own respawn system over it.
type CakeBands struct {
	Base   Band
	Top    Band
	Candle Band
	Text   Band
	Flame  Band
}

// CakeParams controls the composite cake generator
type CakeParams struct {
	BaseFraction   float64
	TopFraction    float64
	CandleFraction float64
	TextFraction   float64

	BaseRadius float64
	BaseBottom float64
	BaseTop    float64

	TopRadius float64
	TopBottom float64
	TopTop    float64

	CandleRadius float64
	CandleBottom float64
	CandleTip    float64

	Text      string
	TextScale float64
	TextY     float64
	TextZ     float64

	BaseColor   colorful.Color
	TopColor    colorful.Color
	CandleColor colorful.Color
	TextColor   colorful.Color
}

// Cake partitions count into fixed proportional bands and fills each: two
// stacked cylinders, a thin candle, a rasterized text plaque on the front
// face, and a reserved flame subrange parked at the candle tip. Cylinder
// disks sample radius via sqrt of uniform for uniform area density.
func Cake(count int, p CakeParams, rng *vmath.FastRand) (*PointSet, CakeBands) {
	set := NewPointSet(count)

	var bands CakeBands
	if count <= 0 {
		return set, bands
	}

	base := int(float64(count) * p.BaseFraction)
	top := int(float64(count) * p.TopFraction)
	candle := int(float64(count) * p.CandleFraction)
	text := int(float64(count) * p.TextFraction)

	bands.Base = Band{0, base}
	bands.Top = Band{bands.Base.End, bands.Base.End + top}
	bands.Candle = Band{bands.Top.End, bands.Top.End + candle}
	bands.Text = Band{bands.Candle.End, bands.Candle.End + text}
	bands.Flame = Band{bands.Text.End, count}

	fillCylinder(set, bands.Base, p.BaseRadius, p.BaseBottom, p.BaseTop, p.BaseColor, rng)
	fillCylinder(set, bands.Top, p.TopRadius, p.TopBottom, p.TopTop, p.TopColor, rng)
	fillCylinder(set, bands.Candle, p.CandleRadius, p.CandleBottom, p.CandleTip, p.CandleColor, rng)
	fillText(set, bands.Text, p, rng)

	// Flame particles park at the candle tip until the effect takes over
	tip := vmath.Vec3F{Y: p.CandleTip}
	for i := bands.Flame.Start; i < bands.Flame.End; i++ {
		set.setPosition(i, tip)
		set.setColor(i, p.CandleColor)
	}

	return set, bands
}

func fillCylinder(set *PointSet, band Band, radius, bottom, top float64, c colorful.Color, rng *vmath.FastRand) {
	for i := band.Start; i < band.End; i++ {
		x, z := rng.DiskPoint(radius)
		set.setPosition(i, vmath.Vec3F{
			X: x,
			Y: rng.Range(bottom, top),
			Z: z,
		})
		set.setColor(i, c)
	}
}

// fillText places the text band on the front face of the base layer,
// reusing the raster pipeline with the plaque's own scale and offset.
func fillText(set *PointSet, band Band, p CakeParams, rng *vmath.FastRand) {
	if band.Len() <= 0 {
		return
	}

	plaque := Text(band.Len(), TextParams{
		Text:         p.Text,
		RasterWidth:  defaultPlaqueWidth,
		RasterHeight: defaultPlaqueHeight,
		FontSize:     defaultPlaqueFontSize,
		Threshold:    defaultPlaqueThreshold,
		WorldScale:   p.TextScale,
		Jitter:       p.TextScale,
		Color:        p.TextColor,
	}, rng)

	for i := band.Start; i < band.End; i++ {
		src := plaque.Position(i - band.Start)
		set.setPosition(i, vmath.Vec3F{
			X: src.X,
			Y: src.Y + p.TextY,
			Z: src.Z + p.TextZ,
		})
		set.setColor(i, p.TextColor)
	}
}

// Plaque raster defaults; world placement comes from CakeParams
const (
	defaultPlaqueWidth     = 256
	defaultPlaqueHeight    = 96
	defaultPlaqueFontSize  = 56.0
	defaultPlaqueThreshold = 0.5
)
