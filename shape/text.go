package shape

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/glowfield/vmath"
)

// TextParams controls the rasterized glyph generator
type TextParams struct {
	Text         string
	RasterWidth  int
	RasterHeight int
	FontSize     float64
	Threshold    float64 // minimum luminance counted as a glyph pixel
	WorldScale   float64 // raster pixels to world units
	Jitter       float64 // world-space scatter per particle
	Color        colorful.Color
}

// Text renders the string onto an off-screen raster, thresholds pixel
// luminance, and broadcasts the bright pixels cyclically across count
// particles (index mod candidates) with a small jitter, so coverage is
// deterministic even when count exceeds the available pixels.
//
// A failed font load or empty raster degrades to an origin-centered jitter
// cloud; callers never see nil or a short set.
func Text(count int, p TextParams, rng *vmath.FastRand) *PointSet {
	set := NewPointSet(count)
	if count <= 0 {
		return set
	}

	candidates := rasterize(p)

	for i := 0; i < count; i++ {
		var pos vmath.Vec3F
		if len(candidates) > 0 {
			pos = candidates[i%len(candidates)]
		}
		pos.X += rng.Signed() * p.Jitter
		pos.Y += rng.Signed() * p.Jitter
		pos.Z += rng.Signed() * p.Jitter

		set.setPosition(i, pos)
		set.setColor(i, p.Color)
	}

	return set
}

// rasterize draws the text white-on-black and collects bright pixel
// coordinates in world space: center origin, y flipped, uniform scale.
// Returns nil when the raster or font is unusable.
func rasterize(p TextParams) []vmath.Vec3F {
	if p.RasterWidth <= 0 || p.RasterHeight <= 0 || p.Text == "" {
		return nil
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    p.FontSize,
		Hinting: font.HintingFull,
	})

	dc := gg.NewContext(p.RasterWidth, p.RasterHeight)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(p.Text, float64(p.RasterWidth)/2, float64(p.RasterHeight)/2, 0.5, 0.5)

	img := dc.Image()
	halfW := float64(p.RasterWidth) / 2
	halfH := float64(p.RasterHeight) / 2

	var points []vmath.Vec3F
	for py := 0; py < p.RasterHeight; py++ {
		for px := 0; px < p.RasterWidth; px++ {
			r, g, b, _ := img.At(px, py).RGBA()
			lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
			if lum < p.Threshold {
				continue
			}
			points = append(points, vmath.Vec3F{
				X: (float64(px) - halfW) * p.WorldScale,
				Y: (halfH - float64(py)) * p.WorldScale,
				Z: 0,
			})
		}
	}

	return points
}
