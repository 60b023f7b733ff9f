// Package gamut maps colors onto a 6 color palette whose colors form a
// convex octahedron in RGB space, such as the palette of Spectra 6 e-paper
// panels. Colors are described by barycentric weights over the palette, which
// a dithering stage can use to pick or blend palette entries.
package gamut

import (
	"image/color"

	"github.com/soypat/bary"
	"github.com/soypat/bary/vec3"
)

// Palette indices. The poles of the octahedron are black and white, the
// equator runs through the remaining colors in hue order.
const (
	Black  = bary.North
	White  = bary.South
	Blue   = bary.EquatorA
	Green  = bary.EquatorB
	Yellow = bary.EquatorC
	Red    = bary.EquatorD
)

// Spectra6 is the saturated Spectra 6 palette used for quantization,
// indexed by the palette constants.
var Spectra6 = [6]color.RGBA{
	Black:  {R: 0, G: 0, B: 0, A: 255},
	White:  {R: 255, G: 255, B: 255, A: 255},
	Blue:   {R: 33, G: 87, B: 186, A: 255},
	Green:  {R: 18, G: 95, B: 32, A: 255},
	Yellow: {R: 239, G: 222, B: 68, A: 255},
	Red:    {R: 178, G: 19, B: 24, A: 255},
}

// Spectra6Measured holds the colors a Spectra 6 panel actually shows. They
// are useful for previews but do not form a convex octahedron and must not
// be used to build a Gamut.
var Spectra6Measured = [6]color.RGBA{
	Black:  {R: 0x19, G: 0x1e, B: 0x21, A: 255},
	White:  {R: 0xe8, G: 0xe8, B: 0xe8, A: 255},
	Blue:   {R: 0x21, G: 0x57, B: 0xba, A: 255},
	Green:  {R: 0x12, G: 0x5f, B: 0x20, A: 255},
	Yellow: {R: 0xef, G: 0xde, B: 0x44, A: 255},
	Red:    {R: 0xb2, G: 0x13, B: 0x18, A: 255},
}

// Gamut projects colors onto the octahedron spanned by 6 palette colors.
// It implements color.Model.
type Gamut struct {
	palette [6]color.RGBA
	proj    *bary.Octahedron[float32]
}

var _ color.Model = (*Gamut)(nil)

// New returns the Gamut of palette, ordered as the palette constants:
// the two poles first and then the equator in cyclic order.
// It returns an error wrapping bary.ErrDegenerate if the colors do not
// span a volume.
func New(palette [6]color.RGBA) (*Gamut, error) {
	var vertices [6]vec3.Vec[float32]
	for i, c := range palette {
		vertices[i] = rgbToVec(c)
	}
	proj, err := bary.NewOctahedron(vertices)
	if err != nil {
		return nil, err
	}
	return &Gamut{palette: palette, proj: proj}, nil
}

// NewSpectra6 returns the Gamut of the Spectra6 palette.
func NewSpectra6() *Gamut {
	return bary.Must(New(Spectra6))
}

// Weights returns the barycentric weights over the palette of the
// in-gamut color closest to c. Alpha is ignored.
func (g *Gamut) Weights(c color.Color) bary.Weights6[float32] {
	return g.proj.Project(colorToVec(c))
}

// Index returns the index of the palette color with the largest weight for c.
func (g *Gamut) Index(c color.Color) int {
	return g.Weights(c).ArgMax()
}

// Clip returns the in-gamut color closest to c.
func (g *Gamut) Clip(c color.Color) color.RGBA {
	p := g.proj.BaryToPoint(g.Weights(c))
	return color.RGBA{R: toByte(p.X), G: toByte(p.Y), B: toByte(p.Z), A: 255}
}

// Convert returns the palette color with the largest weight for c.
func (g *Gamut) Convert(c color.Color) color.Color {
	return g.palette[g.Index(c)]
}

// Palette returns the gamut's palette as a color.Palette.
func (g *Gamut) Palette() color.Palette {
	p := make(color.Palette, len(g.palette))
	for i := range g.palette {
		p[i] = g.palette[i]
	}
	return p
}

func rgbToVec(c color.RGBA) vec3.Vec[float32] {
	return vec3.Vec[float32]{X: float32(c.R), Y: float32(c.G), Z: float32(c.B)}
}

func colorToVec(c color.Color) vec3.Vec[float32] {
	r, g, b, _ := c.RGBA()
	return vec3.Vec[float32]{X: float32(r >> 8), Y: float32(g >> 8), Z: float32(b >> 8)}
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
