package visualize

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle is the angle, in degrees, that maximizes perceptual
// spread when repeatedly stepping around a color wheel.
const goldenAngle = 137.50776405003785

// LabelPalette assigns each label id a deterministic, perceptually
// distinct color by walking the HCL color wheel in golden-angle steps,
// so that consecutively numbered labels (often spatially adjacent
// components) don't end up with similar hues.
type LabelPalette struct {
	cache map[int32]color.RGBA
}

// NewLabelPalette returns an empty palette; colors are generated lazily
// and cached as labels are looked up.
func NewLabelPalette() *LabelPalette {
	return &LabelPalette{cache: make(map[int32]color.RGBA)}
}

// Color returns label's color, generating and caching it on first use.
func (p *LabelPalette) Color(label int32) color.RGBA {
	if c, ok := p.cache[label]; ok {
		return c
	}
	hue := float64(label) * goldenAngle
	for hue >= 360 {
		hue -= 360
	}
	hcl := colorful.Hcl(hue, 0.65, 0.6).Clamped()
	r, g, b, a := hcl.RGBA()
	c := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	p.cache[label] = c
	return c
}
