package pipeline

import (
	"image"

	"softgl/core"
	"softgl/raster"
)

// TexEnvMode selects how a sampled texel combines with the fragment's
// existing color: MODULATE multiplies, REPLACE overrides it.
func (c *Context) TexEnvMode(mode int) {
	switch mode {
	case TexEnvModulate, TexEnvReplace:
		c.texEnvMode = mode
	}
}

// TexImage2D uploads the sole bound texture, copying img into an internal
// store with its axes transposed (width<->height swapped). Sample index
// (0,0) holds input pixel (0,0). The caller's image is not retained and
// may be reused immediately.
func (c *Context) TexImage2D(img *image.RGBA) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		c.texels = nil
		return
	}
	c.texOrigWidth, c.texOrigHeight = w, h
	c.texels = make([]raster.Pixel, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := raster.At(img, bounds.Min.X+x, bounds.Min.Y+y)
			col := y
			row := x
			c.texels[col*w+row] = px
		}
	}
}

// sampleTexture reads the texel at normalized (u,v) with no wrap or clamp:
// inputs must lie within [0,1).
func (c *Context) sampleTexture(u, v float32) core.Color {
	if len(c.texels) == 0 {
		return core.Color{R: 1, G: 1, B: 1, A: 1}
	}
	col := int(u * float32(c.texOrigHeight))
	row := int(v * float32(c.texOrigWidth))
	if col < 0 || col >= c.texOrigHeight || row < 0 || row >= c.texOrigWidth {
		return core.Color{}
	}
	px := c.texels[col*c.texOrigWidth+row]
	return core.Color{
		R: float32(px.R) / 255,
		G: float32(px.G) / 255,
		B: float32(px.B) / 255,
		A: float32(px.A) / 255,
	}
}
