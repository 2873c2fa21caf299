package pipeline

import (
	"softgl/core"
	"softgl/math"
)

// rasterizeLine oversamples the segment v0->v1 at step 1/(2*max(w,h)),
// invoking the point rasterizer at each sample with pointSize temporarily
// swapped for lineWidth/2. There is no depth correction beyond each
// sample's own interpolated z.
func (c *Context) rasterizeLine(v0, v1 screenVertex) {
	savedPointSize := c.pointSize
	c.pointSize = c.lineWidth / 2
	defer func() { c.pointSize = savedPointSize }()

	maxDim := max(c.Width(), c.Height())
	if maxDim == 0 {
		return
	}
	step := float32(1) / (2 * float32(maxDim))

	for t := float32(0); t <= 1; t += step {
		c.rasterizePoint(lerpScreenVertex(v0, v1, t))
	}
}

func lerpScreenVertex(v0, v1 screenVertex, t float32) screenVertex {
	return screenVertex{
		Col: lerp(v0.Col, v1.Col, t),
		Row: lerp(v0.Row, v1.Row, t),
		Z:   lerp(v0.Z, v1.Z, t),
		Normal: math.Vec3{
			X: lerp(v0.Normal.X, v1.Normal.X, t),
			Y: lerp(v0.Normal.Y, v1.Normal.Y, t),
			Z: lerp(v0.Normal.Z, v1.Normal.Z, t),
		},
		Color: core.Color{
			R: lerp(v0.Color.R, v1.Color.R, t),
			G: lerp(v0.Color.G, v1.Color.G, t),
			B: lerp(v0.Color.B, v1.Color.B, t),
			A: lerp(v0.Color.A, v1.Color.A, t),
		},
		Material: v0.Material,
		TexCoord: math.Vec2{
			X: lerp(v0.TexCoord.X, v1.TexCoord.X, t),
			Y: lerp(v0.TexCoord.Y, v1.TexCoord.Y, t),
		},
	}
}
