package pipeline

import (
	"softgl/core"
	"softgl/math"
)

// Color3f sets the current color, clamped to [0,1] per channel with alpha
// forced to 1 (there is no Color4f in this API surface).
func (c *Context) Color3f(r, g, b float32) {
	c.color = core.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: 1}
}

// Normal3f sets the current normal. It is stored verbatim, not
// renormalized.
func (c *Context) Normal3f(x, y, z float32) {
	c.normal = math.NewVec3(x, y, z)
}

// TexCoord2f sets the current texture coordinate.
func (c *Context) TexCoord2f(u, v float32) {
	c.texCoord = math.NewVec2(u, v)
}

func grayColor(v float32) core.Color {
	return core.Color{R: v, G: v, B: v, A: v}
}

// Materialf sets one or more scalar-broadcast material channels selected by
// mask (AMBIENT/DIFFUSE/SPECULAR/EMISSION set R=G=B=A=value; SHININESS sets
// the exponent). Values are stored verbatim, never clamped.
func (c *Context) Materialf(mask int, value float32) {
	if mask&MaterialAmbient != 0 {
		c.material.Ambient = grayColor(value)
	}
	if mask&MaterialDiffuse != 0 {
		c.material.Diffuse = grayColor(value)
	}
	if mask&MaterialSpecular != 0 {
		c.material.Specular = grayColor(value)
	}
	if mask&MaterialEmission != 0 {
		c.material.Emissive = grayColor(value)
	}
	if mask&MaterialShininess != 0 {
		c.material.Shininess = value
	}
}

// Materialfv sets one or more material channels from a flat value slice.
// Selected bits are consumed in AMBIENT, DIFFUSE, SPECULAR, EMISSION,
// SHININESS order; the RGBA channels each take four floats, SHININESS
// takes one.
func (c *Context) Materialfv(mask int, values []float32) {
	i := 0
	next4 := func() core.Color {
		if i+4 > len(values) {
			return core.Color{}
		}
		col := core.Color{R: values[i], G: values[i+1], B: values[i+2], A: values[i+3]}
		i += 4
		return col
	}
	if mask&MaterialAmbient != 0 {
		c.material.Ambient = next4()
	}
	if mask&MaterialDiffuse != 0 {
		c.material.Diffuse = next4()
	}
	if mask&MaterialSpecular != 0 {
		c.material.Specular = next4()
	}
	if mask&MaterialEmission != 0 {
		c.material.Emissive = next4()
	}
	if mask&MaterialShininess != 0 && i < len(values) {
		c.material.Shininess = values[i]
		i++
	}
}

// Light sets one or more light channels from a flat value slice, selected
// bits consumed in POSITION, AMBIENT, DIFFUSE, SPECULAR order. POSITION is
// transformed through the current modelview matrix at assignment time and
// the result is what subsequent lighting calculations use; later modelview
// changes do not move it.
func (c *Context) Light(mask int, values []float32) {
	i := 0
	next4 := func() (float32, float32, float32, float32) {
		if i+4 > len(values) {
			return 0, 0, 0, 0
		}
		v0, v1, v2, v3 := values[i], values[i+1], values[i+2], values[i+3]
		i += 4
		return v0, v1, v2, v3
	}
	if mask&LightPosition != 0 {
		x, y, z, w := next4()
		pos := math.Vec4{X: x, Y: y, Z: z, W: w}
		c.light.Position = pos.MulMat(c.topModelview())
	}
	if mask&LightAmbient != 0 {
		r, g, b, a := next4()
		c.light.Ambient = core.Color{R: r, G: g, B: b, A: a}
	}
	if mask&LightDiffuse != 0 {
		r, g, b, a := next4()
		c.light.Diffuse = core.Color{R: r, G: g, B: b, A: a}
	}
	if mask&LightSpecular != 0 {
		r, g, b, a := next4()
		c.light.Specular = core.Color{R: r, G: g, B: b, A: a}
	}
}

// Enable turns on a pipeline flag (LIGHTING, TEXTURE_2D, DEPTH_TEST or
// PHONG_SHADING). Unknown flags are ignored.
func (c *Context) Enable(flag int) { c.setFlag(flag, true) }

// Disable turns off a pipeline flag. Unknown flags are ignored.
func (c *Context) Disable(flag int) { c.setFlag(flag, false) }

func (c *Context) setFlag(flag int, value bool) {
	switch flag {
	case Lighting:
		c.lightingEnabled = value
	case Texture2D:
		c.textureEnabled = value
	case DepthTest:
		c.depthTestEnabled = value
	case PhongShading:
		c.phongShading = value
	}
}

// PointSize sets the point rasterizer's box side, rounded to the nearest
// integer and clamped to a minimum of 1.
func (c *Context) PointSize(size float32) {
	c.pointSize = clampMinOne(roundFloat(size))
}

// LineWidth sets the line rasterizer's effective point size (lineWidth/2),
// rounded and clamped the same way as PointSize.
func (c *Context) LineWidth(width float32) {
	c.lineWidth = clampMinOne(roundFloat(width))
}

// Begin sets the sticky primitive type for subsequent Vertex3f calls.
// Unrecognized primitive types are ignored.
func (c *Context) Begin(primitiveType int) {
	switch primitiveType {
	case Points, Lines, Triangles:
		c.primitive = primitiveType
	}
}

// End clears the current primitive type. Vertices submitted afterward are
// still transformed onto the raster queue but are not assembled while no
// primitive is active; the primitive of the next Begin consumes them first.
func (c *Context) End() {
	c.primitive = primitiveNone
}
