// Package pipeline implements the fixed-function immediate-mode rendering
// pipeline: matrix stacks, attribute state, and the producer/consumer chain
// from vertex submission through transform, rasterization, and fragment
// write-back into a framebuffer and depth buffer. It has no knowledge of
// windowing, file I/O, or scene graphs — those are collaborators built on
// top of it.
package pipeline

import (
	"image"

	"softgl/core"
	"softgl/math"
	"softgl/raster"
)

// Primitive types accepted by Begin.
const (
	Points = iota
	Lines
	Triangles
)

const primitiveNone = -1

// Matrix stack selectors for MatrixMode.
const (
	ModelView = iota + 1
	Projection
)

// Enable/Disable flag identifiers.
const (
	Lighting = iota + 1
	Texture2D
	DepthTest
	PhongShading
)

// Material parameter mask bits, combinable in one Materialf/Materialfv call.
const (
	MaterialAmbient = 1 << (iota + 1)
	MaterialDiffuse
	MaterialSpecular
	MaterialEmission
	MaterialShininess
)

// Light parameter mask bits, combinable in one Light call.
const (
	LightPosition = 1 << iota
	LightAmbient
	LightDiffuse
	LightSpecular
)

// Texture environment combine modes.
const (
	TexEnvModulate = iota + 1
	TexEnvReplace
)

// Clear mask bits.
const (
	ColorBufferBit = 1 << iota
	DepthBufferBit
)

// Material holds the Phong reflectance channels read at Vertex3f time.
type Material struct {
	Ambient   core.Color
	Diffuse   core.Color
	Specular  core.Color
	Emissive  core.Color
	Shininess float32
}

// Light is the single supported light source. Position is stored
// pre-transformed into view space at assignment time (see Light).
type Light struct {
	Position math.Vec4
	Ambient  core.Color
	Diffuse  core.Color
	Specular core.Color
}

// vertexRecord is an object-space vertex as built by Vertex3f from current
// attribute state, before it enters the transform stage.
type vertexRecord struct {
	Position math.Vec4
	Normal   math.Vec4
	Color    core.Color
	Material Material
	TexCoord math.Vec2
}

// screenVertex is a post-transform vertex sitting in the raster queue.
type screenVertex struct {
	Col, Row float32
	Z        float32
	Normal   math.Vec3
	Color    core.Color
	Material Material
	TexCoord math.Vec2
}

// fragment is a pixel-addressed candidate write, pre-framebuffer.
type fragment struct {
	Col, Row int
	Color    core.Color
	Depth    float32
}

// Context owns every piece of pipeline state: matrix stacks, current
// attribute state, the three FIFO queues, and the framebuffer/depth buffer
// pair. It is not safe for concurrent use.
type Context struct {
	matrixMode int
	modelview  []math.Mat4
	projection []math.Mat4

	near, far float32

	color    core.Color
	normal   math.Vec3
	texCoord math.Vec2
	material Material

	light Light

	lightingEnabled  bool
	textureEnabled   bool
	depthTestEnabled bool
	phongShading     bool

	primitive int
	pointSize float32
	lineWidth float32

	texEnvMode                  int
	texOrigWidth, texOrigHeight int
	texels                      []raster.Pixel

	framebuffer *image.RGBA
	depthBuffer *image.RGBA
	clearColor  core.Color

	viewportSize         float32
	viewportX, viewportY float32

	vertexQueue   []vertexRecord
	rasterQueue   []screenVertex
	fragmentQueue []fragment

	// GammaExponent and GammaOffset are the per-channel Phong
	// post-correction constants: channel' = lit^GammaExponent + GammaOffset
	// on the 0-255 scale, with lit the [0,1] lit value. Defaulted to the values the source was calibrated
	// against; callers may override either.
	GammaExponent float32
	GammaOffset   float32
}

// NewContext allocates a pipeline with a width x height framebuffer and
// depth buffer, both cleared, and a square viewport of side
// min(width, height) anchored at the origin.
func NewContext(width, height int) *Context {
	c := &Context{
		matrixMode:    ModelView,
		modelview:     []math.Mat4{math.Mat4Identity()},
		projection:    []math.Mat4{math.Mat4Identity()},
		near:          0.1,
		far:           100,
		color:         core.ColorWhite,
		normal:        math.Vec3Front,
		material:      Material{Shininess: 1},
		primitive:     primitiveNone,
		pointSize:     1,
		lineWidth:     1,
		texEnvMode:    TexEnvModulate,
		framebuffer:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depthBuffer:   image.NewRGBA(image.Rect(0, 0, width, height)),
		clearColor:    core.ColorBlack,
		viewportSize:  float32(min(width, height)),
		GammaExponent: 1.065,
		GammaOffset:   44.0,
	}
	raster.Fill(c.depthBuffer, raster.Pixel{A: 255})
	return c
}

// Width returns the framebuffer width in pixels.
func (c *Context) Width() int { return c.framebuffer.Bounds().Dx() }

// Height returns the framebuffer height in pixels.
func (c *Context) Height() int { return c.framebuffer.Bounds().Dy() }

// Framebuffer returns the color buffer. Callers may read it between draw
// calls but must not mutate it.
func (c *Context) Framebuffer() *image.RGBA { return c.framebuffer }

// DepthBuffer returns the depth buffer, with depth quantized into the alpha
// channel (255 is farthest).
func (c *Context) DepthBuffer() *image.RGBA { return c.depthBuffer }

func (c *Context) topModelview() math.Mat4 {
	return c.modelview[len(c.modelview)-1]
}

func (c *Context) topProjection() math.Mat4 {
	return c.projection[len(c.projection)-1]
}

func (c *Context) normalizeDepth(z float32) float32 {
	denom := c.far - c.near
	if denom == 0 {
		return 0
	}
	return (c.far - z) / denom
}
