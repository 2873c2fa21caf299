package pipeline

import (
	"image"
	"testing"

	"softgl/raster"
)

func pixelAt(c *Context, col, row int) raster.Pixel {
	return raster.At(c.Framebuffer(), col, row)
}

// Scenario a: single red point, everything else background.
func TestScenarioSingleRedPoint(t *testing.T) {
	c := NewContext(10, 10)
	c.Viewport(0, 0, 10, 10)
	c.Ortho(-1, 1, -1, 1, 1, -1)
	c.ClearColor(0, 0, 0, 1)
	c.Clear(ColorBufferBit | DepthBufferBit)
	c.Color3f(1, 0, 0)
	c.PointSize(1)
	c.Begin(Points)
	c.Vertex3f(0, 0, 0)
	c.End()

	want := raster.Pixel{R: 255, A: 255}
	if got := pixelAt(c, 5, 5); got != want {
		t.Errorf("scenario a: pixel (5,5) expected %v, got %v", want, got)
	}

	background := raster.Pixel{A: 255}
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if col == 5 && row == 5 {
				continue
			}
			if got := pixelAt(c, col, row); got != background {
				t.Errorf("scenario a: pixel (%d,%d) expected background %v, got %v", col, row, background, got)
			}
		}
	}
}

// Scenario b: an axis-aligned triangle drawn after the point in scenario a
// should cover the lower-left half of the screen with green, the far
// corner remaining background.
func TestScenarioAxisAlignedTriangle(t *testing.T) {
	c := NewContext(10, 10)
	c.Viewport(0, 0, 10, 10)
	c.Ortho(-1, 1, -1, 1, 1, -1)
	c.ClearColor(0, 0, 0, 1)
	c.Clear(ColorBufferBit | DepthBufferBit)
	c.Color3f(1, 0, 0)
	c.PointSize(1)
	c.Begin(Points)
	c.Vertex3f(0, 0, 0)
	c.End()

	c.Color3f(0, 1, 0)
	c.Begin(Triangles)
	c.Vertex3f(-1, -1, 0)
	c.Vertex3f(1, -1, 0)
	c.Vertex3f(-1, 1, 0)
	c.End()

	green := raster.Pixel{G: 255, A: 255}
	if got := pixelAt(c, 2, 2); got != green {
		t.Errorf("scenario b: pixel (2,2) expected green %v, got %v", green, got)
	}

	background := raster.Pixel{A: 255}
	if got := pixelAt(c, 8, 8); got != background {
		t.Errorf("scenario b: pixel (8,8) expected background %v, got %v", background, got)
	}
}

// Scenario c: with depth test on, a nearer red triangle drawn first wins
// over a farther blue triangle drawn second at the same screen location.
func TestScenarioDepthTestOcclusion(t *testing.T) {
	c := NewContext(4, 4)
	c.Viewport(0, 0, 4, 4)
	c.Ortho(-1, 1, -1, 1, 1, -1)
	c.ClearColor(0, 0, 0, 1)
	c.Clear(ColorBufferBit | DepthBufferBit)
	c.Enable(DepthTest)

	c.Color3f(1, 0, 0)
	c.Begin(Triangles)
	c.Vertex3f(-2, -2, 0)
	c.Vertex3f(2, -2, 0)
	c.Vertex3f(0, 2, 0)
	c.End()

	c.Color3f(0, 0, 1)
	c.Begin(Triangles)
	c.Vertex3f(-2, -2, 0.5)
	c.Vertex3f(2, -2, 0.5)
	c.Vertex3f(0, 2, 0.5)
	c.End()

	red := raster.Pixel{R: 255, A: 255}
	if got := pixelAt(c, 2, 1); got != red {
		t.Errorf("scenario c: expected the nearer red triangle to win, got %v", got)
	}
}

// Scenario d: PushMatrix/PopMatrix isolate a translation from the matrix
// stack state that follows.
func TestScenarioPushPopIndependence(t *testing.T) {
	c := NewContext(10, 10)
	c.Viewport(0, 0, 10, 10)
	c.MatrixMode(Projection)
	c.Ortho(-5, 5, -5, 5, 1, -1)
	c.ClearColor(0, 0, 0, 1)
	c.Clear(ColorBufferBit | DepthBufferBit)
	c.MatrixMode(ModelView)
	c.LoadIdentity()
	c.Translatef(1, 0, 0)

	c.PushMatrix()
	c.Translatef(1, 0, 0)
	c.Color3f(1, 1, 1)
	c.PointSize(1)
	c.Begin(Points)
	c.Vertex3f(0, 0, 0)
	c.End()

	white := raster.Pixel{R: 255, G: 255, B: 255, A: 255}
	if got := pixelAt(c, 7, 5); got != white {
		t.Errorf("scenario d: world x=2 expected to land at col 7, got %v at (7,5)", got)
	}

	c.PopMatrix()
	c.Begin(Points)
	c.Vertex3f(0, 0, 0)
	c.End()

	if got := pixelAt(c, 6, 5); got != white {
		t.Errorf("scenario d: world x=1 expected to land at col 6, got %v at (6,5)", got)
	}
}

// Scenario e: texture MODULATE of a white texel with a red vertex colour.
func TestScenarioTextureModulate(t *testing.T) {
	c := NewContext(8, 8)
	c.Viewport(0, 0, 8, 8)
	c.Ortho(-1, 1, -1, 1, 1, -1)
	c.ClearColor(0, 0, 0, 1)
	c.Clear(ColorBufferBit | DepthBufferBit)

	tex := image.NewRGBA(image.Rect(0, 0, 2, 2))
	raster.Set(tex, 0, 0, raster.Pixel{R: 255, G: 255, B: 255, A: 255})
	c.TexImage2D(tex)
	c.TexEnvMode(TexEnvModulate)
	c.Enable(Texture2D)

	c.Color3f(1, 0, 0)
	c.TexCoord2f(0, 0)
	c.Begin(Triangles)
	c.Vertex3f(-2, -2, 0)
	c.Vertex3f(2, -2, 0)
	c.Vertex3f(0, 2, 0)
	c.End()

	red := raster.Pixel{R: 255, A: 255}
	if got := pixelAt(c, 4, 2); got != red {
		t.Errorf("scenario e: modulating white texel by red should yield red, got %v", got)
	}
}

// Scenario f: a directional light straight on gives cosDif = 1 and the
// literal calibration output for a fully-lit white surface.
func TestScenarioDirectionalLight(t *testing.T) {
	c := NewContext(4, 4)
	c.Viewport(0, 0, 4, 4)
	c.Ortho(-1, 1, -1, 1, 1, -1)
	c.ClearColor(0, 0, 0, 1)
	c.Clear(ColorBufferBit | DepthBufferBit)
	c.Enable(Lighting)

	c.Light(LightPosition, []float32{0, 0, 1, 0})
	c.Light(LightDiffuse, []float32{1, 1, 1, 1})

	c.Materialfv(MaterialDiffuse, []float32{1, 1, 1, 1})
	c.Color3f(1, 1, 1)
	c.Normal3f(0, 0, 1)
	c.Begin(Triangles)
	c.Vertex3f(-2, -2, 0)
	c.Vertex3f(2, -2, 0)
	c.Vertex3f(0, 2, 0)
	c.End()

	// channel' = (1*1*1)^1.065 + 44.0, stored as a [0,1] fraction of 255
	// and recovered at the framebuffer write.
	expected := gammaChannel(1, c.GammaExponent, c.GammaOffset)
	wantByte := uint8(expected * 255)

	got := pixelAt(c, 2, 1)
	if got.R != wantByte || got.G != wantByte || got.B != wantByte {
		t.Errorf("scenario f: expected channel %d, got %v", wantByte, got)
	}
}
