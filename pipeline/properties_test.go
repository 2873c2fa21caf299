package pipeline

import (
	"image"
	"testing"

	"softgl/raster"
)

// Property 4: clearing COLOR|DEPTH fills every pixel with clearColor and
// every depth-buffer alpha with 255.
func TestClearFillsBuffersUniformly(t *testing.T) {
	c := NewContext(6, 6)
	c.ClearColor(0.2, 0.4, 0.6, 1)
	c.Clear(ColorBufferBit | DepthBufferBit)

	want := raster.FromFloat(0.2, 0.4, 0.6, 1)
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			if got := pixelAt(c, col, row); got != want {
				t.Errorf("Clear: pixel (%d,%d) expected %v, got %v", col, row, want, got)
			}
			if got := raster.At(c.DepthBuffer(), col, row).A; got != 255 {
				t.Errorf("Clear: depth (%d,%d) expected 255, got %v", col, row, got)
			}
		}
	}
}

// Property 5: an unlit, fully covered triangle produces the exact convex
// combination of its three vertex colors at an interior pixel.
func TestUnlitTriangleConvexCombination(t *testing.T) {
	c := NewContext(4, 4)
	c.Viewport(0, 0, 4, 4)
	c.Ortho(-1, 1, -1, 1, 1, -1)
	c.Clear(ColorBufferBit | DepthBufferBit)

	c.Begin(Triangles)
	c.Color3f(1, 0, 0)
	c.Vertex3f(-2, -2, 0)
	c.Color3f(0, 1, 0)
	c.Vertex3f(2, -2, 0)
	c.Color3f(0, 0, 1)
	c.Vertex3f(0, 2, 0)
	c.End()

	// Screen vertices are (-2,-2), (6,-2), (2,6); every edge function has
	// denominator 64 and at pixel (2,1) takes the values 20, 20 and 24, so
	// the barycentric weights are exactly (5/16, 5/16, 3/8).
	want := raster.FromFloat(5.0/16, 5.0/16, 3.0/8, 1)
	if got := pixelAt(c, 2, 1); got != want {
		t.Errorf("convex combination: expected %v, got %v", want, got)
	}
}

// Property 7: texture REPLACE overrides the fragment color outright,
// regardless of vertex color or lighting state.
func TestTextureReplaceIgnoresVertexColorAndLighting(t *testing.T) {
	c := NewContext(4, 4)
	c.Viewport(0, 0, 4, 4)
	c.Ortho(-1, 1, -1, 1, 1, -1)
	c.Clear(ColorBufferBit | DepthBufferBit)
	c.Enable(Lighting)
	c.Light(LightDiffuse, []float32{1, 1, 1, 1})
	c.Light(LightPosition, []float32{0, 0, 1, 0})
	c.Materialfv(MaterialDiffuse, []float32{1, 1, 1, 1})

	tex := image.NewRGBA(image.Rect(0, 0, 2, 2))
	raster.Fill(tex, raster.Pixel{G: 255, A: 255})
	c.TexImage2D(tex)
	c.TexEnvMode(TexEnvReplace)
	c.Enable(Texture2D)

	c.Color3f(1, 0, 0)
	c.Normal3f(0, 0, 1)
	c.Begin(Triangles)
	c.Vertex3f(-2, -2, 0)
	c.Vertex3f(2, -2, 0)
	c.Vertex3f(0, 2, 0)
	c.End()

	want := raster.Pixel{G: 255, A: 255}
	if got := pixelAt(c, 2, 1); got != want {
		t.Errorf("REPLACE: expected the pure texel color %v, got %v", want, got)
	}
}

// Property 8: point rasterization is translation-symmetric — the set of
// accepted offsets from the vertex center is the same regardless of where
// that center sits.
func TestPointRasterizationIsTranslationSymmetric(t *testing.T) {
	c := NewContext(40, 40)
	c.PointSize(5)

	offsetsAt := func(col, row float32) map[[2]int]bool {
		cc := NewContext(40, 40)
		cc.pointSize = c.pointSize
		cc.rasterizePoint(screenVertex{Col: col, Row: row})
		set := make(map[[2]int]bool)
		for _, f := range cc.fragmentQueue {
			set[[2]int{f.Col - int(col), f.Row - int(row)}] = true
		}
		return set
	}

	base := offsetsAt(10, 10)
	shifted := offsetsAt(17, 23)

	if len(base) == 0 {
		t.Fatal("expected at least one accepted fragment")
	}
	if len(base) != len(shifted) {
		t.Fatalf("translation symmetry: expected %d offsets, got %d", len(base), len(shifted))
	}
	for offset := range base {
		if !shifted[offset] {
			t.Errorf("translation symmetry: offset %v present at (10,10) but missing at (17,23)", offset)
		}
	}
}
