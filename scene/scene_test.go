package scene

import (
	"testing"

	"softgl/math"
	"softgl/pipeline"
	"softgl/raster"
)

func TestGetVisibleNodesSkipsHiddenAndMeshless(t *testing.T) {
	s := NewScene()

	withMesh := NewNode("WithMesh")
	withMesh.Mesh = CreateMeshFromData("tri", triVerts(), nil)
	s.AddNode(withMesh)

	hidden := NewNode("Hidden")
	hidden.Mesh = CreateMeshFromData("tri2", triVerts(), nil)
	hidden.Visible = false
	s.AddNode(hidden)

	meshless := NewNode("Meshless")
	s.AddNode(meshless)

	visible := s.GetVisibleNodes(nil)
	if len(visible) != 1 || visible[0] != withMesh {
		t.Errorf("GetVisibleNodes = %v, want only [WithMesh]", visible)
	}
}

func TestRenderWithoutCameraIsNoOp(t *testing.T) {
	s := NewScene()
	ctx := pipeline.NewContext(4, 4)
	s.Render(ctx) // must not panic
}

func TestRenderSubmitsVisibleNodeMeshes(t *testing.T) {
	s := CreateDefaultScene()

	n := NewNode("Tri")
	n.Mesh = CreateMeshFromData("tri", triVerts(), nil)
	n.SetPosition(math.Vec3Zero)
	s.AddNode(n)

	ctx := pipeline.NewContext(16, 16)
	s.Render(ctx) // must not panic, should leave the context in End() state
}

func TestRenderWritesVisibleGeometryIntoFramebuffer(t *testing.T) {
	s := CreateDefaultScene()

	n := NewNode("Tri")
	n.Mesh = CreateMeshFromData("tri", triVerts(), nil)
	n.SetPosition(math.Vec3Zero)
	s.AddNode(n)

	ctx := pipeline.NewContext(32, 32)
	sky := raster.FromFloat(s.SkyColor.R, s.SkyColor.G, s.SkyColor.B, s.SkyColor.A)
	ctx.ClearColor(s.SkyColor.R, s.SkyColor.G, s.SkyColor.B, s.SkyColor.A)
	ctx.Clear(pipeline.ColorBufferBit | pipeline.DepthBufferBit)

	s.Render(ctx)

	fb := ctx.Framebuffer()
	w, h := fb.Bounds().Dx(), fb.Bounds().Dy()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if raster.At(fb, col, row) != sky {
				return
			}
		}
	}
	t.Fatal("Render left the framebuffer entirely sky-coloured; the triangle at world origin never reached the rasterizer")
}
