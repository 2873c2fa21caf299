package scene

import (
	"testing"

	"softgl/core"
	"softgl/math"
	"softgl/pipeline"
)

func triVerts() []core.Vertex {
	return []core.Vertex{
		{Position: math.Vec3{X: -1, Y: -1, Z: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: 1, Y: -1, Z: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: 0, Y: 2, Z: 0}, Color: core.ColorWhite},
	}
}

func TestCreateMeshFromDataCachesLocalAABB(t *testing.T) {
	m := CreateMeshFromData("tri", triVerts(), nil)
	if !m.HasLocalAABB {
		t.Fatal("expected HasLocalAABB = true")
	}
	want := AABB{Min: math.Vec3{X: -1, Y: -1, Z: 0}, Max: math.Vec3{X: 1, Y: 2, Z: 0}}
	if m.LocalAABB != want {
		t.Errorf("LocalAABB = %+v, want %+v", m.LocalAABB, want)
	}
}

func TestCreateMeshFromDataEmptyHasNoAABB(t *testing.T) {
	m := CreateMeshFromData("empty", nil, nil)
	if m.HasLocalAABB {
		t.Error("empty mesh should not cache an AABB")
	}
}

func TestPrimitiveForMapsDrawModes(t *testing.T) {
	cases := map[int]int{
		DrawTriangles: pipeline.Triangles,
		DrawLines:     pipeline.Lines,
		DrawPoints:    pipeline.Points,
	}
	for mode, want := range cases {
		if got := primitiveFor(mode); got != want {
			t.Errorf("primitiveFor(%d) = %d, want %d", mode, got, want)
		}
	}
}

func TestSubmitTruncatesIndicesToWholePrimitives(t *testing.T) {
	m := CreateMeshFromData("tri", triVerts(), []uint32{0, 1, 2, 0})
	ctx := pipeline.NewContext(8, 8)

	// Should not panic, and should emit exactly one triangle (3 of the 4
	// indices): the dangling 4th index is dropped rather than read out of
	// range or treated as a degenerate second primitive.
	m.Submit(ctx)
}

func TestSubmitOnEmptyMeshIsNoOp(t *testing.T) {
	m := NewMesh("empty")
	ctx := pipeline.NewContext(4, 4)
	m.Submit(ctx) // must not panic
}
