package scene

import (
	"testing"

	"softgl/math"
)

func testFrustum() Frustum {
	proj := math.Mat4Perspective(1.0, 1.0, 1.0, 100.0)
	view := math.Mat4Identity() // camera at origin looking down -Z
	return FrustumFromVP(proj.Mul(view))
}

func TestIntersectsFrustumBoxInsideIsVisible(t *testing.T) {
	f := testFrustum()
	box := AABB{Min: math.Vec3{X: -1, Y: -1, Z: -20}, Max: math.Vec3{X: 1, Y: 1, Z: -10}}
	if !box.IntersectsFrustum(&f) {
		t.Error("box directly in front of the camera should be visible")
	}
}

func TestIntersectsFrustumBoxBehindCameraIsCulled(t *testing.T) {
	f := testFrustum()
	box := AABB{Min: math.Vec3{X: -1, Y: -1, Z: 10}, Max: math.Vec3{X: 1, Y: 1, Z: 20}}
	if box.IntersectsFrustum(&f) {
		t.Error("box entirely behind the camera should be culled")
	}
}

func TestIntersectsFrustumBoxBeyondFarPlaneIsCulled(t *testing.T) {
	f := testFrustum()
	box := AABB{Min: math.Vec3{X: -1, Y: -1, Z: -500}, Max: math.Vec3{X: 1, Y: 1, Z: -200}}
	if box.IntersectsFrustum(&f) {
		t.Error("box beyond the far plane should be culled")
	}
}

func TestComputeAABBTransformsLocalBounds(t *testing.T) {
	m := CreateMeshFromData("tri", triVerts(), nil)
	world := math.Mat4Translation(math.Vec3{X: 5, Y: 0, Z: 0})

	box := ComputeAABB(m, world)
	want := AABB{Min: math.Vec3{X: 4, Y: -1, Z: 0}, Max: math.Vec3{X: 6, Y: 2, Z: 0}}
	if box != want {
		t.Errorf("ComputeAABB = %+v, want %+v", box, want)
	}
}
