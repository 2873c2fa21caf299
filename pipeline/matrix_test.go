package pipeline

import (
	"testing"

	"softgl/math"
)

func TestPushPopPreservesTop(t *testing.T) {
	c := NewContext(4, 4)
	c.MatrixMode(ModelView)
	c.Translatef(3, 1, 2)
	before := c.topModelview()

	c.PushMatrix()
	c.Translatef(9, 9, 9)
	c.Rotatef(45, 0, 1, 0)
	c.PopMatrix()

	after := c.topModelview()
	if before != after {
		t.Errorf("PushMatrix/PopMatrix: expected top to be restored to %v, got %v", before, after)
	}
}

func TestPopOnSizeOneLeavesTopUnchanged(t *testing.T) {
	c := NewContext(4, 4)
	c.Translatef(5, 0, 0)
	before := c.topModelview()

	c.PopMatrix()
	c.PopMatrix()

	after := c.topModelview()
	if before != after {
		t.Errorf("PopMatrix on a stack of one: expected no change, got %v", after)
	}
}

func TestLoadIdentityThenMultEqualsM(t *testing.T) {
	c := NewContext(4, 4)
	m := math.Mat4Translation(math.NewVec3(2, 3, 4))

	c.LoadIdentity()
	c.MultMatrixf(m.ColumnMajor())

	got := c.topModelview()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if diff := got[i][j] - m[i][j]; diff > 1e-5 || diff < -1e-5 {
				t.Errorf("MultMatrixf after LoadIdentity: [%d][%d] expected %v, got %v", i, j, m[i][j], got[i][j])
			}
		}
	}
}

func TestUnknownMatrixModeIgnored(t *testing.T) {
	c := NewContext(4, 4)
	c.MatrixMode(99)
	before := c.topModelview()
	c.Translatef(1, 1, 1)
	if c.topModelview() != before {
		t.Errorf("Translatef under an unknown matrix mode should be a no-op")
	}
}

func TestDegenerateFrustumIsNoOp(t *testing.T) {
	c := NewContext(4, 4)
	before := c.topProjection()

	c.Frustum(-1, -1, -1, 1, 1, 10) // l == r
	c.Frustum(-1, 1, 0, 0, 1, 10)   // b == t
	c.Frustum(-1, 1, -1, 1, 0, 10)  // n <= 0
	c.Frustum(-1, 1, -1, 1, 1, 1)   // n == f

	if c.topProjection() != before {
		t.Errorf("Degenerate Frustum calls should leave the projection stack unchanged")
	}
}

func TestDegenerateOrthoIsNoOp(t *testing.T) {
	c := NewContext(4, 4)
	before := c.topProjection()

	c.Ortho(2, 2, -1, 1, 1, 10) // l == r
	c.Ortho(-1, 1, 3, 3, 1, 10) // b == t
	c.Ortho(-1, 1, -1, 1, 5, 5) // n == f

	if c.topProjection() != before {
		t.Errorf("Degenerate Ortho calls should leave the projection stack unchanged")
	}
}

func TestNegativeViewportIgnored(t *testing.T) {
	c := NewContext(4, 4)
	before := c.viewportSize
	c.Viewport(0, 0, -5, 10)
	if c.viewportSize != before {
		t.Errorf("Negative viewport extents should be a no-op")
	}
}

func TestViewportCentersSquare(t *testing.T) {
	c := NewContext(20, 20)
	c.Viewport(0, 0, 10, 6)
	if c.viewportSize != 6 {
		t.Errorf("Viewport: expected size 6, got %v", c.viewportSize)
	}
	if c.viewportX != 2 {
		t.Errorf("Viewport: expected xOrigin 2, got %v", c.viewportX)
	}
	if c.viewportY != 0 {
		t.Errorf("Viewport: expected yOrigin 0, got %v", c.viewportY)
	}
}
