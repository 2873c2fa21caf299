package pipeline

import (
	stdmath "math"

	"softgl/math"
)

func (c *Context) currentStack() *[]math.Mat4 {
	switch c.matrixMode {
	case ModelView:
		return &c.modelview
	case Projection:
		return &c.projection
	default:
		return nil
	}
}

// MatrixMode selects the stack subsequent matrix operations target.
// Matrix operations issued while an unknown mode is selected are silently
// ignored.
func (c *Context) MatrixMode(mode int) {
	c.matrixMode = mode
}

// PushMatrix duplicates the top of the current stack.
func (c *Context) PushMatrix() {
	stack := c.currentStack()
	if stack == nil {
		return
	}
	top := (*stack)[len(*stack)-1]
	*stack = append(*stack, top)
}

// PopMatrix removes the top of the current stack. A stack of size one is
// left unchanged rather than emptied.
func (c *Context) PopMatrix() {
	stack := c.currentStack()
	if stack == nil || len(*stack) <= 1 {
		return
	}
	*stack = (*stack)[:len(*stack)-1]
}

// LoadIdentity replaces the top of the current stack with the identity.
func (c *Context) LoadIdentity() {
	stack := c.currentStack()
	if stack == nil {
		return
	}
	(*stack)[len(*stack)-1] = math.Mat4Identity()
}

// MultMatrixf right-multiplies the current stack's top by a column-major
// 4x4 matrix.
func (c *Context) MultMatrixf(m [16]float32) {
	stack := c.currentStack()
	if stack == nil {
		return
	}
	top := len(*stack) - 1
	(*stack)[top] = (*stack)[top].Mul(math.Mat4FromColumnMajor(m))
}

// Frustum right-multiplies the current stack by an off-axis perspective
// projection and records near/far for depth normalization. Degenerate
// parameters are a no-op.
func (c *Context) Frustum(left, right, bottom, top_, near, far float32) {
	if near <= 0 || far <= 0 || left == right || bottom == top_ || near == far {
		return
	}
	stack := c.currentStack()
	if stack == nil {
		return
	}
	top := len(*stack) - 1
	(*stack)[top] = (*stack)[top].Mul(math.Mat4Frustum(left, right, bottom, top_, near, far))
	c.near, c.far = near, far
}

// Ortho right-multiplies the current stack by an orthographic projection
// and records near/far for depth normalization. Degenerate parameters are
// a no-op.
func (c *Context) Ortho(left, right, bottom, top_, near, far float32) {
	if left == right || bottom == top_ || near == far {
		return
	}
	stack := c.currentStack()
	if stack == nil {
		return
	}
	top := len(*stack) - 1
	(*stack)[top] = (*stack)[top].Mul(math.Mat4Orthographic(left, right, bottom, top_, near, far))
	c.near, c.far = near, far
}

// Rotatef right-multiplies the current stack by an axis-angle rotation.
// angle is in degrees; the axis is normalized only when its length exceeds
// one, matching the source's quirky convention. The conversion to radians
// is angle*pi/180 — the source computes angle*180/pi, which inverts
// degrees-to-radians and is a known bug this implementation does not
// reproduce.
func (c *Context) Rotatef(angle, x, y, z float32) {
	axis := math.NewVec3(x, y, z)
	if axis.Length() > 1 {
		axis = axis.Normalize()
	}
	radians := angle * float32(stdmath.Pi) / 180
	stack := c.currentStack()
	if stack == nil {
		return
	}
	top := len(*stack) - 1
	(*stack)[top] = (*stack)[top].Mul(axisAngleMatrix(axis, radians))
}

// axisAngleMatrix builds the full Rodrigues rotation matrix for axis
// (assumed already normalized by the caller per the source's convention)
// and angle in radians.
func axisAngleMatrix(axis math.Vec3, radians float32) math.Mat4 {
	cosA := stdmath.Cos(float64(radians))
	sinA := stdmath.Sin(float64(radians))
	t := 1 - cosA
	x, y, z := float64(axis.X), float64(axis.Y), float64(axis.Z)

	m := math.Mat4Identity()
	m[0][0] = float32(t*x*x + cosA)
	m[0][1] = float32(t*x*y + sinA*z)
	m[0][2] = float32(t*x*z - sinA*y)
	m[1][0] = float32(t*x*y - sinA*z)
	m[1][1] = float32(t*y*y + cosA)
	m[1][2] = float32(t*y*z + sinA*x)
	m[2][0] = float32(t*x*z + sinA*y)
	m[2][1] = float32(t*y*z - sinA*x)
	m[2][2] = float32(t*z*z + cosA)
	return m
}

// Scalef right-multiplies the current stack by a scale matrix.
func (c *Context) Scalef(sx, sy, sz float32) {
	stack := c.currentStack()
	if stack == nil {
		return
	}
	top := len(*stack) - 1
	(*stack)[top] = (*stack)[top].Mul(math.Mat4Scale(math.NewVec3(sx, sy, sz)))
}

// Translatef right-multiplies the current stack by a translation matrix.
func (c *Context) Translatef(tx, ty, tz float32) {
	stack := c.currentStack()
	if stack == nil {
		return
	}
	top := len(*stack) - 1
	(*stack)[top] = (*stack)[top].Mul(math.Mat4Translation(math.NewVec3(tx, ty, tz)))
}

// SetDepthRange directly sets the near/far values normalizeDepth compares
// each fragment's view-space z against, without touching either matrix
// stack. Frustum and Ortho set this as a side effect of building a
// projection matrix; SetDepthRange is for callers that already have their
// own projection matrix (e.g. a scene camera) and only need the raw
// view-space depth range kept in sync with it. A degenerate range is a
// no-op.
func (c *Context) SetDepthRange(near, far float32) {
	if near == far {
		return
	}
	c.near, c.far = near, far
}

// Viewport sets the pixel region the NDC cube maps onto. The raster area is
// a centered square of side min(w,h), not a rectangle. Negative extents are
// a no-op.
func (c *Context) Viewport(x, y, w, h int) {
	if w < 0 || h < 0 {
		return
	}
	size := min(w, h)
	c.viewportSize = float32(size)
	c.viewportX = float32(x) + float32(w-size)/2
	c.viewportY = float32(y) + float32(h-size)/2
}
