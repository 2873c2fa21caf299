package pipeline

import "softgl/math"

// Vertex3f builds a vertex record from the current attribute state,
// synchronously runs it through the transform stage, attempts primitive
// assembly, and — if a primitive completes — drains the fragment queue
// into the framebuffer before returning.
func (c *Context) Vertex3f(x, y, z float32) {
	record := vertexRecord{
		Position: math.Vec4{X: x, Y: y, Z: z, W: 1},
		Normal:   c.normal.ToVec4(0),
		Color:    c.color,
		Material: c.material,
		TexCoord: c.texCoord,
	}
	c.vertexQueue = append(c.vertexQueue, record)
	c.advanceTransformStage()
	if c.assemblePrimitive() {
		c.drainFragmentQueue()
	}
}

func (c *Context) advanceTransformStage() {
	if len(c.vertexQueue) == 0 {
		return
	}
	front := c.vertexQueue[0]
	c.vertexQueue = c.vertexQueue[1:]
	c.rasterQueue = append(c.rasterQueue, c.transformVertex(front))
}

// assemblePrimitive pops the next N screen-space vertices the current
// primitive type needs (1, 2, or 3) and rasterizes them. It reports
// whether a primitive was assembled.
func (c *Context) assemblePrimitive() bool {
	n := 0
	switch c.primitive {
	case Points:
		n = 1
	case Lines:
		n = 2
	case Triangles:
		n = 3
	default:
		return false
	}
	if len(c.rasterQueue) < n {
		return false
	}
	verts := c.rasterQueue[:n]
	c.rasterQueue = c.rasterQueue[n:]

	switch n {
	case 1:
		c.rasterizePoint(verts[0])
	case 2:
		c.rasterizeLine(verts[0], verts[1])
	case 3:
		c.rasterizeTriangle(verts[0], verts[1], verts[2])
	}
	return true
}
