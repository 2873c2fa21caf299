package pipeline

// transformVertex applies modelview then projection, performs the
// perspective divide, and maps into screen space. View-space z (pre-divide)
// is retained for later depth interpolation rather than the post-divide
// NDC z, matching the triangle rasterizer's depth convention.
func (c *Context) transformVertex(v vertexRecord) screenVertex {
	viewPos := v.Position.MulMat(c.topModelview())
	clipPos := viewPos.MulMat(c.topProjection())

	var ndcX, ndcY float32
	if clipPos.W != 0 {
		ndcX = clipPos.X / clipPos.W
		ndcY = clipPos.Y / clipPos.W
	} else {
		ndcX = clipPos.X
		ndcY = clipPos.Y
	}

	size := c.viewportSize
	col := roundFloat(ndcX*size/2 + size/2 + c.viewportX)
	row := roundFloat(ndcY*size/2 + size/2 + c.viewportY)

	// No inverse-transpose: normals are carried through modelview under
	// the assumption that only uniform scale is applied upstream.
	transformedNormal := v.Normal.MulMat(c.topModelview()).ToVec3()

	return screenVertex{
		Col:      col,
		Row:      row,
		Z:        viewPos.Z,
		Normal:   transformedNormal,
		Color:    v.Color,
		Material: v.Material,
		TexCoord: v.TexCoord,
	}
}
