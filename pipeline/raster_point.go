package pipeline

import stdmath "math"

// rasterizePoint scans a square box of side pointSize centered on v and
// emits a fragment for every pixel strictly closer than pointSize to the
// vertex (squared-distance test against pointSize^2, not (pointSize/2)^2 —
// this is the source's convention, carried over as-is). Fragments carry the
// vertex's own color and depth; lighting is never applied to points.
func (c *Context) rasterizePoint(v screenVertex) {
	size := c.pointSize
	half := size / 2

	minCol := int(stdmath.Floor(float64(v.Col - half)))
	maxCol := int(stdmath.Ceil(float64(v.Col + half)))
	minRow := int(stdmath.Floor(float64(v.Row - half)))
	maxRow := int(stdmath.Ceil(float64(v.Row + half)))

	depth := c.normalizeDepth(v.Z)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if col < 0 || col >= c.Width() || row < 0 || row >= c.Height() {
				continue
			}
			dx := float32(col) - v.Col
			dy := float32(row) - v.Row
			if dx*dx+dy*dy >= size*size {
				continue
			}
			c.fragmentQueue = append(c.fragmentQueue, fragment{
				Col:   col,
				Row:   row,
				Color: v.Color,
				Depth: depth,
			})
		}
	}
}
