package pipeline

import "softgl/raster"

// ClearColor sets the color used by Clear, clamped to [0,1] per channel.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor.R = clamp01(r)
	c.clearColor.G = clamp01(g)
	c.clearColor.B = clamp01(b)
	c.clearColor.A = clamp01(a)
}

// Clear overwrites the selected buffers wholesale: COLOR to clearColor,
// DEPTH to 255 (the initial farthest value).
func (c *Context) Clear(mask int) {
	if mask&ColorBufferBit != 0 {
		raster.Fill(c.framebuffer, raster.FromFloat(c.clearColor.R, c.clearColor.G, c.clearColor.B, c.clearColor.A))
	}
	if mask&DepthBufferBit != 0 {
		raster.Fill(c.depthBuffer, raster.Pixel{A: 255})
	}
}

func (c *Context) drainFragmentQueue() {
	for _, f := range c.fragmentQueue {
		c.processFragment(f)
	}
	c.fragmentQueue = c.fragmentQueue[:0]
}

// processFragment depth-tests (if enabled) and writes a fragment's color
// into the framebuffer, updating the depth buffer alpha on a pass. With
// depth-testing disabled the color write is unconditional and the depth
// buffer is left untouched.
func (c *Context) processFragment(f fragment) {
	if f.Col < 0 || f.Col >= c.Width() || f.Row < 0 || f.Row >= c.Height() {
		return
	}

	pixel := raster.FromFloat(f.Color.R, f.Color.G, f.Color.B, f.Color.A)

	if !c.depthTestEnabled {
		raster.Set(c.framebuffer, f.Col, f.Row, pixel)
		return
	}

	depth := f.Depth
	if depth < 0 {
		depth = 0
	} else if depth > 1 {
		depth = 1
	}

	existing := raster.At(c.depthBuffer, f.Col, f.Row).A
	if depth*255 > float32(existing) {
		return
	}

	raster.Set(c.framebuffer, f.Col, f.Row, pixel)
	raster.Set(c.depthBuffer, f.Col, f.Row, raster.Pixel{A: uint8(depth * 255)})
}
