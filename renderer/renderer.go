// Package renderer ties the software pipeline, a scene graph, and the
// windowing/blit layer together into a single per-frame driver.
package renderer

import (
	"fmt"

	"softgl/core"
	"softgl/opengl"
	"softgl/pipeline"
	"softgl/scene"
)

// Engine owns the software rasterizer and the on-screen presentation path.
// Render() does the whole job: clear, traverse the scene, rasterize on the
// CPU, then hand the finished framebuffer to the GPU blitter for display.
type Engine struct {
	Pipeline *pipeline.Context
	Scene    *scene.Scene
	blitter  *opengl.Blitter
	window   *core.Window
}

// NewEngine creates a software pipeline sized to the window's current
// framebuffer and a GPU blitter to present it.
// Must be called after the window's GL context is current (core.NewWindow
// does this).
func NewEngine(window *core.Window) (*Engine, error) {
	width, height := window.GetFramebufferSize()

	blitter, err := opengl.NewBlitter()
	if err != nil {
		return nil, fmt.Errorf("failed to create blitter: %w", err)
	}
	blitter.SetViewport(width, height)

	return &Engine{
		Pipeline: pipeline.NewContext(width, height),
		blitter:  blitter,
		window:   window,
	}, nil
}

func (e *Engine) SetScene(s *scene.Scene) {
	e.Scene = s
}

// Render clears the pipeline's buffers, renders the scene into them, and
// presents the result.
func (e *Engine) Render() error {
	if e.Scene == nil || e.Scene.Camera == nil {
		return fmt.Errorf("no scene or camera set")
	}

	sky := e.Scene.SkyColor
	e.Pipeline.ClearColor(sky.R, sky.G, sky.B, sky.A)
	e.Pipeline.Clear(pipeline.ColorBufferBit | pipeline.DepthBufferBit)

	e.Scene.Render(e.Pipeline)

	fb := e.Pipeline.Framebuffer()
	e.blitter.Present(fb.Bounds().Dx(), fb.Bounds().Dy(), fb.Pix)
	e.window.SwapBuffers()
	return nil
}

// Resize recreates the pipeline at the new size and updates the camera's
// aspect ratio and the blitter's viewport.
func (e *Engine) Resize(width, height int) {
	e.Pipeline = pipeline.NewContext(width, height)
	e.blitter.SetViewport(width, height)
	if e.Scene != nil && e.Scene.Camera != nil {
		e.Scene.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
}

func (e *Engine) Destroy() {
	e.blitter.Destroy()
}
