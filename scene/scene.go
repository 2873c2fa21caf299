package scene

import (
	"softgl/core"
	"softgl/math"
	"softgl/pipeline"
)

// Scene manages a collection of nodes, the active camera, and the single
// light the pipeline supports.
type Scene struct {
	Root     *Node
	Camera   *Camera
	Light    *Light
	SkyColor core.Color
}

// Light is a directional or positional light source, carried in world
// space until Render programs it into the pipeline (which transforms it by
// the current modelview, per fixed-function convention).
type Light struct {
	// Position.W == 0 makes this directional (Position.XYZ is then a
	// direction, not a point); W == 1 makes it positional.
	Position math.Vec4
	Ambient  core.Color
	Diffuse  core.Color
	Specular core.Color
}

func NewScene() *Scene {
	return &Scene{
		Root:     NewNode("Root"),
		SkyColor: core.Color{R: 0.5, G: 0.7, B: 1.0, A: 1.0},
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

func (s *Scene) Update(deltaTime float32) {
	if s.Root != nil {
		s.Root.Update(deltaTime)
	}
}

// GetVisibleNodes returns all nodes with meshes that are visible and whose
// bounding box is not entirely outside the given frustum (pass nil to skip
// culling).
func (s *Scene) GetVisibleNodes(f *Frustum) []*Node {
	var visible []*Node

	s.Root.Traverse(func(node *Node) {
		if !node.Visible || node.Mesh == nil {
			return
		}
		if f != nil {
			box := ComputeAABB(node.Mesh, node.GetWorldMatrix())
			if !box.IntersectsFrustum(f) {
				return
			}
		}
		visible = append(visible, node)
	})

	return visible
}

// Render programs the camera's view/projection matrices and the scene's one
// light into ctx, then submits every visible node's mesh, each wrapped in
// its own PushMatrix/PopMatrix pair so sibling nodes never see each other's
// world transform.
func (s *Scene) Render(ctx *pipeline.Context) {
	if s.Camera == nil {
		return
	}

	ctx.MatrixMode(pipeline.Projection)
	ctx.LoadIdentity()
	ctx.MultMatrixf(s.Camera.GetProjectionMatrix().ColumnMajor())
	// GetViewMatrix below looks down -Z (standard GL convention), so visible
	// points have negative view-space z; SetDepthRange's near/far are negated
	// and swapped relative to the camera's own NearPlane/FarPlane to keep
	// normalizeDepth's (far-z)/(far-near) correct for that sign convention.
	ctx.SetDepthRange(-s.Camera.FarPlane, -s.Camera.NearPlane)

	ctx.MatrixMode(pipeline.ModelView)
	ctx.LoadIdentity()
	ctx.MultMatrixf(s.Camera.GetViewMatrix().ColumnMajor())

	if s.Light != nil {
		ctx.Light(pipeline.LightPosition, []float32{s.Light.Position.X, s.Light.Position.Y, s.Light.Position.Z, s.Light.Position.W})
		ctx.Light(pipeline.LightAmbient, []float32{s.Light.Ambient.R, s.Light.Ambient.G, s.Light.Ambient.B, s.Light.Ambient.A})
		ctx.Light(pipeline.LightDiffuse, []float32{s.Light.Diffuse.R, s.Light.Diffuse.G, s.Light.Diffuse.B, s.Light.Diffuse.A})
		ctx.Light(pipeline.LightSpecular, []float32{s.Light.Specular.R, s.Light.Specular.G, s.Light.Specular.B, s.Light.Specular.A})
	}

	var vp math.Mat4
	var f *Frustum
	if s.Camera != nil {
		vp = s.Camera.GetViewProjectionMatrix()
		fr := FrustumFromVP(vp)
		f = &fr
	}

	for _, node := range s.GetVisibleNodes(f) {
		ctx.PushMatrix()
		ctx.MultMatrixf(node.GetWorldMatrix().ColumnMajor())
		node.Mesh.Submit(ctx)
		ctx.PopMatrix()
	}
}

// CreateDefaultScene builds a scene with a 60-degree perspective camera
// looking at the origin and one white directional light overhead.
func CreateDefaultScene() *Scene {
	s := NewScene()

	camera := NewCamera(1.0472, 16.0/9.0, 0.1, 1000.0)
	camera.SetPosition(math.Vec3{X: 0, Y: 2, Z: 5})
	camera.LookAt(math.Vec3Zero, math.Vec3Up)
	s.SetCamera(camera)

	s.Light = &Light{
		Position: math.Vec4{X: 0.5, Y: 1, Z: 0.5, W: 0},
		Ambient:  core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		Diffuse:  core.ColorWhite,
		Specular: core.ColorWhite,
	}

	return s
}
