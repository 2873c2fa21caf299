package scene

import (
	"softgl/core"
	"softgl/materials"
	"softgl/pipeline"
)

// Draw mode a mesh is submitted with, mirroring the pipeline's primitive
// types (Begin takes Points/Lines/Triangles; DrawMode selects which).
const (
	DrawTriangles = iota
	DrawLines
	DrawPoints
)

// Mesh is a CPU-side indexed vertex list together with the material it is
// submitted with.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
	Material *materials.Material
	DrawMode int

	// Cached local-space bounding box, used by Frustum culling in place of
	// scanning every vertex each frame.
	HasLocalAABB bool
	LocalAABB    AABB
}

func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CreateMeshFromData builds a mesh from raw vertex/index data and caches its
// local AABB.
func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	m := &Mesh{Name: name, Vertices: vertices, Indices: indices}
	m.cacheLocalAABB()
	return m
}

func (m *Mesh) cacheLocalAABB() {
	if len(m.Vertices) == 0 {
		return
	}
	box := AABB{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		p := v.Position
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.Z < box.Min.Z {
			box.Min.Z = p.Z
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
		if p.Z > box.Max.Z {
			box.Max.Z = p.Z
		}
	}
	m.LocalAABB = box
	m.HasLocalAABB = true
}

func primitiveFor(drawMode int) int {
	switch drawMode {
	case DrawLines:
		return pipeline.Lines
	case DrawPoints:
		return pipeline.Points
	default:
		return pipeline.Triangles
	}
}

func vertexCountFor(drawMode int) int {
	switch drawMode {
	case DrawLines:
		return 2
	case DrawPoints:
		return 1
	default:
		return 3
	}
}

// Submit drives the immediate-mode pipeline one vertex at a time: it sets
// the material (and texture, if any) once, then walks the index list (or
// the vertex list directly, if unindexed) emitting complete primitives via
// Color3f/Normal3f/TexCoord2f/Vertex3f.
func (m *Mesh) Submit(ctx *pipeline.Context) {
	if len(m.Vertices) == 0 {
		return
	}

	mat := m.Material
	if mat == nil {
		mat = materials.DefaultMaterial()
	}

	if mat.Unlit {
		ctx.Disable(pipeline.Lighting)
	} else {
		ctx.Enable(pipeline.Lighting)
		pm := mat.ToPipelineMaterial()
		ctx.Materialfv(pipeline.MaterialAmbient, []float32{pm.Ambient.R, pm.Ambient.G, pm.Ambient.B, pm.Ambient.A})
		ctx.Materialfv(pipeline.MaterialDiffuse, []float32{pm.Diffuse.R, pm.Diffuse.G, pm.Diffuse.B, pm.Diffuse.A})
		ctx.Materialfv(pipeline.MaterialSpecular, []float32{pm.Specular.R, pm.Specular.G, pm.Specular.B, pm.Specular.A})
		ctx.Materialfv(pipeline.MaterialEmission, []float32{pm.Emissive.R, pm.Emissive.G, pm.Emissive.B, pm.Emissive.A})
		ctx.Materialf(pipeline.MaterialShininess, pm.Shininess)
	}

	if mat.DiffuseTexture != nil {
		ctx.TexImage2D(mat.DiffuseTexture.Image)
		ctx.TexEnvMode(pipeline.TexEnvModulate)
		ctx.Enable(pipeline.Texture2D)
	} else {
		ctx.Disable(pipeline.Texture2D)
	}

	emit := func(v core.Vertex) {
		ctx.Color3f(v.Color.R, v.Color.G, v.Color.B)
		ctx.Normal3f(v.Normal.X, v.Normal.Y, v.Normal.Z)
		ctx.TexCoord2f(v.UV.X, v.UV.Y)
		ctx.Vertex3f(v.Position.X, v.Position.Y, v.Position.Z)
	}

	ctx.Begin(primitiveFor(m.DrawMode))
	n := vertexCountFor(m.DrawMode)
	if len(m.Indices) > 0 {
		count := len(m.Indices) - len(m.Indices)%n
		for i := 0; i < count; i++ {
			emit(m.Vertices[m.Indices[i]])
		}
	} else {
		count := len(m.Vertices) - len(m.Vertices)%n
		for i := 0; i < count; i++ {
			emit(m.Vertices[i])
		}
	}
	ctx.End()
}
