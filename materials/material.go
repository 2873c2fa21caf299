// Package materials describes surface appearance in the terms the pipeline's
// fixed-function lighting stage understands: ambient/diffuse/specular/
// emissive color plus a shininess exponent.
package materials

import (
	"softgl/core"
	"softgl/pipeline"
	"softgl/textures"
)

// Material is a Phong material. Unlit skips the lighting stage entirely
// (Color3f/Vertex3f only, no Materialfv) — used for wireframe overlays like
// the ground grid where per-fragment lighting would be wasted work.
type Material struct {
	Name string

	Ambient   core.Color
	Diffuse   core.Color
	Specular  core.Color
	Emissive  core.Color
	Shininess float32
	Unlit     bool

	// DiffuseTexture modulates (or replaces, per TexEnvMode) Diffuse; nil
	// means vertex/material color only. The pipeline exposes one texture
	// unit, so normal and metallic-roughness maps from richer material
	// models have no home here.
	DiffuseTexture *textures.Texture
}

// NewMaterial creates a Phong material with the given diffuse color and
// middling specular response.
func NewMaterial(name string, diffuse core.Color) *Material {
	return &Material{
		Name:      name,
		Ambient:   core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		Diffuse:   diffuse,
		Specular:  core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1},
		Shininess: 16,
	}
}

// Clone returns a deep copy of m under a new name; the texture, if any, is
// shared rather than duplicated.
func (m *Material) Clone(newName string) *Material {
	clone := *m
	clone.Name = newName
	return &clone
}

// ToPipelineMaterial converts to the snapshot a Mesh submits per vertex.
func (m *Material) ToPipelineMaterial() pipeline.Material {
	return pipeline.Material{
		Ambient:   m.Ambient,
		Diffuse:   m.Diffuse,
		Specular:  m.Specular,
		Emissive:  m.Emissive,
		Shininess: m.Shininess,
	}
}

// --- Default material library ---

// DefaultMaterial returns a plain grey Phong material.
func DefaultMaterial() *Material {
	return NewMaterial("Default", core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1})
}

// RedMaterial returns a red diffuse material.
func RedMaterial() *Material {
	return NewMaterial("Red", core.ColorRed)
}

// GreenMaterial returns a green diffuse material.
func GreenMaterial() *Material {
	return NewMaterial("Green", core.ColorGreen)
}

// BlueMaterial returns a blue diffuse material.
func BlueMaterial() *Material {
	return NewMaterial("Blue", core.ColorBlue)
}

// MetalMaterial returns a material with a low diffuse response and a tight,
// bright specular highlight, the Phong approximation of a metal surface.
func MetalMaterial() *Material {
	m := NewMaterial("Metal", core.Color{R: 0.3, G: 0.3, B: 0.32, A: 1})
	m.Specular = core.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	m.Shininess = 128
	return m
}

// EmissiveMaterial returns a self-illuminating material with no diffuse
// response, e.g. for a glowing marker.
func EmissiveMaterial(r, g, b float32) *Material {
	m := NewMaterial("Emissive", core.Color{})
	m.Emissive = core.Color{R: r, G: g, B: b, A: 1}
	return m
}
