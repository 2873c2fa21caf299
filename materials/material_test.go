package materials

import (
	"testing"

	"softgl/core"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial("Test", core.ColorRed)
	if m.Diffuse != core.ColorRed {
		t.Errorf("Diffuse = %v, want %v", m.Diffuse, core.ColorRed)
	}
	if m.Unlit {
		t.Error("new material should not be unlit")
	}
	if m.Shininess <= 0 {
		t.Errorf("Shininess = %v, want > 0", m.Shininess)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewMaterial("Original", core.ColorGreen)
	clone := m.Clone("Clone")

	clone.Diffuse = core.ColorBlue
	if m.Diffuse != core.ColorGreen {
		t.Errorf("clone mutation leaked into original: Diffuse = %v", m.Diffuse)
	}
	if clone.Name != "Clone" || m.Name != "Original" {
		t.Errorf("names not independent: original=%q clone=%q", m.Name, clone.Name)
	}
}

func TestToPipelineMaterialCopiesChannels(t *testing.T) {
	m := NewMaterial("Test", core.ColorRed)
	m.Ambient = core.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	m.Specular = core.ColorWhite
	m.Emissive = core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	m.Shininess = 42

	pm := m.ToPipelineMaterial()
	if pm.Ambient != m.Ambient || pm.Diffuse != m.Diffuse || pm.Specular != m.Specular ||
		pm.Emissive != m.Emissive || pm.Shininess != m.Shininess {
		t.Errorf("ToPipelineMaterial() = %+v, did not match source material %+v", pm, m)
	}
}

func TestEmissiveMaterialHasNoDiffuseResponse(t *testing.T) {
	m := EmissiveMaterial(2, 1, 0.5)
	if m.Diffuse != (core.Color{}) {
		t.Errorf("Diffuse = %v, want zero value", m.Diffuse)
	}
	want := core.Color{R: 2, G: 1, B: 0.5, A: 1}
	if m.Emissive != want {
		t.Errorf("Emissive = %v, want %v", m.Emissive, want)
	}
}
