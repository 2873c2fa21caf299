package io

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleOBJ = `# a quad made of two triangles
v -1 0 -1
v  1 0 -1
v  1 0  1
v -1 0  1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 1 0
usemtl Ground
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`

const sampleMTL = `newmtl Ground
Kd 0.5 0.4 0.3
Ks 0.1 0.1 0.1
Ns 32.0
`

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadOBJParsesFacesAndUVs(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "quad.obj", sampleOBJ)

	data, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if len(data.Meshes) != 1 {
		t.Fatalf("len(Meshes) = %d, want 1", len(data.Meshes))
	}
	mesh := data.Meshes[0]
	if len(mesh.Vertices) != 4 {
		t.Errorf("len(Vertices) = %d, want 4", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 6 {
		t.Errorf("len(Indices) = %d, want 6 (two triangles)", len(mesh.Indices))
	}
	if mesh.Material != "Ground" {
		t.Errorf("Material = %q, want %q", mesh.Material, "Ground")
	}
}

func TestLoadOBJWithMTLPopulatesMaterial(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "quad.mtl", sampleMTL)
	objContent := "mtllib quad.mtl\n" + sampleOBJ
	path := writeTemp(t, dir, "quad.obj", objContent)

	data, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	mat, ok := data.Materials["Ground"]
	if !ok {
		t.Fatal("expected Materials[\"Ground\"] to be populated from the MTL file")
	}
	if mat.Diffuse.R != 0.5 || mat.Diffuse.G != 0.4 || mat.Diffuse.B != 0.3 {
		t.Errorf("Diffuse = %+v, want (0.5, 0.4, 0.3)", mat.Diffuse)
	}
	if mat.Shininess != 32.0 {
		t.Errorf("Shininess = %v, want 32", mat.Shininess)
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ("/nonexistent/file.obj"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
