package textures

import (
	"image/color"
	"testing"
)

func TestSolidFillsSinglePixel(t *testing.T) {
	tex := Solid("red", 255, 0, 0, 255)
	if tex.Width() != 1 || tex.Height() != 1 {
		t.Fatalf("size = %dx%d, want 1x1", tex.Width(), tex.Height())
	}
	got := tex.Image.RGBAAt(0, 0)
	want := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestCheckerAlternatesBlocks(t *testing.T) {
	c1 := color.RGBA{R: 255, A: 255}
	c2 := color.RGBA{B: 255, A: 255}
	tex := Checker("board", 16, c1, c2)

	if got := tex.Image.RGBAAt(0, 0); got != c1 {
		t.Errorf("(0,0) = %v, want %v", got, c1)
	}
	if got := tex.Image.RGBAAt(2, 0); got != c2 {
		t.Errorf("(2,0) = %v, want %v", got, c2)
	}
}

func TestManagerGetOrDefaultFallsBackOnEmptyPath(t *testing.T) {
	m := NewManager()
	tex := m.GetOrDefault("")
	if tex != m.fallback {
		t.Error("empty path should return the fallback texture")
	}
}

func TestManagerGetOrDefaultFallsBackOnMissingFile(t *testing.T) {
	m := NewManager()
	tex := m.GetOrDefault("/nonexistent/path/to/texture.png")
	if tex != m.fallback {
		t.Error("missing file should return the fallback texture")
	}
}

func TestManagerCachesByPath(t *testing.T) {
	m := NewManager()
	m.textures["cached.png"] = Solid("cached.png", 1, 2, 3, 4)

	got := m.GetOrDefault("cached.png")
	if got != m.textures["cached.png"] {
		t.Error("expected the cached texture instance, not a fresh load")
	}
}
