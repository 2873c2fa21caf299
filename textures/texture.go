// Package textures loads and caches CPU-side RGBA8 images for the pipeline's
// single texture unit (pipeline.Context.TexImage2D takes an *image.RGBA
// directly).
package textures

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
)

// Texture holds CPU-side RGBA8 pixel data plus a name for diagnostics.
type Texture struct {
	Name  string
	Image *image.RGBA
}

func (t *Texture) Width() int  { return t.Image.Bounds().Dx() }
func (t *Texture) Height() int { return t.Image.Bounds().Dy() }

// Load reads a PNG or JPEG file from disk and decodes it to RGBA8.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return &Texture{Name: path, Image: toRGBA(img)}, nil
}

// DecodeBytes decodes an in-memory PNG or JPEG, used by glTF loading where
// image data lives in a buffer view rather than a file.
func DecodeBytes(name string, data []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	return &Texture{Name: name, Image: toRGBA(img)}, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}

// Solid creates a 1x1 texture of a single color.
func Solid(name string, r, g, b, a uint8) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: r, G: g, B: b, A: a})
	return &Texture{Name: name, Image: img}
}

// Checker creates a size x size checkerboard of c1/c2, eight blocks per side.
func Checker(name string, size int, c1, c2 color.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	blockSize := size / 8
	if blockSize < 1 {
		blockSize = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if ((x/blockSize)+(y/blockSize))%2 == 0 {
				img.SetRGBA(x, y, c1)
			} else {
				img.SetRGBA(x, y, c2)
			}
		}
	}
	return &Texture{Name: name, Image: img}
}

// Manager caches textures loaded from disk by path.
type Manager struct {
	mu       sync.RWMutex
	textures map[string]*Texture
	fallback *Texture
}

func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]*Texture),
		fallback: Solid("__default_white__", 255, 255, 255, 255),
	}
}

// GetOrDefault loads and caches the texture at path, or returns the default
// solid white texture if path is empty or loading fails.
func (m *Manager) GetOrDefault(path string) *Texture {
	if path == "" {
		return m.fallback
	}

	m.mu.RLock()
	if tex, ok := m.textures[path]; ok {
		m.mu.RUnlock()
		return tex
	}
	m.mu.RUnlock()

	tex, err := Load(path)
	if err != nil {
		fmt.Printf("textures: failed to load %q: %v\n", path, err)
		return m.fallback
	}

	m.mu.Lock()
	m.textures[path] = tex
	m.mu.Unlock()
	return tex
}
