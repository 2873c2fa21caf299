package raster

import (
	"image"
	"testing"
)

func TestFromFloatClampsAndScales(t *testing.T) {
	p := FromFloat(1.5, -0.5, 0.5, 1.0)
	expected := Pixel{R: 255, G: 0, B: 127, A: 255}
	if p != expected {
		t.Errorf("FromFloat: expected %v, got %v", expected, p)
	}
}

func TestModulateWhiteIsIdentity(t *testing.T) {
	white := Pixel{R: 255, G: 255, B: 255, A: 255}
	red := Pixel{R: 200, G: 10, B: 30, A: 255}

	if got := red.Modulate(white); got != red {
		t.Errorf("Modulate by white: expected %v, got %v", red, got)
	}
}

func TestModulateBlackZeroesOut(t *testing.T) {
	black := Pixel{R: 0, G: 0, B: 0, A: 0}
	red := Pixel{R: 200, G: 10, B: 30, A: 255}

	if got := red.Modulate(black); got != (Pixel{}) {
		t.Errorf("Modulate by black: expected zero pixel, got %v", got)
	}
}

func TestScaleSaturates(t *testing.T) {
	p := Pixel{R: 200, G: 10, B: 0, A: 255}
	got := p.Scale(2.0)
	if got.R != 255 || got.G != 20 || got.B != 0 || got.A != 255 {
		t.Errorf("Scale: expected saturated channels, got %v", got)
	}
}

func TestSetAndAtRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	want := Pixel{R: 10, G: 20, B: 30, A: 255}
	Set(img, 2, 1, want)

	if got := At(img, 2, 1); got != want {
		t.Errorf("At: expected %v, got %v", want, got)
	}
}

func TestFillCoversEveryPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	want := Pixel{R: 1, G: 2, B: 3, A: 4}
	Fill(img, want)

	b := img.Bounds()
	for row := b.Min.Y; row < b.Max.Y; row++ {
		for col := b.Min.X; col < b.Max.X; col++ {
			if got := At(img, col, row); got != want {
				t.Errorf("Fill: pixel (%d,%d) expected %v, got %v", col, row, want, got)
			}
		}
	}
}
