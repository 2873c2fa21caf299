// Package raster implements the 8-bit RGBA pixel arithmetic and the
// framebuffer/depth-buffer/texture storage the pipeline core rasterizes
// into. It plays the role of the "RGBA pixel type" and "RGBA image" external
// collaborators referenced by the fixed-function pipeline: component
// arithmetic, scalar multiply, and componentwise modulate.
package raster

import "image"

// Pixel is an 8-bit-per-channel RGBA colour, the on-the-wire representation
// used by the framebuffer, depth buffer, and texture store.
type Pixel struct {
	R, G, B, A uint8
}

// FromFloat clamps r,g,b,a to [0,1] and scales to [0,255], the conversion
// every attribute setter (Color3f, ClearColor, ...) performs on input.
func FromFloat(r, g, b, a float32) Pixel {
	return Pixel{
		R: clampScale(r),
		G: clampScale(g),
		B: clampScale(b),
		A: clampScale(a),
	}
}

func clampScale(v float32) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(v * 255)
}

// Add returns the componentwise sum, saturating at 255.
func (p Pixel) Add(o Pixel) Pixel {
	return Pixel{
		R: saturatingAdd(p.R, o.R),
		G: saturatingAdd(p.G, o.G),
		B: saturatingAdd(p.B, o.B),
		A: saturatingAdd(p.A, o.A),
	}
}

func saturatingAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Scale multiplies every channel by a scalar, clamping to [0, 255].
func (p Pixel) Scale(s float32) Pixel {
	return Pixel{
		R: scaleChannel(p.R, s),
		G: scaleChannel(p.G, s),
		B: scaleChannel(p.B, s),
		A: scaleChannel(p.A, s),
	}
}

func scaleChannel(c uint8, s float32) uint8 {
	v := float32(c) * s
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Modulate multiplies two pixels channel-by-channel as normalized 8-bit
// products (c' = c0*c1/255), the MODULATE texture environment combine.
func (p Pixel) Modulate(o Pixel) Pixel {
	return Pixel{
		R: modChannel(p.R, o.R),
		G: modChannel(p.G, o.G),
		B: modChannel(p.B, o.B),
		A: modChannel(p.A, o.A),
	}
}

func modChannel(a, b uint8) uint8 {
	return uint8((uint16(a) * uint16(b)) / 255)
}

// RGBA satisfies color.Color so a Pixel can be written directly into an
// *image.RGBA via Set.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R) * 0x101
	g = uint32(p.G) * 0x101
	b = uint32(p.B) * 0x101
	a = uint32(p.A) * 0x101
	return
}

// At reads the pixel stored at (col, row) in an *image.RGBA.
func At(img *image.RGBA, col, row int) Pixel {
	i := img.PixOffset(col, row)
	px := img.Pix[i : i+4 : i+4]
	return Pixel{R: px[0], G: px[1], B: px[2], A: px[3]}
}

// Set writes a pixel at (col, row) in an *image.RGBA.
func Set(img *image.RGBA, col, row int, p Pixel) {
	i := img.PixOffset(col, row)
	px := img.Pix[i : i+4 : i+4]
	px[0], px[1], px[2], px[3] = p.R, p.G, p.B, p.A
}

// Fill overwrites every pixel of img with p.
func Fill(img *image.RGBA, p Pixel) {
	b := img.Bounds()
	for row := b.Min.Y; row < b.Max.Y; row++ {
		for col := b.Min.X; col < b.Max.X; col++ {
			Set(img, col, row, p)
		}
	}
}
