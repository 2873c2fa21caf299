package pipeline

import (
	stdmath "math"

	"softgl/core"
	"softgl/math"
)

// edgeFn is a 2D edge's implicit line n.p - c, used to compute barycentric
// weights without ever forming an explicit matrix inverse.
type edgeFn struct {
	nx, ny, c float32
}

func (e edgeFn) eval(x, y float32) float32 {
	return e.nx*x + e.ny*y - e.c
}

// buildEdge computes the edge from a to b and the signed distance of the
// opposite vertex to that edge line, which is also the barycentric
// denominator for the opposite vertex's weight. A zero distance means the
// three vertices are collinear.
func buildEdge(a, b, opposite screenVertex) (edgeFn, float32, bool) {
	ex := b.Col - a.Col
	ey := b.Row - a.Row
	// perpendicular, rotated 90 degrees
	nx, ny := -ey, ex
	e := edgeFn{nx: nx, ny: ny, c: nx*a.Col + ny*a.Row}
	d := e.eval(opposite.Col, opposite.Row)
	if d == 0 {
		return edgeFn{}, 0, false
	}
	return e, d, true
}

func lerpMaterialColor(c0, c1, c2 core.Color, a, b, g float32) core.Color {
	return core.Color{
		R: a*c0.R + b*c1.R + g*c2.R,
		G: a*c0.G + b*c1.G + g*c2.G,
		B: a*c0.B + b*c1.B + g*c2.B,
		A: a*c0.A + b*c1.A + g*c2.A,
	}
}

// rasterizeTriangle scans the screen-space bounding box of v0,v1,v2,
// computing barycentric weights per pixel via the three edge functions.
// Degenerate (collinear) triangles are skipped entirely. Lighting, when
// enabled, is evaluated per vertex and blended (Gouraud) or per fragment
// from interpolated normal/material (Phong), then texture-combined.
func (c *Context) rasterizeTriangle(v0, v1, v2 screenVertex) {
	e12, d0, ok := buildEdge(v1, v2, v0)
	if !ok {
		return
	}
	e20, d1, ok := buildEdge(v2, v0, v1)
	if !ok {
		return
	}
	e01, d2, ok := buildEdge(v0, v1, v2)
	if !ok {
		return
	}

	minCol := int(stdmath.Floor(float64(minOf3(v0.Col, v1.Col, v2.Col))))
	maxCol := int(stdmath.Ceil(float64(maxOf3(v0.Col, v1.Col, v2.Col))))
	minRow := int(stdmath.Floor(float64(minOf3(v0.Row, v1.Row, v2.Row))))
	maxRow := int(stdmath.Ceil(float64(maxOf3(v0.Row, v1.Row, v2.Row))))

	if minCol < 0 {
		minCol = 0
	}
	if minRow < 0 {
		minRow = 0
	}
	if w := c.Width(); maxCol >= w {
		maxCol = w - 1
	}
	if h := c.Height(); maxRow >= h {
		maxRow = h - 1
	}

	var i0, i1, i2 core.Color
	gouraud := c.lightingEnabled && !c.phongShading
	if gouraud {
		i0 = c.lightIntensity(v0.Normal, v0.Material)
		i1 = c.lightIntensity(v1.Normal, v1.Material)
		i2 = c.lightIntensity(v2.Normal, v2.Material)
	}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			x, y := float32(col), float32(row)
			alpha := e12.eval(x, y) / d0
			beta := e20.eval(x, y) / d1
			gamma := e01.eval(x, y) / d2

			if alpha < 0 || beta < 0 || gamma < 0 {
				continue
			}

			z := alpha*v0.Z + beta*v1.Z + gamma*v2.Z
			depth := c.normalizeDepth(z)
			if depth < 0 || depth > 1 {
				continue
			}

			baseline := core.Color{
				R: alpha*v0.Color.R + beta*v1.Color.R + gamma*v2.Color.R,
				G: alpha*v0.Color.G + beta*v1.Color.G + gamma*v2.Color.G,
				B: alpha*v0.Color.B + beta*v1.Color.B + gamma*v2.Color.B,
				A: alpha*v0.Color.A + beta*v1.Color.A + gamma*v2.Color.A,
			}

			fragColor := baseline
			switch {
			case c.lightingEnabled && c.phongShading:
				normal := math.Vec3{
					X: alpha*v0.Normal.X + beta*v1.Normal.X + gamma*v2.Normal.X,
					Y: alpha*v0.Normal.Y + beta*v1.Normal.Y + gamma*v2.Normal.Y,
					Z: alpha*v0.Normal.Z + beta*v1.Normal.Z + gamma*v2.Normal.Z,
				}
				material := Material{
					Ambient:   lerpMaterialColor(v0.Material.Ambient, v1.Material.Ambient, v2.Material.Ambient, alpha, beta, gamma),
					Diffuse:   lerpMaterialColor(v0.Material.Diffuse, v1.Material.Diffuse, v2.Material.Diffuse, alpha, beta, gamma),
					Specular:  lerpMaterialColor(v0.Material.Specular, v1.Material.Specular, v2.Material.Specular, alpha, beta, gamma),
					Emissive:  lerpMaterialColor(v0.Material.Emissive, v1.Material.Emissive, v2.Material.Emissive, alpha, beta, gamma),
					Shininess: alpha*v0.Material.Shininess + beta*v1.Material.Shininess + gamma*v2.Material.Shininess,
				}
				intensity := c.lightIntensity(normal, material)
				fragColor = c.gammaCorrect(core.Color{
					R: baseline.R * intensity.R,
					G: baseline.G * intensity.G,
					B: baseline.B * intensity.B,
					A: baseline.A,
				})
			case gouraud:
				weighted := core.Color{
					R: alpha*v0.Color.R*i0.R + beta*v1.Color.R*i1.R + gamma*v2.Color.R*i2.R,
					G: alpha*v0.Color.G*i0.G + beta*v1.Color.G*i1.G + gamma*v2.Color.G*i2.G,
					B: alpha*v0.Color.B*i0.B + beta*v1.Color.B*i1.B + gamma*v2.Color.B*i2.B,
					A: baseline.A,
				}
				fragColor = c.gammaCorrect(weighted)
			}

			if c.textureEnabled && len(c.texels) > 0 {
				u := alpha*v0.TexCoord.X + beta*v1.TexCoord.X + gamma*v2.TexCoord.X
				vv := alpha*v0.TexCoord.Y + beta*v1.TexCoord.Y + gamma*v2.TexCoord.Y
				texel := c.sampleTexture(u, vv)
				if c.texEnvMode == TexEnvReplace {
					fragColor = texel
				} else {
					fragColor = core.Color{
						R: fragColor.R * texel.R,
						G: fragColor.G * texel.G,
						B: fragColor.B * texel.B,
						A: fragColor.A * texel.A,
					}
				}
			}

			c.fragmentQueue = append(c.fragmentQueue, fragment{
				Col:   col,
				Row:   row,
				Color: fragColor,
				Depth: depth,
			})
		}
	}
}

// lightIntensity evaluates the per-channel Phong reflectance at a given
// (already-interpolated, for Phong shading) normal and material.
func (c *Context) lightIntensity(normal math.Vec3, material Material) core.Color {
	n := normal.Normalize()
	lightDir := c.lightDirection().Normalize()

	cosDif := n.Dot(lightDir)
	if cosDif < 0 {
		cosDif = 0
	}
	// Half-vector approximation: reuses the light direction scaled by
	// one half instead of the true normalized halfway vector.
	cosSpec := n.Dot(lightDir.Mul(0.5))
	if cosSpec < 0 {
		cosSpec = 0
	}
	specFactor := float32(stdmath.Pow(float64(cosSpec), float64(material.Shininess)))

	channel := func(ambLight, ambMat, difLight, difMat, specLight, specMat, emissive float32) float32 {
		return ambLight*ambMat + difLight*difMat*cosDif + specLight*specMat*specFactor + emissive
	}

	return core.Color{
		R: channel(c.light.Ambient.R, material.Ambient.R, c.light.Diffuse.R, material.Diffuse.R, c.light.Specular.R, material.Specular.R, material.Emissive.R),
		G: channel(c.light.Ambient.G, material.Ambient.G, c.light.Diffuse.G, material.Diffuse.G, c.light.Specular.G, material.Specular.G, material.Emissive.G),
		B: channel(c.light.Ambient.B, material.Ambient.B, c.light.Diffuse.B, material.Diffuse.B, c.light.Specular.B, material.Specular.B, material.Emissive.B),
		A: 1,
	}
}

// lightDirection returns the light vector used for shading: positional
// lights (w != 0) return the position xyz/w as-is, without subtracting the
// surface point; directional lights (w == 0) use xyz directly.
func (c *Context) lightDirection() math.Vec3 {
	pos := c.light.Position
	if pos.W != 0 {
		return math.Vec3{X: pos.X / pos.W, Y: pos.Y / pos.W, Z: pos.Z / pos.W}
	}
	return math.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}
}

// gammaCorrect applies the calibration post-correction channel' =
// linear^GammaExponent + GammaOffset directly to the [0,1]-scale weighted
// color, then rescales the result by 1/255 so it round-trips through the
// same [0,1] Color convention used everywhere else; the eventual 8-bit
// framebuffer write (raster.FromFloat) multiplies back by 255, recovering
// the literal calibration value. Alpha passes through untouched.
func (c *Context) gammaCorrect(linear core.Color) core.Color {
	return core.Color{
		R: gammaChannel(linear.R, c.GammaExponent, c.GammaOffset),
		G: gammaChannel(linear.G, c.GammaExponent, c.GammaOffset),
		B: gammaChannel(linear.B, c.GammaExponent, c.GammaOffset),
		A: linear.A,
	}
}

func gammaChannel(v, exponent, offset float32) float32 {
	base := float64(v)
	if base < 0 {
		base = 0
	}
	corrected := stdmath.Pow(base, float64(exponent)) + float64(offset)
	return float32(corrected / 255)
}
