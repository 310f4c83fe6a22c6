package colorspace

// XYZ is a CIE XYZ tristimulus color under the D65 illuminant. Each
// channel is clamped to the D65 box on construction and never mutated
// afterwards.
type XYZ struct {
	X, Y, Z float64
}

// NewXYZ clamps its inputs to [0,Xn], [0,Yn] and [0,Zn].
func NewXYZ(x, y, z float64) XYZ {
	return XYZ{
		X: clamp(x, 0, whiteX),
		Y: clamp(y, 0, whiteY),
		Z: clamp(z, 0, whiteZ),
	}
}

// XYZFromSRGB implements sRGB -> linear -> XYZ using the D65 forward
// matrix from spec.md §4.D. Constants are kept to the spec's six
// significant digits; no further rounding is applied to intermediates.
func XYZFromSRGB(c SRGB) XYZ {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)

	x := 0.412391*r + 0.357584*g + 0.180481*b
	y := 0.212639*r + 0.715169*g + 0.072192*b
	z := 0.019331*r + 0.119195*g + 0.950532*b

	return NewXYZ(x, y, z)
}

// SRGBFromXYZ implements XYZ -> linear -> sRGB using the inverse matrix
// from spec.md §4.D, rounding each channel to the nearest integer in
// [0,255].
func SRGBFromXYZ(c XYZ, alpha uint8) SRGB {
	r := 3.24097*c.X - 1.537383*c.Y - 0.498611*c.Z
	g := -0.969244*c.X + 1.875968*c.Y + 0.041555*c.Z
	b := 0.05563*c.X - 0.203977*c.Y + 1.056972*c.Z

	return SRGB{
		R: roundToByte(linearToSRGB(r) * 255),
		G: roundToByte(linearToSRGB(g) * 255),
		B: roundToByte(linearToSRGB(b) * 255),
		A: alpha,
	}
}
