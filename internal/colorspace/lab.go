package colorspace

const (
	labEpsilon = 216.0 / 24389.0 // (6/29)^3
	labKappa   = 841.0 / 108.0   // ((29/6)^2) / 3
	labDelta   = 4.0 / 29.0
)

// Lab is a CIE L*a*b* color. L* in [0,100], a*/b* in [-128,127]; values
// outside those ranges are clamped on construction.
type Lab struct {
	L, A, B float64
}

// NewLab clamps its inputs to the perceptual ranges spec.md §3 defines.
func NewLab(l, a, b float64) Lab {
	return Lab{
		L: clamp(l, 0, 100),
		A: clamp(a, -128, 127),
		B: clamp(b, -128, 127),
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return cbrt(t)
	}
	return labKappa*t + labDelta
}

func labFInverse(t float64) float64 {
	if t > 6.0/29.0 {
		return t * t * t
	}
	return (108.0 / 841.0) * (t - labDelta)
}

// LabFromXYZ implements XYZ -> L*a*b* under D65, per spec.md §4.D.
func LabFromXYZ(c XYZ) Lab {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)

	l := 116*fy - 16
	a := 500 * (fx - fy)
	b := 200 * (fy - fz)
	return NewLab(l, a, b)
}

// XYZFromLab implements L*a*b* -> XYZ under D65, the inverse of
// LabFromXYZ, per spec.md §4.D.
func XYZFromLab(c Lab) XYZ {
	l := (c.L + 16) / 116
	a := c.A / 500
	b := c.B / 200

	x := whiteX * labFInverse(l+a)
	y := whiteY * labFInverse(l)
	z := whiteZ * labFInverse(l-b)
	return NewXYZ(x, y, z)
}
