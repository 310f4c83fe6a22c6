package colorspace

// LabFromSRGB is the forward pipeline sRGB -> XYZ -> L*a*b*.
func LabFromSRGB(c SRGB) Lab {
	return LabFromXYZ(XYZFromSRGB(c))
}

// SRGBFromLab is the inverse pipeline L*a*b* -> XYZ -> sRGB.
func SRGBFromLab(c Lab, alpha uint8) SRGB {
	return SRGBFromXYZ(XYZFromLab(c), alpha)
}
