package colorspace

// D65 reference tristimulus values, CIE standard daylight illuminant.
const (
	whiteX = 0.950456
	whiteY = 1.000000
	whiteZ = 1.088644
)
