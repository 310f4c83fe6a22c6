// Package swatchimg renders a palette as a horizontal strip image, one
// band per swatch sized proportional to its percentage. Its encoders are
// adapted directly from this codebase's PNG/JPEG encoder wrappers,
// without the pluggable registry those wrappers originally sat behind
// (swatchimg only ever needs these two, so the registry's format
// dispatch and availability probing had no remaining caller).
package swatchimg

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/AnyUserName/autopalette/internal/palette"
)

// StripHeight is the fixed height, in pixels, of a rendered strip.
const StripHeight = 64

// Render draws swatches left-to-right in the order given, each band's
// width proportional to its Percentage, filling the full width pixels
// wide. Swatches with zero total percentage produce a single band
// spanning the full width in the last swatch's color, or a blank
// image if swatches is empty.
func Render(swatches []palette.Swatch, width int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, StripHeight))
	if len(swatches) == 0 || width <= 0 {
		return img
	}

	total := 0.0
	for _, s := range swatches {
		total += s.Percentage
	}
	if total <= 0 {
		total = 1.0
	}

	x := 0
	for i, s := range swatches {
		bandWidth := int(s.Percentage / total * float64(width))
		if i == len(swatches)-1 {
			bandWidth = width - x // last band absorbs rounding remainder
		}
		if bandWidth < 0 {
			bandWidth = 0
		}
		fillBand(img, x, bandWidth, s.Color)
		x += bandWidth
	}
	return img
}

func fillBand(img *image.NRGBA, x0, width int, c [3]uint8) {
	if width <= 0 {
		return
	}
	col := color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
	for y := 0; y < StripHeight; y++ {
		for x := x0; x < x0+width && x < img.Rect.Dx(); x++ {
			img.SetNRGBA(x, y, col)
		}
	}
}

// EncodePNG encodes img as PNG, using best compression.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJPEG encodes img as JPEG at quality (1-100; out-of-range falls
// back to 82).
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = 82
	}
	var buf bytes.Buffer
	buf.Grow(64 * 1024)
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
