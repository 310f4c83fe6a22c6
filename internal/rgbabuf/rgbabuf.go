// Package rgbabuf converts a decoded image.Image into the packed,
// row-major RGBA8 byte buffer that internal/palette.Extract consumes.
// Its per-type fast paths (NRGBA, RGBA, Gray) are adapted from
// the pixel-extraction switch used to feed the color-averaging hot loop
// in this codebase's thumbnail placeholder generator, without the
// downsample or DCT stages that algorithm also performs. Every other
// image type, YCbCr included, goes through the generic per-pixel path.
package rgbabuf

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// MaxClusterDimension bounds the longer side of an image before
// clustering. DBSCAN's neighborhood queries are near-linear in pixel
// count but clustering a multi-megapixel photo at full resolution buys
// no perceptual precision beyond what a few hundred pixels per side
// already gives the L*a*b* feature space; downsizing first keeps
// extraction fast without materially changing the swatches found.
const MaxClusterDimension = 256

// Build returns a packed RGBA8 buffer, plus the width/height it was
// built at, for img. If either source dimension exceeds
// MaxClusterDimension, img is downsized first (preserving aspect
// ratio) via Lanczos resampling.
func Build(img image.Image) (pixels []byte, width, height uint32) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, 0, 0
	}

	if srcW > MaxClusterDimension || srcH > MaxClusterDimension {
		if srcW >= srcH {
			img = imaging.Resize(img, MaxClusterDimension, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, MaxClusterDimension, imaging.Lanczos)
		}
		bounds = img.Bounds()
		srcW, srcH = bounds.Dx(), bounds.Dy()
	}

	buf := make([]byte, srcW*srcH*4)
	extract(img, bounds, srcW, srcH, buf)
	return buf, uint32(srcW), uint32(srcH)
}

func extract(img image.Image, bounds image.Rectangle, w, h int, rgba []byte) {
	switch src := img.(type) {
	case *image.NRGBA:
		extractNRGBA(src, bounds, w, h, rgba)
	case *image.RGBA:
		extractRGBA(src, bounds, w, h, rgba)
	case *image.Gray:
		extractGray(src, bounds, w, h, rgba)
	default:
		extractGeneric(img, bounds, w, h, rgba)
	}
}

func extractNRGBA(src *image.NRGBA, bounds image.Rectangle, w, h int, rgba []byte) {
	pix := src.Pix
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX4 := (bounds.Min.X - src.Rect.Min.X) * 4
	di := 0
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX4
		copy(rgba[di:di+w*4], pix[off:off+w*4])
		di += w * 4
	}
}

func extractRGBA(src *image.RGBA, bounds image.Rectangle, w, h int, rgba []byte) {
	pix := src.Pix
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX4 := (bounds.Min.X - src.Rect.Min.X) * 4
	di := 0
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX4
		for x := 0; x < w; x++ {
			a := pix[off+3]
			if a > 0 && a < 255 {
				rgba[di] = uint8(uint16(pix[off]) * 255 / uint16(a))
				rgba[di+1] = uint8(uint16(pix[off+1]) * 255 / uint16(a))
				rgba[di+2] = uint8(uint16(pix[off+2]) * 255 / uint16(a))
			} else {
				rgba[di] = pix[off]
				rgba[di+1] = pix[off+1]
				rgba[di+2] = pix[off+2]
			}
			rgba[di+3] = a
			off += 4
			di += 4
		}
	}
}

func extractGray(src *image.Gray, bounds image.Rectangle, w, h int, rgba []byte) {
	pix := src.Pix
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX := bounds.Min.X - src.Rect.Min.X
	di := 0
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX
		for x := 0; x < w; x++ {
			v := pix[off+x]
			rgba[di], rgba[di+1], rgba[di+2], rgba[di+3] = v, v, v, 255
			di += 4
		}
	}
}

func extractGeneric(img image.Image, bounds image.Rectangle, w, h int, rgba []byte) {
	di := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			rgba[di], rgba[di+1], rgba[di+2], rgba[di+3] = c.R, c.G, c.B, c.A
			di += 4
		}
	}
}
