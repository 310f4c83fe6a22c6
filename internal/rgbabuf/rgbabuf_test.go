package rgbabuf

import (
	"image"
	"image/color"
	"testing"
)

func TestBuild_NRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 5, A: 255})
		}
	}

	pixels, w, h := Build(img)
	if w != 3 || h != 2 {
		t.Fatalf("expected 3x2, got %dx%d", w, h)
	}
	if len(pixels) != 3*2*4 {
		t.Fatalf("expected %d bytes, got %d", 3*2*4, len(pixels))
	}
	if pixels[0] != 0 || pixels[1] != 0 || pixels[2] != 5 || pixels[3] != 255 {
		t.Errorf("pixel(0,0) = %v", pixels[0:4])
	}
	off := (1*3 + 2) * 4
	if pixels[off] != 20 || pixels[off+1] != 10 {
		t.Errorf("pixel(2,1) = %v", pixels[off:off+4])
	}
}

func TestBuild_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 128})

	pixels, w, h := Build(img)
	if w != 2 || h != 2 {
		t.Fatalf("expected 2x2, got %dx%d", w, h)
	}
	if pixels[0] != 128 || pixels[1] != 128 || pixels[2] != 128 || pixels[3] != 255 {
		t.Errorf("pixel(0,0) = %v", pixels[0:4])
	}
}

func TestBuild_DownsizesLargeImages(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1000, 500))
	_, w, h := Build(img)
	if w > MaxClusterDimension || h > MaxClusterDimension {
		t.Fatalf("expected downsized dims <= %d, got %dx%d", MaxClusterDimension, w, h)
	}
	if float64(w)/float64(h) < 1.9 || float64(w)/float64(h) > 2.1 {
		t.Errorf("expected aspect ratio preserved ~2.0, got %v", float64(w)/float64(h))
	}
}

func TestBuild_EmptyImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	pixels, w, h := Build(img)
	if pixels != nil || w != 0 || h != 0 {
		t.Fatalf("expected nil/0/0 for empty image, got %v %d %d", pixels, w, h)
	}
}
