package swatchimg

import (
	"image/color"
	"testing"

	"github.com/AnyUserName/autopalette/internal/palette"
)

func TestRender_ProportionalBands(t *testing.T) {
	swatches := []palette.Swatch{
		{Color: [3]uint8{255, 0, 0}, Percentage: 0.75},
		{Color: [3]uint8{0, 0, 255}, Percentage: 0.25},
	}
	img := Render(swatches, 100)

	c := img.At(10, 0).(color.NRGBA)
	if c.R != 255 || c.B != 0 {
		t.Errorf("expected red band near x=10, got %+v", c)
	}
	c = img.At(90, 0).(color.NRGBA)
	if c.B != 255 {
		t.Errorf("expected blue band near x=90, got %+v", c)
	}
}

func TestRender_EmptySwatches(t *testing.T) {
	img := Render(nil, 50)
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != StripHeight {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestEncodePNG_ProducesValidHeader(t *testing.T) {
	img := Render([]palette.Swatch{{Color: [3]uint8{1, 2, 3}, Percentage: 1}}, 16)
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if len(data) < 4 || string(data[:4]) != string(pngMagic) {
		t.Fatalf("expected PNG magic bytes, got %v", data[:4])
	}
}

func TestEncodeJPEG_ProducesValidHeader(t *testing.T) {
	img := Render([]palette.Swatch{{Color: [3]uint8{1, 2, 3}, Percentage: 1}}, 16)
	data, err := EncodeJPEG(img, 0)
	if err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Fatalf("expected JPEG SOI marker, got %v", data[:2])
	}
}
