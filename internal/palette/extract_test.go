package palette

import (
	"math"
	"testing"
)

func solidImage(r, g, b, a uint8, width, height uint32) []byte {
	buf := make([]byte, 4*int(width)*int(height))
	for i := 0; i < len(buf); i += 4 {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = r, g, b, a
	}
	return buf
}

func TestExtract_SolidBlack(t *testing.T) {
	opts := DefaultOptions()
	opts.MinPoints = 4
	opts.Epsilon = 0.5 // default epsilon assumes far denser images than an 8x8 fixture
	buf := solidImage(0, 0, 0, 255, 8, 8)

	swatches, err := Extract(buf, 8, 8, opts)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(swatches) != 1 {
		t.Fatalf("expected exactly one swatch for a solid image, got %d", len(swatches))
	}
	s := swatches[0]
	if s.Color != [3]uint8{0, 0, 0} {
		t.Errorf("expected black swatch, got %v", s.Color)
	}
	if s.Percentage < 0.999 {
		t.Errorf("expected percentage ~1.0, got %v", s.Percentage)
	}
}

func TestExtract_SolidWhite(t *testing.T) {
	opts := DefaultOptions()
	opts.MinPoints = 4
	opts.Epsilon = 0.5
	buf := solidImage(255, 255, 255, 255, 8, 8)

	swatches, err := Extract(buf, 8, 8, opts)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(swatches) != 1 {
		t.Fatalf("expected exactly one swatch, got %d", len(swatches))
	}
	if swatches[0].Color != [3]uint8{255, 255, 255} {
		t.Errorf("expected white swatch, got %v", swatches[0].Color)
	}
}

func TestExtract_TwoColorSplit(t *testing.T) {
	const width, height = 16, 16
	buf := make([]byte, 4*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := (y*width + x) * 4
			if x < width/2 {
				buf[off], buf[off+1], buf[off+2], buf[off+3] = 0, 0, 255, 255
			} else {
				buf[off], buf[off+1], buf[off+2], buf[off+3] = 255, 255, 255, 255
			}
		}
	}

	opts := DefaultOptions()
	opts.MinPoints = 4
	opts.Epsilon = 0.2
	swatches, err := Extract(buf, width, height, opts)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	var kept []Swatch
	for _, s := range swatches {
		if s.Percentage > 0.05 {
			kept = append(kept, s)
		}
	}
	if len(kept) != 2 {
		t.Fatalf("expected 2 swatches above cutoff, got %d: %+v", len(kept), swatches)
	}
	if kept[0].Percentage < kept[1].Percentage {
		t.Errorf("expected descending percentage order, got %v then %v", kept[0].Percentage, kept[1].Percentage)
	}
}

func TestExtract_TwoColorSplitIsDeterministic(t *testing.T) {
	const width, height = 16, 16
	buf := make([]byte, 4*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := (y*width + x) * 4
			if x < width/2 {
				buf[off], buf[off+1], buf[off+2], buf[off+3] = 0, 0, 255, 255
			} else {
				buf[off], buf[off+1], buf[off+2], buf[off+3] = 255, 255, 255, 255
			}
		}
	}

	opts := DefaultOptions()
	opts.MinPoints = 4
	opts.Epsilon = 0.2

	var want []Swatch
	for i := 0; i < 20; i++ {
		swatches, err := Extract(buf, width, height, opts)
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if want == nil {
			want = swatches
			continue
		}
		if len(swatches) != len(want) {
			t.Fatalf("run %d: got %d swatches, want %d", i, len(swatches), len(want))
		}
		for j := range want {
			if swatches[j].Color != want[j].Color {
				t.Fatalf("run %d: swatch %d color = %v, want %v (equal-percentage clusters must tie-break deterministically)", i, j, swatches[j].Color, want[j].Color)
			}
		}
	}
}

func TestExtract_RejectsNaNEpsilon(t *testing.T) {
	opts := DefaultOptions()
	opts.Epsilon = math.NaN()
	buf := solidImage(0, 0, 0, 255, 4, 4)
	if _, err := Extract(buf, 4, 4, opts); err == nil {
		t.Fatal("expected error for NaN epsilon")
	}
}

func TestExtract_RejectsBadDimensions(t *testing.T) {
	opts := DefaultOptions()
	if _, err := Extract(make([]byte, 10), 4, 4, opts); err == nil {
		t.Fatal("expected error for mismatched buffer length")
	}
	if _, err := Extract(make([]byte, 0), 0, 0, opts); err == nil {
		t.Fatal("expected error for zero dimensions")
	}
}

func TestExtract_RejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.MinPoints = 0
	buf := solidImage(0, 0, 0, 255, 4, 4)
	if _, err := Extract(buf, 4, 4, opts); err == nil {
		t.Fatal("expected error for MinPoints=0")
	}
}

func TestExtract_EmptyWhenAllTransparentAndExcluded(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeTransparent = false
	buf := solidImage(10, 20, 30, 0, 4, 4)

	swatches, err := Extract(buf, 4, 4, opts)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(swatches) != 0 {
		t.Fatalf("expected no swatches when every pixel is excluded, got %d", len(swatches))
	}
}
