// Package palette assembles the per-pixel feature space, drives DBSCAN
// over it, and back-transforms the resulting clusters into an ordered
// list of color swatches, per spec.md §4.G.
package palette

import (
	"math"
	"sort"

	"github.com/AnyUserName/autopalette/internal/colorspace"
	"github.com/AnyUserName/autopalette/internal/dbscan"
	"github.com/AnyUserName/autopalette/internal/vector"
)

// Extract builds a feature point per pixel from a row-major RGBA8 buffer,
// clusters them with DBSCAN, and returns one Swatch per cluster, sorted
// by descending percentage. len(pixels) must equal 4*width*height.
//
// The open question on alpha handling (spec.md §9) is resolved by
// Options.IncludeTransparent: by default transparent pixels still
// contribute their RGB to the feature set; set it false to drop them
// from clustering entirely.
func Extract(pixels []byte, width, height uint32, opts Options) ([]Swatch, error) {
	if verr := opts.validate(); verr != nil {
		return nil, verr
	}
	if width == 0 || height == 0 {
		return nil, newError(InvalidDimensions, "width and height must both be > 0, got %dx%d", width, height)
	}
	want := 4 * uint64(width) * uint64(height)
	if uint64(len(pixels)) != want {
		return nil, newError(InvalidDimensions, "buffer length %d does not match 4*width*height (%d)", len(pixels), want)
	}

	dataset, err := buildFeatures(pixels, width, height, opts.IncludeTransparent)
	if err != nil {
		return nil, err
	}
	if len(dataset) == 0 {
		return []Swatch{}, nil
	}

	result, ferr := dbscan.Fit(dataset, dbscan.Params[float64]{
		MinPoints: opts.MinPoints,
		Epsilon:   opts.Epsilon,
		Distance:  opts.Distance,
	})
	if ferr != nil {
		return nil, newError(InvalidParameter, "%w", ferr)
	}

	// result.Centroids is a map; range order over it is randomized per the
	// language spec, so cluster ids are collected and sorted first. This is
	// what makes sortSwatches's stable tie-break on equal percentages
	// actually resolve to ascending cluster id, per spec.md §4.G step 5,
	// instead of whatever order the map iterator happened to produce.
	clusterIDs := make([]int, 0, len(result.Centroids))
	for clusterID := range result.Centroids {
		clusterIDs = append(clusterIDs, clusterID)
	}
	sort.Ints(clusterIDs)

	swatches := make([]Swatch, 0, len(clusterIDs))
	total := float64(len(dataset))
	for _, clusterID := range clusterIDs {
		swatch, serr := backTransform(result.Centroids[clusterID], width, height, len(result.Membership[clusterID]), total)
		if serr != nil {
			return nil, serr
		}
		swatches = append(swatches, swatch)
	}

	sortSwatches(swatches)
	return applyCutoff(swatches, opts.PercentageCutoff), nil
}

func buildFeatures(pixels []byte, width, height uint32, includeTransparent bool) ([]vector.Point[float64], error) {
	n := int(width) * int(height)
	dataset := make([]vector.Point[float64], 0, n)

	w, h := float64(width), float64(height)
	for p := 0; p < n; p++ {
		off := p * 4
		r, g, b, a := pixels[off], pixels[off+1], pixels[off+2], pixels[off+3]
		if a == 0 && !includeTransparent {
			continue
		}

		lab := colorspace.LabFromSRGB(colorspace.NewSRGB(r, g, b, a))
		x := p % int(width)
		y := p / int(width)

		point := vector.New5(
			lab.L/100.0,
			lab.A/255.0,
			lab.B/255.0,
			float64(x)/w,
			float64(y)/h,
		)
		for i := 0; i < point.Dim(); i++ {
			if math.IsNaN(point.At(i)) || math.IsInf(point.At(i), 0) {
				return nil, newError(NumericDomain, "non-finite feature coordinate at pixel %d", p)
			}
		}

		dataset = append(dataset, point)
	}
	return dataset, nil
}

func backTransform(centroid vector.Point[float64], width, height uint32, memberCount int, total float64) (Swatch, error) {
	lab := colorspace.NewLab(centroid.At(0)*100.0, centroid.At(1)*255.0, centroid.At(2)*255.0)
	srgb := colorspace.SRGBFromLab(lab, 255)

	u, v := centroid.At(3), centroid.At(4)
	if math.IsNaN(u) || math.IsNaN(v) {
		return Swatch{}, newError(NumericDomain, "non-finite centroid position")
	}
	x := saturateToPixel(u*float64(width), width)
	y := saturateToPixel(v*float64(height), height)

	return Swatch{
		Color:      [3]uint8{srgb.R, srgb.G, srgb.B},
		Position:   [2]uint32{x, y},
		Percentage: float64(memberCount) / total,
	}, nil
}

func saturateToPixel(v float64, max uint32) uint32 {
	if v < 0 {
		return 0
	}
	r := math.Round(v)
	if r >= float64(max) {
		return max - 1
	}
	return uint32(r)
}

func applyCutoff(swatches []Swatch, cutoff float64) []Swatch {
	if cutoff <= 0 {
		return swatches
	}
	out := swatches[:0]
	for _, s := range swatches {
		if s.Percentage > cutoff {
			out = append(out, s)
		}
	}
	return out
}
