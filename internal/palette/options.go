package palette

import (
	"math"

	"github.com/AnyUserName/autopalette/internal/distance"
)

// Options configures Extract. The zero value is not directly usable;
// construct via DefaultOptions and override individual fields.
type Options struct {
	// MinPoints is the DBSCAN density threshold. Recommended default: 25.
	MinPoints int

	// Epsilon is the DBSCAN neighborhood radius in the normalized 5-D
	// feature space. Recommended default: 0.025. This value is empirical,
	// not auto-tuned; internal/preset offers named alternatives.
	Epsilon float64

	// Distance is the measure used for both the neighborhood radius and
	// the k-d tree it is evaluated against. Defaults to Euclidean; if set
	// to SquaredEuclidean, Epsilon must already be squared by the caller.
	Distance distance.Measure[float64]

	// PercentageCutoff drops swatches whose percentage is at or below this
	// fraction after sorting. Zero (the default) disables filtering; this
	// is a caller-side convenience, not part of the clustering contract.
	PercentageCutoff float64

	// IncludeTransparent controls whether pixels with alpha == 0 still
	// contribute their RGB to the feature set. Defaults to true: the
	// pipeline treats alpha as ignored rather than as a clustering
	// weight, matching the non-goal in §1. Set false to exclude fully
	// transparent pixels from clustering entirely.
	IncludeTransparent bool
}

// DefaultOptions returns the recommended configuration: min_points=25,
// epsilon=0.025, Euclidean distance, no percentage cutoff, transparent
// pixels included.
func DefaultOptions() Options {
	return Options{
		MinPoints:          25,
		Epsilon:            0.025,
		Distance:           distance.Euclidean[float64]{},
		PercentageCutoff:   0,
		IncludeTransparent: true,
	}
}

func (o Options) validate() *Error {
	if o.MinPoints < 1 {
		return newError(InvalidParameter, "min points must be >= 1, got %d", o.MinPoints)
	}
	if math.IsNaN(o.Epsilon) {
		return newError(InvalidParameter, "epsilon must not be NaN")
	}
	if o.Epsilon <= 0 {
		return newError(InvalidParameter, "epsilon must be > 0, got %v", o.Epsilon)
	}
	if o.Distance == nil {
		return newError(InvalidParameter, "distance measure must not be nil")
	}
	if o.PercentageCutoff < 0 || o.PercentageCutoff >= 1 {
		return newError(InvalidParameter, "percentage cutoff must be in [0,1), got %v", o.PercentageCutoff)
	}
	return nil
}
