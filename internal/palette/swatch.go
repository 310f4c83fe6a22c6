package palette

import "sort"

// Swatch is a summary record of one discovered cluster: its
// representative color, a representative pixel position, and the share
// of total pixels it accounts for.
type Swatch struct {
	Color      [3]uint8
	Position   [2]uint32
	Percentage float64
}

// sortSwatches orders swatches by descending percentage, breaking ties
// by ascending cluster id. It relies on the caller having already built
// swatches in ascending cluster-id order (see Extract) and sorts
// stably, so equal-percentage swatches keep that relative order instead
// of being reshuffled.
func sortSwatches(swatches []Swatch) {
	sort.SliceStable(swatches, func(i, j int) bool {
		return swatches[i].Percentage > swatches[j].Percentage
	})
}
