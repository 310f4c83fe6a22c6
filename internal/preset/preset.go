// Package preset defines named palette.Options bundles for common
// extraction trade-offs, following the named-profile lookup pattern
// this codebase otherwise uses for image-resize targets.
package preset

import (
	"github.com/AnyUserName/autopalette/internal/distance"
	"github.com/AnyUserName/autopalette/internal/palette"
)

// Built-in presets, trading cluster granularity against extraction cost.
var presets = map[string]palette.Options{
	"fast": {
		MinPoints:          40,
		Epsilon:            0.04,
		Distance:           distance.Euclidean[float64]{},
		IncludeTransparent: true,
	},
	"balanced": {
		MinPoints:          25,
		Epsilon:            0.025,
		Distance:           distance.Euclidean[float64]{},
		IncludeTransparent: true,
	},
	"fine": {
		MinPoints:          12,
		Epsilon:            0.015,
		Distance:           distance.Euclidean[float64]{},
		IncludeTransparent: true,
	},
}

// Get returns the named preset. An unknown name falls back to
// "balanced", the recommended defaults from palette.DefaultOptions.
func Get(name string) palette.Options {
	if o, ok := presets[name]; ok {
		return o
	}
	return palette.DefaultOptions()
}

// Names returns all preset names in a fixed, stable order.
func Names() []string {
	return []string{"fast", "balanced", "fine"}
}
