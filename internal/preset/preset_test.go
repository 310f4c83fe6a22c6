package preset

import "testing"

func TestGet_KnownPresets(t *testing.T) {
	for _, name := range Names() {
		opts := Get(name)
		if opts.MinPoints < 1 {
			t.Errorf("%s: MinPoints = %d, want >= 1", name, opts.MinPoints)
		}
		if opts.Epsilon <= 0 {
			t.Errorf("%s: Epsilon = %v, want > 0", name, opts.Epsilon)
		}
		if opts.Distance == nil {
			t.Errorf("%s: Distance is nil", name)
		}
	}
}

func TestGet_UnknownFallsBackToDefaults(t *testing.T) {
	got := Get("nonexistent")
	want := Get("balanced")
	if got.MinPoints != want.MinPoints || got.Epsilon != want.Epsilon {
		t.Errorf("expected fallback to balanced defaults, got %+v", got)
	}
}
