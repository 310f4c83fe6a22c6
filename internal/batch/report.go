package batch

import (
	"encoding/json"
	"os"
	"time"

	"github.com/AnyUserName/autopalette/internal/palette"
)

// SupportedReportVersion is the current on-disk schema version.
const SupportedReportVersion = 1

// Report is the aggregate output of a batch run: one asset entry per
// successfully processed image, plus run-wide stats.
type Report struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Preset      string           `json:"preset"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// Asset is one image's extracted palette.
type Asset struct {
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Format   string           `json:"format"`
	Swatches []palette.Swatch `json:"swatches"`
}

// Stats aggregates run metrics.
type Stats struct {
	TotalAssets  int `json:"total_assets"`
	TotalFailed  int `json:"total_failed"`
	TotalSwatches int `json:"total_swatches"`
}

// newReport creates an empty report.
func newReport(presetName string) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Preset:      presetName,
		Assets:      make(map[string]Asset),
	}
}

func (r *Report) computeStats(failed int) {
	var s Stats
	s.TotalAssets = len(r.Assets)
	s.TotalFailed = failed
	for _, a := range r.Assets {
		s.TotalSwatches += len(a.Swatches)
	}
	r.Stats = s
}

// WriteJSON serializes the report to path with stable field ordering and
// a trailing newline.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
