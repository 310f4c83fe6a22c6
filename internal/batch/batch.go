// Package batch drives palette extraction over a directory of images
// using a bounded worker pool, following the scan → parallel-process →
// aggregate-report shape this codebase otherwise uses for its image
// build pipeline.
package batch

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/autopalette/internal/cache"
	"github.com/AnyUserName/autopalette/internal/palette"
	"github.com/AnyUserName/autopalette/internal/rgbabuf"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir   string
	PresetName string
	Options    palette.Options
	Workers    int
	Verbose    bool
	Cache      *cache.Store // optional; nil disables caching
}

// Run scans cfg.InputDir, extracts a palette from every recognized
// image, and returns an aggregate Report. Per-image failures are
// collected and logged rather than aborting the run, unless every
// image failed.
func Run(cfg Config) (*Report, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	sources, err := ScanImages(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", cfg.InputDir)
	}

	results := make([]result, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[autopalette] processing: %s\n", s.Key)
			}
			results[idx] = process(s, cfg)
			if cfg.Verbose && results[idx].err == nil {
				fmt.Fprintf(os.Stderr, "[autopalette] done: %s (%d swatches)\n",
					s.Key, len(results[idx].asset.Swatches))
			}
		}(i, src)
	}
	wg.Wait()

	report := newReport(cfg.PresetName)
	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "[autopalette] error: %v\n", r.err)
			continue
		}
		report.Assets[r.key] = r.asset
	}
	if failed == len(sources) {
		return nil, fmt.Errorf("all %d images failed to process", failed)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "[autopalette] warning: %d of %d images had errors\n", failed, len(sources))
	}

	report.computeStats(failed)
	return report, nil
}

type result struct {
	key   string
	asset Asset
	err   error
}

func process(src Source, cfg Config) result {
	r := result{key: src.Key}

	f, err := os.Open(src.AbsPath)
	if err != nil {
		r.err = fmt.Errorf("open %s: %w", src.RelPath, err)
		return r
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		r.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return r
	}

	pixels, width, height := rgbabuf.Build(img)
	if width == 0 || height == 0 {
		r.err = fmt.Errorf("empty image: %s", src.RelPath)
		return r
	}

	var swatches []palette.Swatch
	if cfg.Cache != nil {
		swatches, err = cfg.Cache.ExtractCached(pixels, width, height, cfg.Options)
	} else {
		swatches, err = palette.Extract(pixels, width, height, cfg.Options)
	}
	if err != nil {
		r.err = fmt.Errorf("extract %s: %w", src.RelPath, err)
		return r
	}

	r.asset = Asset{
		Width:    int(width),
		Height:   int(height),
		Format:   src.Format,
		Swatches: swatches,
	}
	return r
}
