package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AnyUserName/autopalette/internal/batch"
	"github.com/AnyUserName/autopalette/internal/cache"
	"github.com/AnyUserName/autopalette/internal/preset"
	"github.com/spf13/cobra"
)

var (
	batchOutDir   string
	batchPreset   string
	batchWorkers  int
	batchCacheDir string
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Extract palettes for every image in a directory and write a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./autopalette_out", "output directory for the report")
	batchCmd.Flags().StringVarP(&batchPreset, "preset", "p", "balanced", fmt.Sprintf("extraction preset (%v)", preset.Names()))
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	batchCmd.Flags().StringVar(&batchCacheDir, "cache-dir", "", "content-addressed cache directory (empty disables caching)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	var store *cache.Store
	if batchCacheDir != "" {
		store, err = cache.Open(batchCacheDir)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
	}

	opts := preset.Get(batchPreset)
	logVerbose("input:   %s", absInput)
	logVerbose("preset:  %s (min_points=%d, epsilon=%v)", batchPreset, opts.MinPoints, opts.Epsilon)

	report, err := batch.Run(batch.Config{
		InputDir:   absInput,
		PresetName: batchPreset,
		Options:    opts,
		Workers:    batchWorkers,
		Verbose:    verbose,
		Cache:      store,
	})
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	if err := ensureDir(absOutput); err != nil {
		return err
	}
	reportPath := filepath.Join(absOutput, "autopalette.report.json")
	if err := batch.WriteJSON(report, reportPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printBatchReport(report, time.Since(start))
	return nil
}

func printBatchReport(r *batch.Report, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║            autopalette batch complete             ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	s := r.Stats
	fmt.Printf("  Assets:      %d\n", s.TotalAssets)
	fmt.Printf("  Failed:      %d\n", s.TotalFailed)
	fmt.Printf("  Swatches:    %d\n", s.TotalSwatches)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}
