package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "autopalette",
	Short: "Perceptual color palette extraction for raster images",
	Long: `autopalette — extracts a small, ordered set of representative color
swatches from an image using density-based clustering in CIE L*a*b* space.

Each swatch carries a representative RGB color, a representative pixel
position, and the share of pixels it stands for — useful for palette
generation, thumbnail theming, or image-search signatures.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"autopalette %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[autopalette] "+format+"\n", args...)
	}
}
