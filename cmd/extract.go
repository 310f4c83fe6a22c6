package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/autopalette/internal/palette"
	"github.com/AnyUserName/autopalette/internal/preset"
	"github.com/AnyUserName/autopalette/internal/rgbabuf"
	"github.com/AnyUserName/autopalette/internal/swatchimg"
	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	extractPreset   string
	extractCutoff   float64
	extractStripOut string
)

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a color palette from a single image",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractPreset, "preset", "p", "balanced", fmt.Sprintf("extraction preset (%v)", preset.Names()))
	extractCmd.Flags().Float64Var(&extractCutoff, "cutoff", 0, "drop swatches at or below this percentage (0 disables)")
	extractCmd.Flags().StringVar(&extractStripOut, "strip-out", "", "write a palette strip image to this path (.png or .jpg)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	logVerbose("decoded %s as %s", path, format)

	pixels, width, height := rgbabuf.Build(img)
	if width == 0 || height == 0 {
		return fmt.Errorf("%s decoded to an empty image", path)
	}
	logVerbose("clustering at %dx%d", width, height)

	opts := preset.Get(extractPreset)
	opts.PercentageCutoff = extractCutoff

	swatches, err := palette.Extract(pixels, width, height, opts)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	printSwatches(swatches)

	if extractStripOut != "" {
		if err := writeStrip(swatches, extractStripOut); err != nil {
			return fmt.Errorf("write strip: %w", err)
		}
		logVerbose("wrote strip image to %s", extractStripOut)
	}
	return nil
}

func printSwatches(swatches []palette.Swatch) {
	fmt.Println()
	fmt.Printf("  %-9s  %-12s  %s\n", "color", "position", "percentage")
	for _, s := range swatches {
		fmt.Printf("  #%02x%02x%02x    (%4d,%4d)    %6.2f%%\n",
			s.Color[0], s.Color[1], s.Color[2], s.Position[0], s.Position[1], s.Percentage*100)
	}
	fmt.Println()
}

func writeStrip(swatches []palette.Swatch, path string) error {
	img := swatchimg.Render(swatches, 512)

	var data []byte
	var err error
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "jpg", "jpeg":
		data, err = swatchimg.EncodeJPEG(img, 0)
	default:
		data, err = swatchimg.EncodePNG(img)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
