package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/AnyUserName/autopalette/internal/cache"
	"github.com/AnyUserName/autopalette/internal/preset"
	"github.com/AnyUserName/autopalette/internal/rgbabuf"
	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var cachePreset string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the content-addressed palette cache",
}

var cacheShowCmd = &cobra.Command{
	Use:   "show <cache_dir> <image>",
	Short: "Show the cache entry an image would hit, if any",
	Args:  cobra.ExactArgs(2),
	RunE:  runCacheShow,
}

func init() {
	cacheShowCmd.Flags().StringVarP(&cachePreset, "preset", "p", "balanced", fmt.Sprintf("extraction preset (%v)", preset.Names()))
	cacheCmd.AddCommand(cacheShowCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheShow(_ *cobra.Command, args []string) error {
	dir, path := args[0], args[1]

	store, err := cache.Open(dir)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	pixels, width, height := rgbabuf.Build(img)

	opts := preset.Get(cachePreset)
	key := cache.Key(pixels, width, height, opts)

	entry, ok, err := store.Lookup(key)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", key, err)
	}
	if !ok {
		fmt.Printf("  miss: %s (key=%s)\n", path, key)
		return nil
	}

	info, statErr := os.Stat(store.EntryPath(key))
	size := int64(0)
	if statErr == nil {
		size = info.Size()
	}

	fmt.Printf("  hit:  %s (key=%s)\n", path, key)
	fmt.Printf("  generated: %s\n", entry.GeneratedAt)
	fmt.Printf("  dims:      %dx%d\n", entry.Width, entry.Height)
	fmt.Printf("  swatches:  %d\n", len(entry.Swatches))
	fmt.Printf("  on disk:   %s\n", formatBytes(size))
	return nil
}
