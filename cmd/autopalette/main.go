// Command autopalette extracts color palettes from images. It is a thin,
// optional integration shell around internal/palette: file decoding, CLI
// flags, and reporting live here; the clustering core stays a pure
// library with no knowledge of files, flags, or stdout.
package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/autopalette/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
