// Command modernposter renders the modern BHAD recruitment poster over
// an optional background photo.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/poster"
)

func main() {
	var (
		output     = flag.String("o", poster.ModernOutput, "output file")
		background = flag.String("bg", poster.DefaultBackground, "background photo (optional)")
		dpi        = flag.Float64("dpi", poster.DefaultDPI, "output resolution in dots per inch")
		verbose    = flag.Bool("v", false, "log rendering details to stderr")
	)
	flag.Parse()

	if *verbose {
		poster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := poster.RenderModern(*output, *background, poster.WithDPI(*dpi)); err != nil {
		log.Fatalf("Failed to render poster: %v", err)
	}

	fmt.Println("✅ Poster hiện đại Canva-style đã được tạo thành công: " + poster.Describe(*output))
}
