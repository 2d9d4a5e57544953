// Command poster renders the plain BHAD recruitment poster.
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
		output  = flag.String("o", poster.PlainOutput, "output file")
		dpi     = flag.Float64("dpi", poster.DefaultDPI, "output resolution in dots per inch")
		verbose = flag.Bool("v", false, "log rendering details to stderr")
	)
	flag.Parse()

	if *verbose {
		poster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := poster.RenderPlain(*output, poster.WithDPI(*dpi)); err != nil {
		log.Fatalf("Failed to render poster: %v", err)
	}

	fmt.Println("✅ Poster đã được tạo thành công: " + poster.Describe(*output))
}
