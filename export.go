package poster

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

// pngHeaderLen covers the PNG signature and the complete IHDR chunk,
// which the encoder always writes first.
const pngHeaderLen = 8 + 4 + 4 + 13 + 4

// cropTolerance is the per-channel difference (0-255) below which a
// pixel counts as background.
const cropTolerance = 2

// CropToContent returns the smallest rectangle holding every pixel that
// differs from bg, grown by pad pixels and clipped to the image. An image
// with no content keeps its full bounds.
func CropToContent(img image.Image, bg gg.RGBA, pad int) image.Rectangle {
	full := img.Bounds()
	br, bgc, bb, _ := bg.Color().RGBA()
	ref := [3]uint8{uint8(br >> 8), uint8(bgc >> 8), uint8(bb >> 8)}

	pixel := func(x, y int) [3]uint8 {
		r, g, b, _ := img.At(x, y).RGBA()
		return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
	if rgba, ok := img.(*image.RGBA); ok {
		pixel = func(x, y int) [3]uint8 {
			i := rgba.PixOffset(x, y)
			return [3]uint8{rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2]}
		}
	}

	minX, minY, maxX, maxY := full.Max.X, full.Max.Y, full.Min.X-1, full.Min.Y-1
	for y := full.Min.Y; y < full.Max.Y; y++ {
		for x := full.Min.X; x < full.Max.X; x++ {
			if !differs(pixel(x, y), ref) {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return full
	}
	return image.Rect(minX, minY, maxX+1, maxY+1).Inset(-pad).Intersect(full)
}

func differs(p, ref [3]uint8) bool {
	for i := range p {
		if absDiff(p[i], ref[i]) > cropTolerance {
			return true
		}
	}
	return false
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// flatten copies rect of img onto an opaque bg-colored image, so the
// encoder writes an RGB PNG.
func flatten(img image.Image, rect image.Rectangle, bg gg.RGBA) *image.NRGBA {
	opaque := bg
	opaque.A = 1
	dst := imaging.New(rect.Dx(), rect.Dy(), opaque.Color())
	return imaging.Overlay(dst, imaging.Crop(img, rect), image.Pt(0, 0), 1.0)
}

// physChunk builds a pHYs chunk declaring dpi in pixels per meter.
func physChunk(dpi float64) []byte {
	ppm := uint32(math.Round(dpi / 0.0254))
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: meter
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}

// EncodePNG writes img as PNG with a pHYs chunk carrying dpi.
func EncodePNG(w io.Writer, img image.Image, dpi float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("poster: encode png: %w", err)
	}
	data := buf.Bytes()
	for _, part := range [][]byte{data[:pngHeaderLen], physChunk(dpi), data[pngHeaderLen:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("poster: write png: %w", err)
		}
	}
	return nil
}

// EncodePNG rasterizes the page and writes it to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	img, err := c.Image()
	if err != nil {
		return err
	}
	return EncodePNG(w, img, c.dpi)
}

// SavePNG rasterizes the page and writes it to path, replacing any
// existing file.
func (c *Canvas) SavePNG(path string) (err error) {
	img, err := c.Image()
	if err != nil {
		return err
	}

	// #nosec G304 -- output path is provided by the caller
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("poster: create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("poster: close output: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := EncodePNG(bw, img, c.dpi); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("poster: write png: %w", err)
	}

	b := img.Bounds()
	Logger().Info("poster: saved", "path", path, "width", b.Dx(), "height", b.Dy(), "dpi", c.dpi)
	return nil
}
