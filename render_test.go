package poster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testDPI keeps rasterization fast while preserving the page proportions.
const testDPI = 20

// testOptions renders at testDPI with an empty font directory, so only
// the embedded fonts are used and results do not depend on the host.
func testOptions(t *testing.T, extra ...RenderOption) []RenderOption {
	t.Helper()
	return append([]RenderOption{WithDPI(testDPI), WithFontDirs(t.TempDir())}, extra...)
}

func decodePNGFile(t *testing.T, path string) (image.Image, []byte) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if len(data) == 0 {
		t.Fatalf("%s is empty", path)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img, data
}

// readPHYs returns the pixels-per-unit and unit byte of the first pHYs chunk.
func readPHYs(t *testing.T, data []byte) (ppm uint32, unit byte) {
	t.Helper()
	for off := 8; off+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		if typ == "pHYs" {
			body := data[off+8 : off+8+n]
			return binary.BigEndian.Uint32(body[0:4]), body[8]
		}
		if typ == "IDAT" {
			break
		}
		off += 12 + n
	}
	t.Fatal("no pHYs chunk before image data")
	return 0, 0
}

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: 120, B: uint8(y * 255 / h), A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

func TestRenderPlain(t *testing.T) {
	out := filepath.Join(t.TempDir(), PlainOutput)
	if err := RenderPlain(out, testOptions(t)...); err != nil {
		t.Fatalf("RenderPlain() = %v", err)
	}

	img, data := decodePNGFile(t, out)
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Fatalf("empty image %v", b)
	}
	if b.Dx() > PageWidthInches*testDPI || b.Dy() > PageHeightInches*testDPI {
		t.Errorf("cropped size %dx%d exceeds page %dx%d", b.Dx(), b.Dy(),
			int(PageWidthInches*testDPI), int(PageHeightInches*testDPI))
	}

	ppm, unit := readPHYs(t, data)
	if unit != 1 {
		t.Errorf("pHYs unit = %d, want 1 (meter)", unit)
	}
	if got := float64(ppm) * 0.0254; math.Abs(got-testDPI) > 0.05 {
		t.Errorf("pHYs density = %.2f dpi, want %d", got, testDPI)
	}
}

func TestRenderWithoutCropKeepsPageSize(t *testing.T) {
	for _, dpi := range []float64{12, 30} {
		out := filepath.Join(t.TempDir(), "full.png")
		err := RenderPlain(out, testOptions(t, WithDPI(dpi), WithoutCrop())...)
		if err != nil {
			t.Fatalf("dpi %v: RenderPlain() = %v", dpi, err)
		}
		img, _ := decodePNGFile(t, out)
		wantW, wantH := int(PageWidthInches*dpi), int(PageHeightInches*dpi)
		if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
			t.Errorf("dpi %v: size = %dx%d, want %dx%d", dpi, b.Dx(), b.Dy(), wantW, wantH)
		}
	}
}

func TestRenderModernBackgrounds(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "photo.jpg")
	writeJPEG(t, valid, 64, 48)

	corrupt := filepath.Join(dir, "corrupt.jpg")
	if err := os.WriteFile(corrupt, []byte("definitely not a jpeg"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		bg   string
	}{
		{"valid", valid},
		{"missing", filepath.Join(dir, "nope.jpg")},
		{"corrupt", corrupt},
		{"empty path", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), ModernOutput)
			if err := RenderModern(out, tt.bg, testOptions(t)...); err != nil {
				t.Fatalf("RenderModern() = %v", err)
			}
			img, _ := decodePNGFile(t, out)
			if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
				t.Errorf("empty image %v", b)
			}
		})
	}
}

func TestRenderModernPhotoChangesOutput(t *testing.T) {
	dir := t.TempDir()
	photo := filepath.Join(dir, "photo.jpg")
	writeJPEG(t, photo, 64, 48)

	with := filepath.Join(dir, "with.png")
	without := filepath.Join(dir, "without.png")
	if err := RenderModern(with, photo, testOptions(t, WithoutCrop())...); err != nil {
		t.Fatal(err)
	}
	if err := RenderModern(without, filepath.Join(dir, "missing.jpg"), testOptions(t, WithoutCrop())...); err != nil {
		t.Fatal(err)
	}

	a, _ := decodePNGFile(t, with)
	b, _ := decodePNGFile(t, without)
	if a.Bounds() != b.Bounds() {
		t.Fatalf("bounds differ: %v vs %v", a.Bounds(), b.Bounds())
	}

	// Top-left corner of the photo band, clear of every card.
	x, y := 1, a.Bounds().Dy()/4
	r1, g1, b1, _ := a.At(x, y).RGBA()
	r2, g2, b2, _ := b.At(x, y).RGBA()
	if r1 == r2 && g1 == g2 && b1 == b2 {
		t.Errorf("pixel (%d,%d) identical with and without photo", x, y)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	var sizes [2]image.Rectangle
	for i := range sizes {
		out := filepath.Join(dir, "again.png")
		if err := RenderPlain(out, testOptions(t)...); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		img, _ := decodePNGFile(t, out)
		sizes[i] = img.Bounds()
	}
	if sizes[0] != sizes[1] {
		t.Errorf("repeated renders differ: %v vs %v", sizes[0], sizes[1])
	}
}

func TestRenderInvalidDPI(t *testing.T) {
	for _, dpi := range []float64{0, -72, math.NaN(), math.Inf(1)} {
		out := filepath.Join(t.TempDir(), "bad.png")
		err := RenderPlain(out, WithDPI(dpi))
		if !errors.Is(err, ErrInvalidDPI) {
			t.Errorf("dpi %v: err = %v, want ErrInvalidDPI", dpi, err)
		}
		if _, statErr := os.Stat(out); statErr == nil {
			t.Errorf("dpi %v: output written despite error", dpi)
		}
	}
}

func TestRenderMissingFontFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nofont.ttf")
	err := RenderPlain(filepath.Join(t.TempDir(), "x.png"),
		testOptions(t, WithFontFile(StyleBold, missing))...)

	var fe *FontLoadError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FontLoadError", err)
	}
	if fe.Path != missing {
		t.Errorf("Path = %q, want %q", fe.Path, missing)
	}
	if !strings.Contains(err.Error(), "nofont.ttf") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestRenderUnwritablePath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "p.png")
	if err := RenderPlain(out, testOptions(t)...); err == nil {
		t.Error("RenderPlain() into missing directory succeeded")
	}
}

func TestFaceColorOverride(t *testing.T) {
	out := filepath.Join(t.TempDir(), "face.png")
	err := RenderPlain(out, testOptions(t, WithoutCrop(), WithFaceColor(AccentYellow))...)
	if err != nil {
		t.Fatal(err)
	}
	img, _ := decodePNGFile(t, out)
	// The page corner is never covered by a shape.
	if got := img.At(0, 0); !nearRGB(got, 0xFF, 0xC4, 0x00) {
		t.Errorf("corner = %v, want #FFC400", got)
	}
}

func TestDescribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.png")
	if err := os.WriteFile(path, make([]byte, 2048), 0o600); err != nil {
		t.Fatal(err)
	}
	if got, want := Describe(path), "poster.png (2.0 kB)"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
	if got := Describe(filepath.Join(t.TempDir(), "gone.png")); got != "gone.png" {
		t.Errorf("Describe(missing) = %q, want %q", got, "gone.png")
	}
}
