package poster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
)

func TestCropToContent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	for y := 20; y < 30; y++ {
		for x := 40; x < 55; x++ {
			img.Set(x, y, color.RGBA{R: 0, G: 90, B: 156, A: 255})
		}
	}

	tests := []struct {
		name string
		pad  int
		want image.Rectangle
	}{
		{"tight", 0, image.Rect(40, 20, 55, 30)},
		{"padded", 5, image.Rect(35, 15, 60, 35)},
		{"clipped", 50, image.Rect(0, 0, 100, 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CropToContent(img, White, tt.pad); got != tt.want {
				t.Errorf("CropToContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCropToContentIgnoresNoise(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.NRGBA{R: 254, G: 255, B: 253, A: 255})
		}
	}
	if got := CropToContent(img, White, 1); got != img.Bounds() {
		t.Errorf("blank image cropped to %v, want full bounds", got)
	}
}

func TestEncodePNGWritesPHYs(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, 300); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	data := buf.Bytes()

	chunk := data[pngHeaderLen : pngHeaderLen+21]
	if n := binary.BigEndian.Uint32(chunk[0:4]); n != 9 {
		t.Errorf("length = %d, want 9", n)
	}
	if typ := string(chunk[4:8]); typ != "pHYs" {
		t.Fatalf("chunk after IHDR = %q, want pHYs", typ)
	}
	if x, y := binary.BigEndian.Uint32(chunk[8:12]), binary.BigEndian.Uint32(chunk[12:16]); x != 11811 || y != 11811 {
		t.Errorf("ppm = %d x %d, want 11811", x, y)
	}
	if crc := binary.BigEndian.Uint32(chunk[17:21]); crc != crc32.ChecksumIEEE(chunk[4:17]) {
		t.Error("bad pHYs CRC")
	}

	dec, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", dec.Bounds(), img.Bounds())
	}
}

func TestFlattenIsOpaque(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 255, A: 128})

	out := flatten(img, image.Rect(0, 0, 2, 2), PaleBlue)
	if b := out.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", b)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if a := out.NRGBAAt(x, y).A; a != 255 {
				t.Errorf("alpha at (%d,%d) = %d, want 255", x, y, a)
			}
		}
	}
	if got := out.NRGBAAt(0, 0); !nearRGB(got, 0xE6, 0xF0, 0xF9) {
		t.Errorf("background = %v, want #E6F0F9", got)
	}
}

func TestCanvasSizeAndClose(t *testing.T) {
	c, err := NewCanvas(White, testOptions(t, WithDPI(7.5))...)
	if err != nil {
		t.Fatal(err)
	}
	w, h := c.Size()
	if w != 75 || h != 113 {
		t.Errorf("Size() = %dx%d, want 75x113", w, h)
	}
	if c.DPI() != 7.5 {
		t.Errorf("DPI() = %v, want 7.5", c.DPI())
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if _, err := c.Image(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Image() after Close = %v, want ErrCanvasClosed", err)
	}
}

func TestCanvasLayerOrder(t *testing.T) {
	c, err := NewCanvas(White, testOptions(t, WithoutCrop(), WithDPI(10))...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	// The image layer is added last but must still end up underneath.
	c.Add(
		Rect{X: 0, Y: 0, W: 1, H: 1, Style: Style{Fill: PrimaryBlue}},
		GradientLayer{X: 0, Y: 0, W: 1, H: 1, Stops: []gg.RGBA{AccentOrange, AccentOrange}},
	)
	img, err := c.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.At(50, 75); !nearRGB(got, 0x00, 0x5A, 0x9C) {
		t.Errorf("center = %v, want PrimaryBlue on top", got)
	}
}

// nearRGB reports whether c matches r, g, b within float rounding.
func nearRGB(c color.Color, r, g, b uint8) bool {
	cr, cg, cb, _ := c.RGBA()
	return absDiff(uint8(cr>>8), r) <= 2 && absDiff(uint8(cg>>8), g) <= 2 && absDiff(uint8(cb>>8), b) <= 2
}
