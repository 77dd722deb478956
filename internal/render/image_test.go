package render

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"wolfram-ca/pkg/automaton"
)

func mustBoard(t *testing.T, rule, generations int) *automaton.Board {
	t.Helper()
	b, err := automaton.Generate(rule, generations)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// isOn reports whether the sampled pixel is closer to white than black.
func isOn(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0x7fff && g > 0x7fff && b > 0x7fff
}

func TestBoardImageDimensions(t *testing.T) {
	board := mustBoard(t, 30, 5)
	img, err := BoardImage(board, 3, color.White, color.Black)
	if err != nil {
		t.Fatal(err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 27 || bounds.Dy() != 15 {
		t.Fatalf("image size = %dx%d, want 27x15", bounds.Dx(), bounds.Dy())
	}
}

func TestBoardImagePixels(t *testing.T) {
	// Rule 30 at two generations evolves 010 -> 111.
	board := mustBoard(t, 30, 2)
	img, err := BoardImage(board, 1, color.White, color.Black)
	if err != nil {
		t.Fatal(err)
	}

	type sample struct {
		x, y int
		on   bool
	}
	for _, s := range []sample{
		{0, 0, false},
		{1, 0, true},
		{2, 0, false},
		{0, 1, true},
		{1, 1, true},
		{2, 1, true},
	} {
		if got := isOn(img.At(s.x, s.y)); got != s.on {
			t.Fatalf("pixel (%d,%d) on=%v, want %v", s.x, s.y, got, s.on)
		}
	}
}

func TestBoardImageCellSize(t *testing.T) {
	board := mustBoard(t, 30, 1)
	img, err := BoardImage(board, 4, color.White, color.Black)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("image size = %v, want 4x4", img.Bounds())
	}
	// The single seed cell covers the whole image; sample its center.
	if !isOn(img.At(2, 2)) {
		t.Fatal("seed cell center must be painted with the on color")
	}
}

func TestBoardImageNilBoard(t *testing.T) {
	if _, err := BoardImage(nil, 1, color.White, color.Black); err == nil {
		t.Fatal("nil board must be rejected")
	}
}

func TestWriteBoardPNG(t *testing.T) {
	board := mustBoard(t, 110, 8)
	path := filepath.Join(t.TempDir(), "rule110.png")
	if err := WriteBoardPNG(path, board, 2, color.White, color.Black); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Fatalf("decoded format = %q, want png", format)
	}
	if cfg.Width != board.Width()*2 || cfg.Height != board.Height()*2 {
		t.Fatalf("PNG size = %dx%d, want %dx%d", cfg.Width, cfg.Height, board.Width()*2, board.Height()*2)
	}
}
