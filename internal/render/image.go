package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"wolfram-ca/pkg/automaton"
)

// BoardImage paints each cell of the board as a cellSize-pixel square and
// returns the resulting image. Live cells use the on color, dead cells the
// off color.
func BoardImage(b *automaton.Board, cellSize int, on, off color.Color) (image.Image, error) {
	dc, err := paintBoard(b, cellSize, on, off)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WriteBoardPNG renders the board and writes it to path as a PNG file.
func WriteBoardPNG(path string, b *automaton.Board, cellSize int, on, off color.Color) error {
	dc, err := paintBoard(b, cellSize, on, off)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func paintBoard(b *automaton.Board, cellSize int, on, off color.Color) (*gg.Context, error) {
	if b == nil {
		return nil, fmt.Errorf("render: nil board")
	}
	if cellSize < 1 {
		cellSize = 1
	}

	w := b.Width() * cellSize
	h := b.Height() * cellSize
	dc := gg.NewContext(w, h)

	dc.SetColor(off)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("render: fill background: %w", err)
	}

	dc.SetColor(on)
	cell := float64(cellSize)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) == 0 {
				continue
			}
			dc.DrawRectangle(float64(x)*cell, float64(y)*cell, cell, cell)
		}
	}
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("render: fill cells: %w", err)
	}
	return dc, nil
}
