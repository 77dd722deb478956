package automaton

import "strings"

// Board stores the full evolution of an elementary automaton as a 2D grid
// of binary cell values in row-major order. Row 0 is the seed generation.
type Board struct {
	w, h  int
	cells []uint8
}

// newBoard allocates a zeroed board with the given dimensions.
func newBoard(w, h int) *Board {
	return &Board{w: w, h: h, cells: make([]uint8, w*h)}
}

// Width returns the number of cells per row.
func (b *Board) Width() int { return b.w }

// Height returns the number of generations, including the seed row.
func (b *Board) Height() int { return b.h }

// At returns the cell state at column x of generation y.
func (b *Board) At(x, y int) uint8 { return b.cells[y*b.w+x] }

// Row returns generation y as a slice into the board. Callers must treat
// the returned slice as read-only.
func (b *Board) Row(y int) []uint8 { return b.cells[y*b.w : (y+1)*b.w] }

// Cells exposes the backing slice so renderers can read values directly.
func (b *Board) Cells() []uint8 { return b.cells }

// String renders the board as rows of '0' and '1' characters, one row per
// line, seed generation first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.h * (b.w + 1))
	for y := 0; y < b.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.Row(y) {
			sb.WriteByte('0' + c)
		}
	}
	return sb.String()
}
