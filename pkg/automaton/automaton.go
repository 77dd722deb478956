// Package automaton generates the evolution of one-dimensional binary
// cellular automata following Wolfram's elementary rule scheme.
package automaton

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation failure reported by
// this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Rule is an 8-bit lookup table mapping a 3-cell neighborhood to the next
// cell state. Bit k holds the output for the neighborhood whose binary
// value (4*left + 2*center + right) equals k.
type Rule uint8

// NewRule validates n as a Wolfram rule number.
func NewRule(n int) (Rule, error) {
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("rule %d outside [0, 255]: %w", n, ErrInvalidArgument)
	}
	return Rule(n), nil
}

// Next returns the successor state for a neighborhood triple. Inputs must
// be 0 or 1.
func (r Rule) Next(left, center, right uint8) uint8 {
	key := left<<2 | center<<1 | right
	return uint8(r>>key) & 1
}

// Evolve computes the full evolution of the rule from a single live seed
// cell. The board has exactly generations rows of width 2*generations-1,
// with the seed at the center of row 0.
//
// Cells on either edge reuse themselves as the missing neighbor; the board
// never wraps around and never reads an implicit zero border. This differs
// from the usual toroidal or zero-padded conventions and is part of the
// package contract.
func (r Rule) Evolve(generations int) (*Board, error) {
	if generations < 1 {
		return nil, fmt.Errorf("generation count %d must be at least 1: %w", generations, ErrInvalidArgument)
	}

	w := 2*generations - 1
	b := newBoard(w, generations)
	b.cells[w/2] = 1

	for y := 1; y < generations; y++ {
		prev := b.Row(y - 1)
		row := b.Row(y)
		for x := 0; x < w; x++ {
			left, right := x-1, x+1
			if left < 0 {
				left = 0
			}
			if right > w-1 {
				right = w - 1
			}
			row[x] = r.Next(prev[left], prev[x], prev[right])
		}
	}
	return b, nil
}

// Generate validates the inputs and computes the evolution of the given
// rule number. It is a pure function: identical inputs always produce
// identical boards, and no partial board is ever returned.
func Generate(rule, generations int) (*Board, error) {
	r, err := NewRule(rule)
	if err != nil {
		return nil, err
	}
	return r.Evolve(generations)
}
