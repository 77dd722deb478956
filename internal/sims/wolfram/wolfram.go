// Package wolfram adapts the elementary automaton generator to the
// viewer's simulation interface. The full evolution is computed up front
// and revealed one generation per step.
package wolfram

import (
	"fmt"
	"strconv"

	"wolfram-ca/internal/core"
	"wolfram-ca/pkg/automaton"
)

// Config holds parameters for the Wolfram automaton sim.
type Config struct {
	Rule        int
	Generations int
	// RandomRule makes every Reset pick a rule from the reset seed
	// instead of keeping the configured one.
	RandomRule bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 30, Generations: 128}
}

// FromMap populates a Config from a string map. The value "random" for the
// rule key enables per-reset rule selection.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if v == "random" {
			c.RandomRule = true
		} else if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["g"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Generations = parsed
		}
	}
	return c
}

// Wolfram runs one elementary rule from a single seed cell. The display
// buffer is 2*generations-1 cells wide and generations rows tall.
type Wolfram struct {
	rule   automaton.Rule
	g      int
	random bool

	board    *automaton.Board
	cells    []uint8
	revealed int
}

// New creates the automaton sim for the given configuration.
func New(cfg Config) *Wolfram {
	g := cfg.Generations
	if g < 1 {
		g = DefaultConfig().Generations
	}
	rule, err := automaton.NewRule(cfg.Rule)
	if err != nil {
		rule = automaton.Rule(DefaultConfig().Rule)
	}
	w := &Wolfram{rule: rule, g: g, random: cfg.RandomRule}
	w.cells = make([]uint8, (2*g-1)*g)
	w.regenerate()
	return w
}

// Name returns the simulation identifier.
func (w *Wolfram) Name() string { return "wolfram" }

// Size returns the display buffer dimensions.
func (w *Wolfram) Size() core.Size {
	return core.Size{W: w.board.Width(), H: w.board.Height()}
}

// Cells exposes the render buffer holding the revealed generations.
func (w *Wolfram) Cells() []uint8 { return w.cells }

// Rule returns the rule currently driving the evolution.
func (w *Wolfram) Rule() automaton.Rule { return w.rule }

// Revealed returns how many generations are currently visible.
func (w *Wolfram) Revealed() int { return w.revealed }

// Board returns the fully computed evolution.
func (w *Wolfram) Board() *automaton.Board { return w.board }

// Reset rebuilds the evolution and rewinds the reveal to the seed row. In
// random mode the seed also picks the rule.
func (w *Wolfram) Reset(seed int64) {
	if w.random {
		w.rule = automaton.Rule(core.NewRNG(seed).Source().IntN(256))
	}
	w.regenerate()
}

// Step reveals the next generation. It is a no-op once every row is
// visible.
func (w *Wolfram) Step() {
	if w.revealed >= w.board.Height() {
		return
	}
	y := w.revealed
	width := w.board.Width()
	copy(w.cells[y*width:(y+1)*width], w.board.Row(y))
	w.revealed++
}

func (w *Wolfram) regenerate() {
	// Rule and generation count are validated in New and
	// SetIntParameter, so Evolve failing means a broken invariant.
	board, err := w.rule.Evolve(w.g)
	if err != nil {
		panic(fmt.Errorf("wolfram: regenerate rule %d over %d generations: %w", w.rule, w.g, err))
	}
	w.board = board
	for i := range w.cells {
		w.cells[i] = 0
	}
	copy(w.cells[:board.Width()], board.Row(0))
	w.revealed = 1
}

// ParameterControls exposes the rule as a viewer-adjustable control.
func (w *Wolfram) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "rule",
		Label:  "Rule",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    0,
		Max:    255,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter updates the rule and restarts the evolution.
func (w *Wolfram) SetIntParameter(key string, value int) bool {
	if key != "rule" {
		return false
	}
	rule, err := automaton.NewRule(value)
	if err != nil {
		return false
	}
	w.rule = rule
	w.regenerate()
	return true
}

// Parameters reports the current rule and reveal progress.
func (w *Wolfram) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Automaton",
		Params: []core.Parameter{
			{Key: "rule", Label: "rule", Type: core.ParamTypeInt, Value: strconv.Itoa(int(w.rule))},
			{Key: "row", Label: "row", Type: core.ParamTypeInt, Value: strconv.Itoa(w.revealed)},
			{Key: "generations", Label: "of", Type: core.ParamTypeInt, Value: strconv.Itoa(w.g)},
		},
	}}}
}

func init() {
	core.Register("wolfram", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
