//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"wolfram-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a status line with the simulation's current parameter
// values. H toggles visibility.
type Overlay struct {
	sim    core.Sim
	hidden bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update handles overlay key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the status line onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	provider, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	line := statusLine(provider.Parameters())
	if line == "" {
		return
	}
	text.Draw(screen, line, basicfont.Face7x13, 5, 15, color.RGBA{R: 255, G: 80, B: 80, A: 255})
}

func statusLine(snapshot core.ParameterSnapshot) string {
	var sb strings.Builder
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			if sb.Len() > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(p.Label)
			sb.WriteByte(' ')
			sb.WriteString(p.Value)
		}
	}
	return sb.String()
}
