// Command wolfram generates an elementary cellular automaton evolution and
// prints it as text or renders it to a PNG file. Runs can be described on
// the command line or in an HCL preset file.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"wolfram-ca/internal/config"
	"wolfram-ca/internal/render"
	"wolfram-ca/pkg/automaton"
)

func main() {
	rule := flag.Int("rule", 30, "Wolfram rule number (0-255)")
	generations := flag.Int("generations", 32, "number of generations to evolve")
	cellSize := flag.Int("cell", config.DefaultCellSize, "cell size in pixels for PNG output")
	output := flag.String("o", "", "PNG output path (empty prints the board as text)")
	presetPath := flag.String("config", "", "HCL preset file")
	presetName := flag.String("run", "", "named run inside the preset file (default: first)")
	verbose := flag.Bool("v", false, "enable renderer debug logging")
	flag.Parse()

	if *verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Flags given explicitly on the command line win over preset values.
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *presetPath != "" {
		presets, err := config.Load(*presetPath)
		if err != nil {
			log.Fatal(err)
		}
		run, err := presets.Run(*presetName)
		if err != nil {
			log.Fatal(err)
		}
		if !explicit["rule"] {
			*rule = run.Rule
		}
		if !explicit["generations"] {
			*generations = run.Generations
		}
		if !explicit["cell"] {
			*cellSize = run.CellSize
		}
		if !explicit["o"] {
			*output = run.Output
		}
	}

	board, err := automaton.Generate(*rule, *generations)
	if err != nil {
		log.Fatal(err)
	}

	if *output == "" {
		fmt.Println(board)
		return
	}

	if err := render.WriteBoardPNG(*output, board, *cellSize, color.White, color.Black); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d cells at %dpx)", *output, board.Width(), board.Height(), *cellSize)
}
