// Package config loads named run presets from HCL files.
//
// A preset file holds one or more run blocks:
//
//	run "rule30" {
//	  rule        = 30
//	  generations = 200
//	  cell_size   = 3
//	  output      = "rule30.png"
//	}
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// DefaultCellSize is used when a run omits cell_size.
const DefaultCellSize = 2

// Run describes a single named automaton run.
type Run struct {
	Name        string `hcl:"name,label"`
	Rule        int    `hcl:"rule"`
	Generations int    `hcl:"generations"`
	CellSize    int    `hcl:"cell_size,optional"`
	Output      string `hcl:"output,optional"`
}

// File is the decoded form of a preset file.
type File struct {
	Runs []*Run `hcl:"run,block"`
}

// Load decodes the preset file at path. Rule and generation bounds are not
// checked here; the generator validates them when the run executes.
func Load(path string) (*File, error) {
	var f File
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, fmt.Errorf("load presets %s: %w", path, err)
	}
	for _, run := range f.Runs {
		if run.CellSize == 0 {
			run.CellSize = DefaultCellSize
		}
	}
	return &f, nil
}

// Run returns the preset with the given name, or the first preset when
// name is empty.
func (f *File) Run(name string) (*Run, error) {
	if len(f.Runs) == 0 {
		return nil, fmt.Errorf("preset file defines no runs")
	}
	if name == "" {
		return f.Runs[0], nil
	}
	for _, run := range f.Runs {
		if run.Name == name {
			return run, nil
		}
	}
	return nil, fmt.Errorf("unknown run %q", name)
}
