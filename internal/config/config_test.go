package config

import (
	"os"
	"path/filepath"
	"testing"
)

const samplePresets = `
run "rule30" {
  rule        = 30
  generations = 200
  cell_size   = 3
  output      = "rule30.png"
}

run "complex" {
  rule        = 110
  generations = 400
}
`

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPresets(t *testing.T) {
	f, err := Load(writePresets(t, samplePresets))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Runs) != 2 {
		t.Fatalf("decoded %d runs, want 2", len(f.Runs))
	}

	first := f.Runs[0]
	if first.Name != "rule30" || first.Rule != 30 || first.Generations != 200 {
		t.Fatalf("first run = %+v", first)
	}
	if first.CellSize != 3 || first.Output != "rule30.png" {
		t.Fatalf("first run rendering fields = %+v", first)
	}

	second := f.Runs[1]
	if second.CellSize != DefaultCellSize {
		t.Fatalf("omitted cell_size = %d, want default %d", second.CellSize, DefaultCellSize)
	}
	if second.Output != "" {
		t.Fatalf("omitted output = %q, want empty", second.Output)
	}
}

func TestRunLookup(t *testing.T) {
	f, err := Load(writePresets(t, samplePresets))
	if err != nil {
		t.Fatal(err)
	}

	run, err := f.Run("")
	if err != nil || run.Name != "rule30" {
		t.Fatalf("Run(\"\") = %v, %v; want first run", run, err)
	}

	run, err = f.Run("complex")
	if err != nil || run.Rule != 110 {
		t.Fatalf("Run(complex) = %v, %v", run, err)
	}

	if _, err := f.Run("missing"); err == nil {
		t.Fatal("unknown run name must fail")
	}

	empty := &File{}
	if _, err := empty.Run(""); err == nil {
		t.Fatal("empty preset file must fail lookup")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.hcl")); err == nil {
		t.Fatal("missing file must fail")
	}
	if _, err := Load(writePresets(t, `run "broken" {`)); err == nil {
		t.Fatal("malformed HCL must fail")
	}
	if _, err := Load(writePresets(t, `run "partial" { rule = 30 }`)); err == nil {
		t.Fatal("missing required attribute must fail")
	}
}
