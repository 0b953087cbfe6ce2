//go:build pprof

package profile

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestModes_Pprof(t *testing.T) {
	m := Modes()

	for _, want := range []string{"cpu", "heap", "trace"} {
		if !slices.Contains(m, want) {
			t.Errorf("Modes() = %v, missing %q", m, want)
		}
	}

	if slices.Contains(m, "quiet") {
		t.Error("quiet is an option, not a mode")
	}
}

func TestProfiler_StartCPU(t *testing.T) {
	dir := t.TempDir()

	Profiler{Mode: "cpu", Path: dir, Quiet: true}.Start().Stop()

	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("expected cpu profile: %v", err)
	}
}
