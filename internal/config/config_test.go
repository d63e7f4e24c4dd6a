package config

import (
	"runtime"
	"testing"
)

func TestDefaultGeneratorConfig(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Timing != DefaultTiming() {
		t.Errorf("Timing = %+v, want defaults", cfg.Timing)
	}
	if cfg.Timing.Duration != "600.D0" || cfg.Timing.DT != "0.25D0" || cfg.Timing.HistoryInterval != "4.0D0" {
		t.Errorf("unexpected timing literals: %+v", cfg.Timing)
	}
}

func TestMaxWorkers(t *testing.T) {
	limit := runtime.NumCPU() * 4
	tests := []struct {
		workers int
		want    int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, min(2, limit)},
		{limit + 10, limit},
	}
	for _, tt := range tests {
		cfg := GeneratorConfig{Workers: tt.workers}
		if got := cfg.MaxWorkers(); got != tt.want {
			t.Errorf("MaxWorkers() with Workers=%d = %d, want %d", tt.workers, got, tt.want)
		}
	}
}
