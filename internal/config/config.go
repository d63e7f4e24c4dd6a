package config

import "runtime"

// Timing holds the run.conf time settings shared by every variant. Values
// are namelist literals and are inserted verbatim.
type Timing struct {
	DT              string // reference TIME_DT, kept as a comment next to the dynamics step
	Duration        string // TIME_DURATION in seconds
	HistoryInterval string // HISTORY_DEFAULT_TINTERVAL in seconds
}

// DefaultTiming returns the time settings of the advection test suite.
func DefaultTiming() Timing {
	return Timing{
		DT:              "0.25D0",
		Duration:        "600.D0",
		HistoryInterval: "4.0D0",
	}
}

// GeneratorConfig holds configuration for one generation pass.
type GeneratorConfig struct {
	OutputDir string // Root the variant tree is written under (default ".")
	Workers   int    // Concurrent variants; 1 keeps emission order (default 1)
	KeepGoing bool   // Attempt every variant and report all failures together
	DryRun    bool   // Render and report, write nothing
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: text, json
	Timing    Timing
}

// DefaultGeneratorConfig returns sensible defaults.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir: ".",
		Workers:   1,
		LogLevel:  "info",
		LogFormat: "text",
		Timing:    DefaultTiming(),
	}
}

// MaxWorkers caps Workers at the number of CPUs times four; writes are
// small and mostly wait on the filesystem.
func (c GeneratorConfig) MaxWorkers() int {
	n := c.Workers
	if n < 1 {
		return 1
	}
	if limit := runtime.NumCPU() * 4; n > limit {
		return limit
	}
	return n
}
