package generator

import (
	"fmt"

	"github.com/me/confgen/internal/derive"
	"github.com/me/confgen/pkg/model"
)

// Expand returns the cartesian product of the three tables with the
// resolution axis outermost and the numeric axis innermost.
// For resolutions [A, B] and numerics [1, 2] (one case c) it yields
// [Ac1, Ac2, Bc1, Bc2].
func Expand(t model.Tables) []model.Variant {
	axes := []model.Table{t.Resolutions, t.Cases, t.Numerics}

	// Start with one combination per record of the first axis, then extend
	// every combination by each record of the next axis.
	var combinations [][]model.Record
	for _, rec := range axes[0].Records {
		combinations = append(combinations, []model.Record{rec})
	}
	for _, axis := range axes[1:] {
		expanded := make([][]model.Record, 0, len(combinations)*axis.Len())
		for _, combo := range combinations {
			for _, rec := range axis.Records {
				next := make([]model.Record, len(combo), len(combo)+1)
				copy(next, combo)
				expanded = append(expanded, append(next, rec))
			}
		}
		combinations = expanded
	}

	variants := make([]model.Variant, len(combinations))
	for i, combo := range combinations {
		variants[i] = model.Variant{Index: i, Resolution: combo[0], Case: combo[1], Numeric: combo[2]}
	}
	return variants
}

// Job is a variant with its output directory and derived flags resolved.
type Job struct {
	Variant model.Variant
	Dir     string
	Flags   derive.Flags
}

// Plan expands the tables and resolves each variant's directory and flags.
// A record without a usable TAG fails the whole plan before anything is
// written.
func Plan(t model.Tables) ([]Job, error) {
	variants := Expand(t)
	jobs := make([]Job, len(variants))
	for i, v := range variants {
		var tags [3]string
		for k, rec := range []model.Record{v.Resolution, v.Case, v.Numeric} {
			tag, err := rec.RequireTag()
			if err != nil {
				return nil, fmt.Errorf("variant %d: %w", v.Index, err)
			}
			tags[k] = tag
		}
		jobs[i] = Job{
			Variant: v,
			Dir:     derive.OutputPath(tags[0], tags[1], tags[2]),
			Flags:   derive.DeriveFlags(tags[0]),
		}
	}
	return jobs, nil
}
