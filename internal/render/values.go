package render

import (
	"github.com/me/confgen/internal/config"
	"github.com/me/confgen/internal/derive"
	"github.com/me/confgen/pkg/model"
)

// grid holds the resolution fields shared by both documents.
type grid struct {
	nprcX, nprcY     string
	kmax, imax, jmax string
	dx, dz           string
}

func gridOf(r model.Record) (grid, error) {
	var g grid
	var err error
	fields := []struct {
		name string
		dst  *string
		get  func(string) (string, error)
	}{
		{model.FieldNprcX, &g.nprcX, r.Int},
		{model.FieldNprcY, &g.nprcY, r.Int},
		{model.FieldKMax, &g.kmax, r.Int},
		{model.FieldIMax, &g.imax, r.Int},
		{model.FieldJMax, &g.jmax, r.Int},
		{model.FieldDX, &g.dx, r.Number},
		{model.FieldDZ, &g.dz, r.Number},
	}
	for _, f := range fields {
		if *f.dst, err = f.get(f.name); err != nil {
			return grid{}, err
		}
	}
	return g, nil
}

// InitValuesFor extracts init.conf slot values from a variant's resolution
// and case records.
func InitValuesFor(v model.Variant) (InitValues, error) {
	g, err := gridOf(v.Resolution)
	if err != nil {
		return InitValues{}, err
	}
	shape, err := v.Case.Text(model.FieldShapeNC)
	if err != nil {
		return InitValues{}, err
	}
	return InitValues{
		NprcX: g.nprcX, NprcY: g.nprcY,
		Kmax: g.kmax, Imax: g.imax, Jmax: g.jmax,
		DX: g.dx, DZ: g.dz,
		ShapeNC: shape,
	}, nil
}

// RunValuesFor extracts run.conf slot values from a variant's resolution
// and numeric records plus the derived flags and run timing.
func RunValuesFor(v model.Variant, flags derive.Flags, timing config.Timing) (RunValues, error) {
	g, err := gridOf(v.Resolution)
	if err != nil {
		return RunValues{}, err
	}
	dt, err := v.Resolution.Number(model.FieldDtDyn)
	if err != nil {
		return RunValues{}, err
	}
	scheme, err := v.Numeric.Text(model.FieldTag)
	if err != nil {
		return RunValues{}, err
	}
	return RunValues{
		NprcX: g.nprcX, NprcY: g.nprcY,
		Kmax: g.kmax, Imax: g.imax, Jmax: g.jmax,
		DX: g.dx, DZ: g.dz,
		DtDyn:              dt,
		FlxEvalType:        scheme,
		FCTFlag:            flags.FCT,
		FCTFlagAlongStream: flags.FCTAlongStream,
		TimeDT:             timing.DT,
		TimeDuration:       timing.Duration,
		HistoryInterval:    timing.HistoryInterval,
	}, nil
}
