// Package render fills the init.conf and run.conf namelist templates.
//
// Templates are embedded data assets; every value is inserted as a
// preformatted literal so numbers keep the text they were declared with.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Document names. They double as the output file names.
const (
	InitName = "init.conf"
	RunName  = "run.conf"
)

var templates = template.Must(
	template.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"),
)

// SlotError is returned when a template slot would be left empty.
type SlotError struct {
	Template string
	Slot     string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: slot %s has no value", e.Template, e.Slot)
}

// InitValues are the slots of the init.conf template. DX fills both the DX
// and DY slots.
type InitValues struct {
	NprcX, NprcY     string
	Kmax, Imax, Jmax string
	DX, DZ           string
	ShapeNC          string
}

// RunValues are the slots of the run.conf template.
type RunValues struct {
	NprcX, NprcY     string
	Kmax, Imax, Jmax string
	DX, DZ           string
	DtDyn            string
	FlxEvalType      string

	FCTFlag            string
	FCTFlagAlongStream string

	TimeDT          string
	TimeDuration    string
	HistoryInterval string
}

// RenderInit renders the init.conf document.
func RenderInit(v InitValues) ([]byte, error) {
	if err := checkSlots(InitName,
		"NprcX", v.NprcX, "NprcY", v.NprcY,
		"Kmax", v.Kmax, "Imax", v.Imax, "Jmax", v.Jmax,
		"DX", v.DX, "DZ", v.DZ, "ShapeNC", v.ShapeNC,
	); err != nil {
		return nil, err
	}
	return execute(InitName, v)
}

// RenderRun renders the run.conf document.
func RenderRun(v RunValues) ([]byte, error) {
	if err := checkSlots(RunName,
		"NprcX", v.NprcX, "NprcY", v.NprcY,
		"Kmax", v.Kmax, "Imax", v.Imax, "Jmax", v.Jmax,
		"DX", v.DX, "DZ", v.DZ, "DtDyn", v.DtDyn,
		"FlxEvalType", v.FlxEvalType,
		"FCTFlag", v.FCTFlag, "FCTFlagAlongStream", v.FCTFlagAlongStream,
		"TimeDT", v.TimeDT, "TimeDuration", v.TimeDuration, "HistoryInterval", v.HistoryInterval,
	); err != nil {
		return nil, err
	}
	return execute(RunName, v)
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// checkSlots takes alternating slot name / value pairs.
func checkSlots(tmpl string, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return &SlotError{Template: tmpl, Slot: pairs[i]}
		}
	}
	return nil
}
