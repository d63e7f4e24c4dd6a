package model

import (
	"fmt"
	"strconv"
)

// RecordKind identifies which parameter table a Record belongs to.
type RecordKind string

const (
	KindResolution RecordKind = "resolution"
	KindCase       RecordKind = "case"
	KindNumeric    RecordKind = "numeric"
)

// String returns the string representation of the record kind.
func (k RecordKind) String() string {
	return string(k)
}

// ScalarType is the decoded type of a Scalar.
type ScalarType string

const (
	ScalarInt    ScalarType = "int"
	ScalarFloat  ScalarType = "float"
	ScalarString ScalarType = "string"
)

// Scalar is a single table value. Literal keeps the exact source text so
// rendered documents reproduce it byte-for-byte (500.0 stays "500.0").
type Scalar struct {
	Type    ScalarType
	Literal string
}

// Int returns an integer Scalar.
func Int(n int) Scalar {
	return Scalar{Type: ScalarInt, Literal: strconv.Itoa(n)}
}

// Float returns a float Scalar with the given literal text.
func Float(literal string) Scalar {
	return Scalar{Type: ScalarFloat, Literal: literal}
}

// String returns a string Scalar.
func String(s string) Scalar {
	return Scalar{Type: ScalarString, Literal: s}
}

// IsNumber reports whether the scalar is an int or a float.
func (s Scalar) IsNumber() bool {
	return s.Type == ScalarInt || s.Type == ScalarFloat
}

// Common field names. They match the keys of the parameter table asset.
const (
	FieldTag     = "TAG"
	FieldDX      = "DX"
	FieldDZ      = "DZ"
	FieldKMax    = "KMAX"
	FieldIMax    = "IMAX"
	FieldJMax    = "JMAX"
	FieldDtDyn   = "DTDYN"
	FieldNprcX   = "NPRCX"
	FieldNprcY   = "NPRCY"
	FieldShapeNC = "SHAPE_NC"
)

// Record is one named row of a parameter table: a flat mapping from field
// name to scalar. Keys holds the field order as declared.
type Record struct {
	Kind   RecordKind
	Keys   []string
	Fields map[string]Scalar
}

// NewRecord builds a Record from alternating name/value pairs.
func NewRecord(kind RecordKind, pairs ...any) Record {
	r := Record{Kind: kind, Fields: make(map[string]Scalar, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := pairs[i].(string)
		var s Scalar
		switch v := pairs[i+1].(type) {
		case Scalar:
			s = v
		case int:
			s = Int(v)
		case string:
			s = String(v)
		default:
			s = String(fmt.Sprint(v))
		}
		r.Set(name, s)
	}
	return r
}

// Set assigns a field, appending it to Keys on first use.
func (r *Record) Set(name string, s Scalar) {
	if r.Fields == nil {
		r.Fields = make(map[string]Scalar)
	}
	if _, ok := r.Fields[name]; !ok {
		r.Keys = append(r.Keys, name)
	}
	r.Fields[name] = s
}

// Tag returns the record's TAG field, or "" when it is absent.
func (r Record) Tag() string {
	return r.Fields[FieldTag].Literal
}

// RequireTag returns the record's TAG, or a MalformedRecordError when the
// field is missing, not a string, or empty.
func (r Record) RequireTag() (string, error) {
	tag, err := r.Text(FieldTag)
	if err != nil {
		return "", err
	}
	if tag == "" {
		return "", &MalformedRecordError{Kind: r.Kind, Field: FieldTag, Reason: "empty tag"}
	}
	return tag, nil
}

// Get returns the named field or a MalformedRecordError if it is missing.
func (r Record) Get(field string) (Scalar, error) {
	s, ok := r.Fields[field]
	if !ok {
		return Scalar{}, &MalformedRecordError{Kind: r.Kind, Tag: r.Tag(), Field: field, Reason: "missing field"}
	}
	return s, nil
}

// Text returns the literal text of a string field.
func (r Record) Text(field string) (string, error) {
	s, err := r.Get(field)
	if err != nil {
		return "", err
	}
	if s.Type != ScalarString {
		return "", &MalformedRecordError{Kind: r.Kind, Tag: r.Tag(), Field: field,
			Reason: fmt.Sprintf("expected string, got %s", s.Type)}
	}
	return s.Literal, nil
}

// Int returns the literal text of an integer field.
func (r Record) Int(field string) (string, error) {
	s, err := r.Get(field)
	if err != nil {
		return "", err
	}
	if s.Type != ScalarInt {
		return "", &MalformedRecordError{Kind: r.Kind, Tag: r.Tag(), Field: field,
			Reason: fmt.Sprintf("expected int, got %s", s.Type)}
	}
	return s.Literal, nil
}

// Number returns the literal text of an int or float field.
func (r Record) Number(field string) (string, error) {
	s, err := r.Get(field)
	if err != nil {
		return "", err
	}
	if !s.IsNumber() {
		return "", &MalformedRecordError{Kind: r.Kind, Tag: r.Tag(), Field: field,
			Reason: fmt.Sprintf("expected number, got %s", s.Type)}
	}
	return s.Literal, nil
}
