package model

import "fmt"

// MalformedRecordError is returned when a record lacks a field a consumer
// needs, or the field has the wrong type.
type MalformedRecordError struct {
	Kind   RecordKind
	Tag    string
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record %q: field %s: %s", e.Kind, e.Tag, e.Field, e.Reason)
}
