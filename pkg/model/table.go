package model

// Table is an ordered, immutable sequence of records of one kind. Order
// only affects emission order.
type Table struct {
	Kind    RecordKind
	Records []Record
}

// Len returns the number of records in the table.
func (t Table) Len() int {
	return len(t.Records)
}

// Tags returns the TAG of every record in order.
func (t Table) Tags() []string {
	tags := make([]string, len(t.Records))
	for i, r := range t.Records {
		tags[i] = r.Tag()
	}
	return tags
}

// Tables holds the three parameter axes of the experiment matrix.
type Tables struct {
	Resolutions Table
	Cases       Table
	Numerics    Table
}

// Count returns the number of variants in the cartesian product.
func (t Tables) Count() int {
	return t.Resolutions.Len() * t.Cases.Len() * t.Numerics.Len()
}

// Variant is one (resolution, case, numeric) combination. Index is its
// position in emission order.
type Variant struct {
	Index      int
	Resolution Record
	Case       Record
	Numeric    Record
}

// Tags returns the three identifying tags in path order.
func (v Variant) Tags() (resolution, caseShape, numeric string) {
	return v.Resolution.Tag(), v.Case.Tag(), v.Numeric.Tag()
}
