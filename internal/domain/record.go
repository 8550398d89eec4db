package domain

// UnknownType is the grouping key used for records without a type summary.
const UnknownType = ""

// Record represents a single ship-traffic entry.
type Record struct {
	// Country is the flag or registration country of the ship.
	Country string `mapstructure:"country"`

	// TypeSummary is the ship category. Empty when the source value was absent or null.
	TypeSummary string `mapstructure:"type_summary"`
}

// Dataset is the ordered, read-only collection of records loaded for one session.
type Dataset struct {
	records []Record
}

// NewDataset creates a dataset from records. The slice is copied.
func NewDataset(records []Record) *Dataset {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Dataset{records: cp}
}

// Len returns the number of records. A nil dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// At returns the record at index i.
func (d *Dataset) At(i int) Record {
	return d.records[i]
}

// Records returns a copy of the records in load order.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	cp := make([]Record, len(d.records))
	copy(cp, d.records)
	return cp
}

// Count is one aggregate row: a grouping key and the number of records in the group.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
