package launches

import "iter"

// Snapshot is the original dataset captured at load time. It owns its buffer
// and never hands it out; every accessor returns values or copies.
type Snapshot struct {
	records []Launch
}

// NewSnapshot copies records into a new immutable snapshot.
func NewSnapshot(records []Launch) Snapshot {
	if len(records) == 0 {
		return Snapshot{}
	}
	dup := make([]Launch, len(records))
	copy(dup, records)
	return Snapshot{records: dup}
}

// Len returns the number of records.
func (s Snapshot) Len() int {
	return len(s.records)
}

// At returns the record at index i. It panics when i is out of range, like a slice.
func (s Snapshot) At(i int) Launch {
	return s.records[i]
}

// All yields the records in their original order.
func (s Snapshot) All() iter.Seq[Launch] {
	return func(yield func(Launch) bool) {
		for _, l := range s.records {
			if !yield(l) {
				return
			}
		}
	}
}

// Records returns a copy of the records in their original order.
func (s Snapshot) Records() []Launch {
	if len(s.records) == 0 {
		return nil
	}
	dup := make([]Launch, len(s.records))
	copy(dup, s.records)
	return dup
}
