package knot

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Partition returns active without the segment indices in [lo, hi]. It does
// not modify active.
func Partition(active []int, lo, hi int) []int {
	out := make([]int, 0, len(active))
	for _, idx := range active {
		if idx < lo || idx > hi {
			out = append(out, idx)
		}
	}
	return out
}

// KnotRecord describes a confirmed knot whose segments have been removed from
// scanning.
type KnotRecord struct {
	// ID is the knot's sequence number, starting at 0.
	ID int
	// UID identifies the knot across resets of the detector.
	UID  uuid.UUID
	Kind Kind
	// Intersections are the intersections that triggered the detection.
	Intersections []Intersection
	// Begin and End delimit, inclusively, the frozen segment range.
	Begin int
	End   int
}

// Registry holds the knots confirmed since the last reset. The zero value is
// an empty registry.
type Registry struct {
	records []KnotRecord
}

func (r *Registry) add(kind Kind, xs []Intersection, m MatchResult) KnotRecord {
	rec := KnotRecord{
		ID:            len(r.records),
		UID:           uuid.New(),
		Kind:          kind,
		Intersections: slices.Clone(xs),
		Begin:         m.Begin,
		End:           m.End,
	}
	r.records = append(r.records, rec)
	return rec
}

// Len returns the number of recorded knots.
func (r *Registry) Len() int {
	return len(r.records)
}

// Get returns the knot with the given sequence number.
func (r *Registry) Get(id int) (KnotRecord, bool) {
	if id < 0 || id >= len(r.records) {
		return KnotRecord{}, false
	}
	return r.records[id], true
}

// All returns an iterator over all recorded knots, in order of detection.
func (r *Registry) All() iter.Seq[KnotRecord] {
	return func(yield func(KnotRecord) bool) {
		for _, rec := range r.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Contains reports whether the segment index idx lies in the range of any
// recorded knot.
func (r *Registry) Contains(idx int) bool {
	for _, rec := range r.records {
		if idx >= rec.Begin && idx <= rec.End {
			return true
		}
	}
	return false
}

func (r *Registry) Reset() {
	r.records = nil
}
