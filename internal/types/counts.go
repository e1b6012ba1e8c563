package types

// SectionCounts tracks, per section name, how many entries failed typed
// validation during deserialization. Counts are diagnostic only and are never
// persisted with a sample.
type SectionCounts map[string]int

// NewSectionCounts returns a counter map pre-seeded with every list section.
func NewSectionCounts() SectionCounts {
	sc := make(SectionCounts, len(SectionNames))
	for _, name := range SectionNames {
		sc[name] = 0
	}
	return sc
}

// Add increments the failure count for a section.
func (sc SectionCounts) Add(section string, n int) {
	sc[section] += n
}

// Merge folds another counter map into this one. Accumulation is
// associative and commutative, so shard results can merge in any order.
func (sc SectionCounts) Merge(other SectionCounts) {
	for k, v := range other {
		sc[k] += v
	}
}

// Total returns the sum of all per-section failure counts.
func (sc SectionCounts) Total() int {
	total := 0
	for _, v := range sc {
		total += v
	}
	return total
}
