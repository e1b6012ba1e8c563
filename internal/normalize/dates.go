package normalize

import (
	"github.com/araddon/dateparse"

	"github.com/jonathan/resume-synth/internal/types"
)

// datedSections are the sections whose entries may carry date fields.
var datedSections = []string{
	"awards", "certificates", "education", "projects", "publications", "volunteer", "work",
}

// ParseDates walks every date-bearing field of every dated section and
// replaces string values with parsed *types.YearMonth scalars. Unparseable
// values become nil scalars; a record never fails for a bad date. Entries that
// are not mappings (or are empty) are dropped from the section.
func ParseDates(m Mapping) Mapping {
	if m == nil {
		return nil
	}
	for _, name := range datedSections {
		seq, ok := m[name].(Sequence)
		if !ok {
			continue
		}
		out := make(Sequence, 0, len(seq))
		for _, item := range seq {
			entry, ok := item.(Mapping)
			if !ok || len(entry) == 0 {
				continue
			}
			for _, key := range types.DateKeys {
				if _, present := entry[key]; present {
					entry[key] = Scalar{V: parseDateValue(entry[key])}
				}
			}
			out = append(out, entry)
		}
		m[name] = out
	}
	return m
}

// parseDateValue converts one date field to a *types.YearMonth or nil.
// Already-parsed values pass through; anything unparseable becomes nil.
func parseDateValue(v Value) *types.YearMonth {
	scalar, ok := v.(Scalar)
	if !ok {
		return nil
	}
	switch s := scalar.V.(type) {
	case *types.YearMonth:
		return s
	case types.YearMonth:
		return &s
	case string:
		if s == "" {
			return nil
		}
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return nil
		}
		// Day-of-month is unreliable upstream and unused downstream; parsed
		// dates keep only year and month.
		ym := types.NewYearMonth(t)
		return &ym
	default:
		return nil
	}
}
