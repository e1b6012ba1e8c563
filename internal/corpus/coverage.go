package corpus

import (
	"sort"

	"github.com/jonathan/resume-synth/internal/types"
)

// Coverage maps section name to the number of resumes carrying that section.
type Coverage map[string]int

// SectionCoverage counts, per section, how many resumes in the batch have at
// least one entry (or, for basics, a present block).
func SectionCoverage(resumes []*types.Resume) Coverage {
	cov := Coverage{"basics": 0}
	for _, name := range types.SectionNames {
		cov[name] = 0
	}
	for _, r := range resumes {
		if r == nil {
			continue
		}
		if r.Basics != nil {
			cov["basics"]++
		}
		for _, name := range types.SectionNames {
			if r.HasSection(name) {
				cov[name]++
			}
		}
	}
	return cov
}

// Sorted returns section names ordered by descending count, ties broken
// alphabetically for stable output.
func (c Coverage) Sorted() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if c[names[i]] != c[names[j]] {
			return c[names[i]] > c[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
