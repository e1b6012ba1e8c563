// Package deserialize converts normalized extraction mappings into the
// canonical typed resume model, tracking per-section validation failures.
package deserialize

import (
	"github.com/jonathan/resume-synth/internal/normalize"
	"github.com/jonathan/resume-synth/internal/types"
)

// Deserialize builds a typed Resume from a normalized mapping. Each list
// section is validated entry by entry: invalid entries are dropped and
// counted, valid entries keep their original order. A basics section that
// cannot be constructed is fatal for the record and yields a nil Resume;
// the counts are returned either way so the caller can aggregate them.
func Deserialize(m normalize.Mapping) (*types.Resume, types.SectionCounts) {
	counts := types.NewSectionCounts()

	resume := &types.Resume{}
	resume.Education, counts["education"] = section(m, "education", NewEducation)
	resume.Work, counts["work"] = section(m, "work", NewWork)
	resume.Projects, counts["projects"] = section(m, "projects", NewProject)
	resume.Skills, counts["skills"] = section(m, "skills", NewSkill)
	resume.Publications, counts["publications"] = section(m, "publications", NewPublication)
	resume.Awards, counts["awards"] = section(m, "awards", NewAward)
	resume.Certificates, counts["certificates"] = section(m, "certificates", NewCertificate)
	resume.Volunteer, counts["volunteer"] = section(m, "volunteer", NewVolunteer)
	resume.Languages, counts["languages"] = section(m, "languages", NewLanguage)
	resume.Interests, counts["interests"] = section(m, "interests", NewInterest)
	resume.References, counts["references"] = section(m, "references", NewReference)

	resume.Basics = deserializeBasics(m)
	if resume.Basics == nil {
		return nil, counts
	}
	return resume, counts
}

// section validates one list section. Entries that are not mappings or fail
// their typed constructor are dropped and counted.
func section[T any](m normalize.Mapping, name string, build func(normalize.Mapping) (*T, error)) ([]T, int) {
	seq, ok := m[name].(normalize.Sequence)
	if !ok {
		return nil, 0
	}

	entries := make([]T, 0, len(seq))
	failures := 0
	for _, item := range seq {
		entry, ok := item.(normalize.Mapping)
		if !ok {
			failures++
			continue
		}
		built, err := build(entry)
		if err != nil {
			failures++
			continue
		}
		entries = append(entries, *built)
	}
	return entries, failures
}

// deserializeBasics builds the basics section. Invalid profile entries are
// filtered out; a location that fails validation defaults to nil. Failure to
// construct the basics object itself returns nil, which is fatal for the
// whole record.
func deserializeBasics(m normalize.Mapping) *types.Basics {
	basicsMap, ok := m["basics"].(normalize.Mapping)
	if !ok || len(basicsMap) == 0 {
		return nil
	}

	b := &types.Basics{}
	var err error
	if b.Name, err = stringField("basics", basicsMap, "name"); err != nil {
		return nil
	}
	if b.Label, err = stringField("basics", basicsMap, "label"); err != nil {
		return nil
	}
	if b.Website, err = stringField("basics", basicsMap, "website"); err != nil {
		return nil
	}
	if b.Email, err = stringField("basics", basicsMap, "email"); err != nil {
		return nil
	}
	if b.Phone, err = stringField("basics", basicsMap, "phone"); err != nil {
		return nil
	}
	if b.Summary, err = stringField("basics", basicsMap, "summary"); err != nil {
		return nil
	}
	if b.URL, err = stringField("basics", basicsMap, "url"); err != nil {
		return nil
	}

	if profiles, ok := basicsMap["profiles"].(normalize.Sequence); ok {
		for _, item := range profiles {
			entry, ok := item.(normalize.Mapping)
			if !ok {
				continue
			}
			profile, err := NewProfile(entry)
			if err != nil {
				continue
			}
			b.Profiles = append(b.Profiles, *profile)
		}
	}

	if locMap, ok := basicsMap["location"].(normalize.Mapping); ok {
		if loc, err := NewLocation(locMap); err == nil {
			b.Location = loc
		}
	}

	if err := types.ValidateStruct(b); err != nil {
		return nil
	}
	return b
}
