package deserialize

import (
	"fmt"

	"github.com/jonathan/resume-synth/internal/normalize"
	"github.com/jonathan/resume-synth/internal/types"
)

// Field readers translate one normalized mapping field into a typed value.
// Absent and null fields read as zero values; wrong-typed fields are rejected
// so the whole entry is dropped, matching strict per-entry validation.

func stringField(section string, m normalize.Mapping, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", nil
	}
	scalar, ok := v.(normalize.Scalar)
	if !ok {
		return "", &EntryError{Section: section, Field: key, Message: "expected a string"}
	}
	switch s := scalar.V.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", &EntryError{Section: section, Field: key, Message: fmt.Sprintf("expected a string, got %T", s)}
	}
}

func stringListField(section string, m normalize.Mapping, key string) ([]string, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	if scalar, isScalar := v.(normalize.Scalar); isScalar && scalar.V == nil {
		return nil, nil
	}
	seq, ok := v.(normalize.Sequence)
	if !ok {
		return nil, &EntryError{Section: section, Field: key, Message: "expected a list of strings"}
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		scalar, ok := item.(normalize.Scalar)
		if !ok {
			return nil, &EntryError{Section: section, Field: key, Message: "expected a list of strings"}
		}
		s, ok := scalar.V.(string)
		if !ok {
			return nil, &EntryError{Section: section, Field: key, Message: "expected a list of strings"}
		}
		out = append(out, s)
	}
	return out, nil
}

// dateField reads an already-parsed year-month value. Anything else (a date
// string that failed parsing, or garbage) reads as nil: date failures are
// field-fatal only.
func dateField(m normalize.Mapping, key string) *types.YearMonth {
	scalar, ok := m[key].(normalize.Scalar)
	if !ok {
		return nil
	}
	switch d := scalar.V.(type) {
	case *types.YearMonth:
		return d
	case types.YearMonth:
		return &d
	default:
		return nil
	}
}

// checked runs struct-tag validation and wraps failures as entry rejections.
func checked[T any](section string, entry *T) (*T, error) {
	if err := types.ValidateStruct(entry); err != nil {
		return nil, &EntryError{Section: section, Message: "required field missing or invalid", Cause: err}
	}
	return entry, nil
}

// NewWork constructs a validated work entry from a normalized mapping.
func NewWork(m normalize.Mapping) (*types.Work, error) {
	const section = "work"
	var err error
	w := &types.Work{}
	if w.Position, err = stringField(section, m, "position"); err != nil {
		return nil, err
	}
	if w.Name, err = stringField(section, m, "name"); err != nil {
		return nil, err
	}
	if w.Location, err = stringField(section, m, "location"); err != nil {
		return nil, err
	}
	if w.Description, err = stringField(section, m, "description"); err != nil {
		return nil, err
	}
	if w.Summary, err = stringField(section, m, "summary"); err != nil {
		return nil, err
	}
	if w.URL, err = stringField(section, m, "url"); err != nil {
		return nil, err
	}
	if w.Highlights, err = stringListField(section, m, "highlights"); err != nil {
		return nil, err
	}
	w.StartDate = dateField(m, "startdate")
	w.EndDate = dateField(m, "enddate")
	return checked(section, w)
}

// NewEducation constructs a validated education entry.
func NewEducation(m normalize.Mapping) (*types.Education, error) {
	const section = "education"
	var err error
	e := &types.Education{}
	if e.Institution, err = stringField(section, m, "institution"); err != nil {
		return nil, err
	}
	if e.Area, err = stringField(section, m, "area"); err != nil {
		return nil, err
	}
	if e.StudyType, err = stringField(section, m, "studytype"); err != nil {
		return nil, err
	}
	if e.URL, err = stringField(section, m, "url"); err != nil {
		return nil, err
	}
	if e.Score, err = stringField(section, m, "score"); err != nil {
		return nil, err
	}
	e.StartDate = dateField(m, "startdate")
	e.EndDate = dateField(m, "enddate")
	return checked(section, e)
}

// NewProject constructs a validated project entry.
func NewProject(m normalize.Mapping) (*types.Project, error) {
	const section = "projects"
	var err error
	p := &types.Project{}
	if p.Name, err = stringField(section, m, "name"); err != nil {
		return nil, err
	}
	if p.Description, err = stringField(section, m, "description"); err != nil {
		return nil, err
	}
	if p.URL, err = stringField(section, m, "url"); err != nil {
		return nil, err
	}
	if p.Highlights, err = stringListField(section, m, "highlights"); err != nil {
		return nil, err
	}
	p.StartDate = dateField(m, "startdate")
	p.EndDate = dateField(m, "enddate")
	return checked(section, p)
}

// NewSkill constructs a validated skill entry.
func NewSkill(m normalize.Mapping) (*types.Skill, error) {
	const section = "skills"
	var err error
	s := &types.Skill{}
	if s.Name, err = stringField(section, m, "name"); err != nil {
		return nil, err
	}
	if s.Level, err = stringField(section, m, "level"); err != nil {
		return nil, err
	}
	if s.Keywords, err = stringListField(section, m, "keywords"); err != nil {
		return nil, err
	}
	return checked(section, s)
}

// NewPublication constructs a validated publication entry.
func NewPublication(m normalize.Mapping) (*types.Publication, error) {
	const section = "publications"
	var err error
	p := &types.Publication{}
	if p.Name, err = stringField(section, m, "name"); err != nil {
		return nil, err
	}
	if p.Publisher, err = stringField(section, m, "publisher"); err != nil {
		return nil, err
	}
	if p.Summary, err = stringField(section, m, "summary"); err != nil {
		return nil, err
	}
	if p.URL, err = stringField(section, m, "url"); err != nil {
		return nil, err
	}
	p.ReleaseDate = dateField(m, "releasedate")
	return checked(section, p)
}

// NewAward constructs a validated award entry.
func NewAward(m normalize.Mapping) (*types.Award, error) {
	const section = "awards"
	var err error
	a := &types.Award{}
	if a.Title, err = stringField(section, m, "title"); err != nil {
		return nil, err
	}
	if a.Awarder, err = stringField(section, m, "awarder"); err != nil {
		return nil, err
	}
	if a.Summary, err = stringField(section, m, "summary"); err != nil {
		return nil, err
	}
	a.Date = dateField(m, "date")
	return checked(section, a)
}

// NewCertificate constructs a validated certificate entry.
func NewCertificate(m normalize.Mapping) (*types.Certificate, error) {
	const section = "certificates"
	var err error
	c := &types.Certificate{}
	if c.Name, err = stringField(section, m, "name"); err != nil {
		return nil, err
	}
	if c.URL, err = stringField(section, m, "url"); err != nil {
		return nil, err
	}
	if c.Issuer, err = stringField(section, m, "issuer"); err != nil {
		return nil, err
	}
	c.Date = dateField(m, "date")
	return checked(section, c)
}

// NewVolunteer constructs a validated volunteer entry.
func NewVolunteer(m normalize.Mapping) (*types.Volunteer, error) {
	const section = "volunteer"
	var err error
	v := &types.Volunteer{}
	if v.Organization, err = stringField(section, m, "organization"); err != nil {
		return nil, err
	}
	if v.Position, err = stringField(section, m, "position"); err != nil {
		return nil, err
	}
	if v.Summary, err = stringField(section, m, "summary"); err != nil {
		return nil, err
	}
	if v.URL, err = stringField(section, m, "url"); err != nil {
		return nil, err
	}
	if v.Highlights, err = stringListField(section, m, "highlights"); err != nil {
		return nil, err
	}
	v.StartDate = dateField(m, "startdate")
	v.EndDate = dateField(m, "enddate")
	return checked(section, v)
}

// NewLanguage constructs a validated language entry.
func NewLanguage(m normalize.Mapping) (*types.Language, error) {
	const section = "languages"
	var err error
	l := &types.Language{}
	if l.Language, err = stringField(section, m, "language"); err != nil {
		return nil, err
	}
	if l.Fluency, err = stringField(section, m, "fluency"); err != nil {
		return nil, err
	}
	return checked(section, l)
}

// NewInterest constructs a validated interest entry.
func NewInterest(m normalize.Mapping) (*types.Interest, error) {
	const section = "interests"
	name, err := stringField(section, m, "name")
	if err != nil {
		return nil, err
	}
	return checked(section, &types.Interest{Name: name})
}

// NewReference constructs a validated reference entry.
func NewReference(m normalize.Mapping) (*types.Reference, error) {
	const section = "references"
	var err error
	r := &types.Reference{}
	if r.Name, err = stringField(section, m, "name"); err != nil {
		return nil, err
	}
	if r.Reference, err = stringField(section, m, "reference"); err != nil {
		return nil, err
	}
	return checked(section, r)
}

// NewProfile constructs a validated profile entry for the basics section.
func NewProfile(m normalize.Mapping) (*types.Profile, error) {
	const section = "profiles"
	var err error
	p := &types.Profile{}
	if p.URL, err = stringField(section, m, "url"); err != nil {
		return nil, err
	}
	if p.Username, err = stringField(section, m, "username"); err != nil {
		return nil, err
	}
	if p.Network, err = stringField(section, m, "network"); err != nil {
		return nil, err
	}
	return checked(section, p)
}

// NewLocation constructs a validated location for the basics section.
func NewLocation(m normalize.Mapping) (*types.Location, error) {
	const section = "location"
	var err error
	l := &types.Location{}
	if l.City, err = stringField(section, m, "city"); err != nil {
		return nil, err
	}
	if l.Address, err = stringField(section, m, "address"); err != nil {
		return nil, err
	}
	if l.Region, err = stringField(section, m, "region"); err != nil {
		return nil, err
	}
	if l.CountryCode, err = stringField(section, m, "countrycode"); err != nil {
		return nil, err
	}
	if l.PostalCode, err = stringField(section, m, "postalcode"); err != nil {
		return nil, err
	}
	return checked(section, l)
}
