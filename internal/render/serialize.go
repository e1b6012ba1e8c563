package render

import (
	"github.com/jonathan/resume-synth/internal/types"
)

// serializedDateLayout is the structured-label date form persisted alongside
// each rendered sample; the harmonizer rewrites it when the rendered text
// exposes less granularity.
const serializedDateLayout = "2006-01"

// Serialize re-expresses a resume as plain nested mappings: absent fields
// become empty strings, dates become "2006-01" strings, a missing location
// becomes an all-empty mapping. This is the resume_json label stored with
// every rendered sample.
func Serialize(resume *types.Resume) map[string]any {
	basics := map[string]any{
		"name": "", "label": "", "email": "", "phone": "",
		"website": "", "url": "", "summary": "",
		"location": emptyLocation(),
		"profiles": []any{},
	}
	if resume.Basics != nil {
		b := resume.Basics
		basics["name"] = b.Name
		basics["label"] = b.Label
		basics["email"] = b.Email
		basics["phone"] = b.Phone
		basics["website"] = b.Website
		basics["url"] = b.URL
		basics["summary"] = b.Summary
		if b.Location != nil {
			basics["location"] = map[string]any{
				"city":        b.Location.City,
				"address":     b.Location.Address,
				"region":      b.Location.Region,
				"countrycode": b.Location.CountryCode,
				"postalcode":  b.Location.PostalCode,
			}
		}
	}

	work := make([]any, 0, len(resume.Work))
	for _, w := range resume.Work {
		work = append(work, map[string]any{
			"position":    w.Position,
			"name":        w.Name,
			"location":    w.Location,
			"description": w.Description,
			"summary":     w.Summary,
			"url":         w.URL,
			"highlights":  stringsToAny(w.Highlights),
			"startdate":   dateString(w.StartDate),
			"enddate":     dateString(w.EndDate),
		})
	}

	education := make([]any, 0, len(resume.Education))
	for _, e := range resume.Education {
		education = append(education, map[string]any{
			"institution": e.Institution,
			"area":        e.Area,
			"studytype":   e.StudyType,
			"url":         e.URL,
			"score":       e.Score,
			"startdate":   dateString(e.StartDate),
			"enddate":     dateString(e.EndDate),
		})
	}

	projects := make([]any, 0, len(resume.Projects))
	for _, p := range resume.Projects {
		projects = append(projects, map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"url":         p.URL,
			"highlights":  stringsToAny(p.Highlights),
			"startdate":   dateString(p.StartDate),
			"enddate":     dateString(p.EndDate),
		})
	}

	volunteer := make([]any, 0, len(resume.Volunteer))
	for _, v := range resume.Volunteer {
		volunteer = append(volunteer, map[string]any{
			"organization": v.Organization,
			"position":     v.Position,
			"summary":      v.Summary,
			"url":          v.URL,
			"highlights":   stringsToAny(v.Highlights),
			"startdate":    dateString(v.StartDate),
			"enddate":      dateString(v.EndDate),
		})
	}

	skills := make([]any, 0, len(resume.Skills))
	for _, s := range resume.Skills {
		skills = append(skills, map[string]any{
			"name":     s.Name,
			"level":    s.Level,
			"keywords": stringsToAny(s.Keywords),
		})
	}

	publications := make([]any, 0, len(resume.Publications))
	for _, p := range resume.Publications {
		publications = append(publications, map[string]any{
			"name":        p.Name,
			"publisher":   p.Publisher,
			"summary":     p.Summary,
			"url":         p.URL,
			"releasedate": dateString(p.ReleaseDate),
		})
	}

	languages := make([]any, 0, len(resume.Languages))
	for _, l := range resume.Languages {
		languages = append(languages, map[string]any{
			"language": l.Language,
			"fluency":  l.Fluency,
		})
	}

	awards := make([]any, 0, len(resume.Awards))
	for _, a := range resume.Awards {
		awards = append(awards, map[string]any{
			"title":   a.Title,
			"awarder": a.Awarder,
			"summary": a.Summary,
			"date":    dateString(a.Date),
		})
	}

	certificates := make([]any, 0, len(resume.Certificates))
	for _, c := range resume.Certificates {
		certificates = append(certificates, map[string]any{
			"name":   c.Name,
			"url":    c.URL,
			"issuer": c.Issuer,
			"date":   dateString(c.Date),
		})
	}

	references := make([]any, 0, len(resume.References))
	for _, ref := range resume.References {
		references = append(references, map[string]any{
			"name":      ref.Name,
			"reference": ref.Reference,
		})
	}

	interests := make([]any, 0, len(resume.Interests))
	for _, i := range resume.Interests {
		interests = append(interests, map[string]any{"name": i.Name})
	}

	return map[string]any{
		"basics":       basics,
		"work":         work,
		"education":    education,
		"projects":     projects,
		"volunteer":    volunteer,
		"skills":       skills,
		"publications": publications,
		"languages":    languages,
		"awards":       awards,
		"certificates": certificates,
		"references":   references,
		"interests":    interests,
	}
}

func emptyLocation() map[string]any {
	return map[string]any{
		"city": "", "address": "", "region": "", "countrycode": "", "postalcode": "",
	}
}

func dateString(d *types.YearMonth) string {
	if d == nil {
		return ""
	}
	return d.Format(serializedDateLayout)
}

func stringsToAny(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}
