// Package render turns a cleaned resume and a sampled configuration into
// plain resume text, one template fragment per non-empty section composed by
// a top-level resume template.
package render

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-synth/internal/sampling"
	"github.com/jonathan/resume-synth/internal/types"
)

var blankLinesRe = regexp.MustCompile(`\n\n+`)

// Renderer renders resumes through an Engine. Deterministic: the same resume
// and config always produce the same text.
type Renderer struct {
	engine Engine
}

// NewRenderer wraps a template engine.
func NewRenderer(engine Engine) *Renderer {
	return &Renderer{engine: engine}
}

// RenderResume renders every non-empty section and composes the fragments
// with the configured resume template. Empty sections contribute empty
// fragments, which the resume templates drop.
func (r *Renderer) RenderResume(resume *types.Resume, cfg sampling.Config) (string, error) {
	basics, err := r.renderBasics(resume.Basics, cfg)
	if err != nil {
		return "", err
	}
	work, err := r.renderWork(resume.Work, cfg)
	if err != nil {
		return "", err
	}
	education, err := r.renderEducation(resume.Education, cfg)
	if err != nil {
		return "", err
	}
	skills, err := r.renderSkills(resume.Skills, cfg)
	if err != nil {
		return "", err
	}
	projects, err := r.renderProjects(resume.Projects, cfg)
	if err != nil {
		return "", err
	}
	publications, err := r.renderPublications(resume.Publications, cfg)
	if err != nil {
		return "", err
	}
	awards, err := r.renderAwards(resume.Awards, cfg)
	if err != nil {
		return "", err
	}
	certificates, err := r.renderCertificates(resume.Certificates, cfg)
	if err != nil {
		return "", err
	}
	volunteer, err := r.renderVolunteer(resume.Volunteer, cfg)
	if err != nil {
		return "", err
	}
	languages, err := r.renderLanguages(resume.Languages, cfg)
	if err != nil {
		return "", err
	}
	interests, err := r.renderInterests(resume.Interests, cfg)
	if err != nil {
		return "", err
	}
	references, err := r.renderReferences(resume.References, cfg)
	if err != nil {
		return "", err
	}

	return r.engine.Render(cfg.ResumeTemplate, map[string]any{
		"basics":       basics,
		"work":         work,
		"education":    education,
		"skills":       skills,
		"projects":     projects,
		"publications": publications,
		"awards":       awards,
		"certificates": certificates,
		"volunteer":    volunteer,
		"languages":    languages,
		"interests":    interests,
		"references":   references,
	})
}

// section wraps rendered items with the sampled section heading.
func (r *Renderer) section(cfg sampling.Config, name string, items []string) (string, error) {
	return r.engine.Render(cfg.SectionTemplate, map[string]any{
		"section_name": name,
		"items":        items,
	})
}

func (r *Renderer) renderBasics(basics *types.Basics, cfg sampling.Config) (string, error) {
	if basics == nil {
		return "", nil
	}
	location := map[string]any{}
	if basics.Location != nil {
		location = map[string]any{
			"city":        basics.Location.City,
			"address":     basics.Location.Address,
			"region":      basics.Location.Region,
			"countrycode": basics.Location.CountryCode,
			"postalcode":  basics.Location.PostalCode,
		}
	}
	return r.engine.Render(cfg.BasicsTemplate, map[string]any{
		"name":      basics.Name,
		"label":     basics.Label,
		"phone":     basics.Phone,
		"email":     basics.Email,
		"url":       basics.URL,
		"location":  location,
		"summary":   basics.Summary,
		"delimiter": cfg.SkillDelimiter,
	})
}

func (r *Renderer) renderWork(works []types.Work, cfg sampling.Config) (string, error) {
	if len(works) == 0 {
		return "", nil
	}
	items := make([]string, 0, len(works))
	for _, work := range works {
		item, err := r.engine.Render(cfg.WorkTemplate, map[string]any{
			"position":       strings.TrimSpace(work.Position),
			"name":           strings.TrimSpace(work.Name),
			"date_str":       dateRange(work.StartDate, work.EndDate, cfg),
			"work_delimiter": cfg.WorkDelimiter,
			"location":       work.Location,
			"summary":        work.Summary,
			"highlights":     work.Highlights,
			"bullet_prefix":  cfg.BulletPrefix,
		})
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return r.section(cfg, cfg.WorkSectionName, items)
}

func (r *Renderer) renderEducation(education []types.Education, cfg sampling.Config) (string, error) {
	if len(education) == 0 {
		return "", nil
	}
	items := make([]string, 0, len(education))
	for _, e := range education {
		item, err := r.engine.Render(cfg.EducationTemplate, map[string]any{
			"institution": e.Institution,
			"studytype":   e.StudyType,
			"area":        e.Area,
			"date_str":    dateRange(e.StartDate, e.EndDate, cfg),
		})
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return r.section(cfg, cfg.EducationSectionName, items)
}

// renderSkills joins skill names with the sampled delimiter and strips the
// trailing delimiter artifact the join leaves behind.
func (r *Renderer) renderSkills(skills []types.Skill, cfg sampling.Config) (string, error) {
	if len(skills) == 0 {
		return "", nil
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	content, err := r.engine.Render(cfg.SkillsTemplate, map[string]any{
		"section_name": cfg.SkillsSectionName,
		"skills":       names,
		"delimiter":    cfg.SkillDelimiter,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(content, cfg.SkillDelimiter), nil
}

func (r *Renderer) renderProjects(projects []types.Project, cfg sampling.Config) (string, error) {
	if len(projects) == 0 {
		return "", nil
	}
	items := make([]string, 0, len(projects))
	for _, p := range projects {
		item, err := r.engine.Render(cfg.ProjectsTemplate, map[string]any{
			"name":          p.Name,
			"date_str":      dateRange(p.StartDate, p.EndDate, cfg),
			"description":   p.Description,
			"highlights":    p.Highlights,
			"url":           p.URL,
			"bullet_prefix": cfg.BulletPrefix,
		})
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return r.section(cfg, cfg.ProjectSectionName, items)
}

func (r *Renderer) renderPublications(publications []types.Publication, cfg sampling.Config) (string, error) {
	if len(publications) == 0 {
		return "", nil
	}
	items := make([]string, 0, len(publications))
	for _, p := range publications {
		item, err := r.engine.Render(cfg.PublicationsTemplate, map[string]any{
			"name":      p.Name,
			"date_str":  singleDate(p.ReleaseDate, cfg.DateFormat),
			"publisher": p.Publisher,
			"url":       p.URL,
		})
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return r.section(cfg, cfg.PublicationsSectionName, items)
}

func (r *Renderer) renderAwards(awards []types.Award, cfg sampling.Config) (string, error) {
	if len(awards) == 0 {
		return "", nil
	}
	items := make([]string, 0, len(awards))
	for _, a := range awards {
		item, err := r.engine.Render(cfg.AwardsTemplate, map[string]any{
			"title":         a.Title,
			"bullet_prefix": cfg.BulletPrefix,
			"date_str":      singleDate(a.Date, cfg.DateFormat),
			"awarder":       a.Awarder,
			"summary":       a.Summary,
		})
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return r.section(cfg, cfg.AwardsSectionName, items)
}

// renderCertificates also squeezes runs of blank lines left by entries with
// absent optional fields.
func (r *Renderer) renderCertificates(certificates []types.Certificate, cfg sampling.Config) (string, error) {
	if len(certificates) == 0 {
		return "", nil
	}
	items := make([]string, 0, len(certificates))
	for _, c := range certificates {
		item, err := r.engine.Render(cfg.CertificatesTemplate, map[string]any{
			"name":     c.Name,
			"date_str": singleDate(c.Date, cfg.DateFormat),
			"issuer":   c.Issuer,
			"url":      c.URL,
		})
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	content, err := r.section(cfg, cfg.CertificatesSectionName, items)
	if err != nil {
		return "", err
	}
	return blankLinesRe.ReplaceAllString(content, "\n\n"), nil
}

func (r *Renderer) renderVolunteer(volunteers []types.Volunteer, cfg sampling.Config) (string, error) {
	if len(volunteers) == 0 {
		return "", nil
	}
	items := make([]string, 0, len(volunteers))
	for _, v := range volunteers {
		item, err := r.engine.Render(cfg.VolunteerTemplate, map[string]any{
			"position":      v.Position,
			"organization":  v.Organization,
			"date_str":      dateRange(v.StartDate, v.EndDate, cfg),
			"url":           v.URL,
			"summary":       v.Summary,
			"highlights":    v.Highlights,
			"bullet_prefix": cfg.BulletPrefix,
		})
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return r.section(cfg, cfg.VolunteerSectionName, items)
}

// renderLanguages strips the leading/trailing delimiter artifact and keeps a
// trailing newline.
func (r *Renderer) renderLanguages(languages []types.Language, cfg sampling.Config) (string, error) {
	if len(languages) == 0 {
		return "", nil
	}
	values := make([]map[string]any, 0, len(languages))
	for _, l := range languages {
		values = append(values, map[string]any{"language": l.Language, "fluency": l.Fluency})
	}
	content, err := r.engine.Render(cfg.LanguageTemplate, map[string]any{
		"section_name": cfg.LanguagesSectionName,
		"languages":    values,
		"delimiter":    cfg.SkillDelimiter,
	})
	if err != nil {
		return "", err
	}
	trimmed := strings.Trim(strings.TrimSpace(content), strings.TrimSpace(cfg.SkillDelimiter))
	return trimmed + "\n", nil
}

func (r *Renderer) renderInterests(interests []types.Interest, cfg sampling.Config) (string, error) {
	if len(interests) == 0 {
		return "", nil
	}
	names := make([]string, 0, len(interests))
	for _, i := range interests {
		names = append(names, i.Name)
	}
	content, err := r.engine.Render(cfg.InterestsTemplate, map[string]any{
		"section_name": cfg.InterestsSectionName,
		"interests":    names,
		"delimiter":    cfg.SkillDelimiter,
	})
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(content), strings.TrimSpace(cfg.SkillDelimiter)), nil
}

func (r *Renderer) renderReferences(references []types.Reference, cfg sampling.Config) (string, error) {
	if len(references) == 0 {
		return "", nil
	}
	values := make([]map[string]any, 0, len(references))
	for _, ref := range references {
		values = append(values, map[string]any{"name": ref.Name, "reference": ref.Reference})
	}
	return r.engine.Render(cfg.ReferencesTemplate, map[string]any{
		"section_name": cfg.ReferencesSectionName,
		"references":   values,
	})
}

// singleDate formats one optional date with the configured layout.
func singleDate(d *types.YearMonth, layout string) string {
	if d == nil {
		return ""
	}
	return d.Format(layout)
}

// dateRange formats a start/end pair: empty when both are absent, the end
// alone when only it exists, otherwise "start <delim> end-or-current".
func dateRange(start, end *types.YearMonth, cfg sampling.Config) string {
	if start == nil && end == nil {
		return ""
	}
	if start == nil {
		return end.Format(cfg.DateFormat)
	}
	endStr := cfg.CurrentLabel
	if end != nil {
		endStr = end.Format(cfg.DateFormat)
	}
	return start.Format(cfg.DateFormat) + " " + cfg.DateDelimiter + " " + endStr
}
