// Package sampling draws randomized render configurations: date formats,
// delimiters, section headings and template choices, each from a weighted
// categorical distribution.
package sampling

import "encoding/json"

// Config is one sampled rendering configuration. Every field is drawn
// independently; the zero value is not usable, build one with
// Sampler.RandomConfig or ConfigFromMap. Date formats are Go time layouts.
type Config struct {
	DateFormat     string `json:"date_fmt"`
	DateDelimiter  string `json:"date_delimiter"`
	SkillDelimiter string `json:"skill_delimiter"`
	WorkDelimiter  string `json:"work_delimiter"`
	BulletPrefix   string `json:"bullet_prefix"`
	CurrentLabel   string `json:"current_str"`

	EducationSectionName    string `json:"education_section_name"`
	WorkSectionName         string `json:"work_section_name"`
	InterestsSectionName    string `json:"interests_section_name"`
	ReferencesSectionName   string `json:"references_section_name"`
	LanguagesSectionName    string `json:"languages_section_name"`
	VolunteerSectionName    string `json:"volunteer_section_name"`
	CertificatesSectionName string `json:"certificates_section_name"`
	AwardsSectionName       string `json:"awards_section_name"`
	PublicationsSectionName string `json:"publications_section_name"`
	ProjectSectionName      string `json:"project_section_name"`
	SkillsSectionName       string `json:"skills_section_name"`

	ResumeTemplate       string `json:"resume_template"`
	SectionTemplate      string `json:"section_template"`
	BasicsTemplate       string `json:"basics_template"`
	WorkTemplate         string `json:"work_template"`
	EducationTemplate    string `json:"education_template"`
	SkillsTemplate       string `json:"skills_template"`
	ProjectsTemplate     string `json:"projects_template"`
	PublicationsTemplate string `json:"publications_template"`
	AwardsTemplate       string `json:"awards_template"`
	CertificatesTemplate string `json:"certificates_template"`
	VolunteerTemplate    string `json:"volunteer_template"`
	LanguageTemplate     string `json:"language_template"`
	InterestsTemplate    string `json:"interests_template"`
	ReferencesTemplate   string `json:"references_template"`
}

// ToMap returns the config as a flat string map, the form persisted next to
// each rendered sample.
func (c Config) ToMap() map[string]string {
	raw, _ := json.Marshal(c)
	var generic map[string]string
	_ = json.Unmarshal(raw, &generic)
	return generic
}

// ConfigFromMap rebuilds a Config from its persisted map form. Unknown keys
// are ignored so older corpora stay loadable.
func ConfigFromMap(m map[string]string) (Config, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
