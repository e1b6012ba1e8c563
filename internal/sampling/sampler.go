package sampling

import (
	"fmt"
	"math/rand"
)

// Sampler draws render configurations from the dimension table. Not safe for
// concurrent use; give each worker its own Sampler.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler seeded for reproducible draws.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// RandomConfig draws every dimension independently.
func (s *Sampler) RandomConfig() Config {
	return Config{
		DateFormat:     s.pick("date_fmt"),
		DateDelimiter:  s.pick("date_delimiter"),
		WorkDelimiter:  s.pick("work_delimiter"),
		SkillDelimiter: s.pick("skill_delimiter"),
		BulletPrefix:   s.pick("bullet_prefix"),
		CurrentLabel:   s.pick("current_str"),

		EducationSectionName:    s.pick("education_section_name"),
		WorkSectionName:         s.pick("work_section_name"),
		InterestsSectionName:    s.pick("interests_section_name"),
		ReferencesSectionName:   s.pick("references_section_name"),
		LanguagesSectionName:    s.pick("languages_section_name"),
		VolunteerSectionName:    s.pick("volunteer_section_name"),
		CertificatesSectionName: s.pick("certificates_section_name"),
		AwardsSectionName:       s.pick("awards_section_name"),
		PublicationsSectionName: s.pick("publications_section_name"),
		ProjectSectionName:      s.pick("project_section_name"),
		SkillsSectionName:       s.pick("skills_section_name"),

		ResumeTemplate:       s.pick("resume_template"),
		SectionTemplate:      s.pick("section_template"),
		BasicsTemplate:       s.pick("basics_template"),
		WorkTemplate:         s.pick("work_template"),
		EducationTemplate:    s.pick("education_template"),
		SkillsTemplate:       s.pick("skills_template"),
		ProjectsTemplate:     s.pick("projects_template"),
		PublicationsTemplate: s.pick("publications_template"),
		AwardsTemplate:       s.pick("awards_template"),
		CertificatesTemplate: s.pick("certificates_template"),
		VolunteerTemplate:    s.pick("volunteer_template"),
		LanguageTemplate:     s.pick("language_template"),
		InterestsTemplate:    s.pick("interests_template"),
		ReferencesTemplate:   s.pick("references_template"),
	}
}

func (s *Sampler) pick(name string) string {
	dim, ok := dimensions[name]
	if !ok {
		panic(fmt.Sprintf("sampling: unknown dimension %q", name))
	}
	return s.weighted(dim)
}

// weighted draws one choice proportionally to its weight.
func (s *Sampler) weighted(dim Dimension) string {
	total := 0.0
	for _, w := range dim.Weights {
		total += w
	}
	r := s.rng.Float64() * total
	for i, w := range dim.Weights {
		r -= w
		if r < 0 {
			return dim.Choices[i]
		}
	}
	return dim.Choices[len(dim.Choices)-1]
}
