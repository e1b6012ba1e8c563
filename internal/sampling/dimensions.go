package sampling

// Dimension is one weighted categorical variable of the render configuration.
type Dimension struct {
	Name    string
	Choices []string
	Weights []float64
}

// Date format choices are Go time layouts; "2006" is year-only and triggers
// date harmonization downstream. "2006-01" appears twice on purpose, giving
// it double weight relative to the other numeric layouts.
var dimensions = map[string]Dimension{
	"date_fmt": {
		Name:    "date_fmt",
		Choices: []string{"2006", "2006-01", "Jan 2006", "January 2006", "2006/01", "2006.01", "2006-01", "2006•01"},
		Weights: []float64{0.1, 0.1, 0.2, 0.2, 0.1, 0.1, 0.1, 0.1},
	},
	"date_delimiter": {
		Name:    "date_delimiter",
		Choices: []string{"-", "~"},
		Weights: []float64{0.7, 0.3},
	},
	"work_delimiter": {
		Name:    "work_delimiter",
		Choices: []string{"|", "•", " "},
		Weights: []float64{0.6, 0.1, 0.3},
	},
	"skill_delimiter": {
		Name:    "skill_delimiter",
		Choices: []string{", ", " • ", " | "},
		Weights: []float64{0.4, 0.2, 0.4},
	},
	"bullet_prefix": {
		Name:    "bullet_prefix",
		Choices: []string{"", "  ", "- ", "• ", "> "},
		Weights: []float64{0.1, 0.3, 0.4, 0.1, 0.1},
	},
	"current_str": {
		Name:    "current_str",
		Choices: []string{"Present", "Current"},
		Weights: []float64{0.8, 0.2},
	},
	"education_section_name": {
		Name:    "education_section_name",
		Choices: []string{"Education", "Educational Background"},
		Weights: []float64{0.7, 0.3},
	},
	"work_section_name": {
		Name:    "work_section_name",
		Choices: []string{"Work Experience", "Work History", "Professional Experience", "Professional Background", "Career Summary"},
		Weights: []float64{0.4, 0.1, 0.3, 0.1, 0.1},
	},
	"interests_section_name": {
		Name:    "interests_section_name",
		Choices: []string{"Interests", "Hobbies", "Hobbies and Interests"},
		Weights: []float64{0.5, 0.3, 0.2},
	},
	"references_section_name": {
		Name:    "references_section_name",
		Choices: []string{"References", "Referees"},
		Weights: []float64{0.7, 0.3},
	},
	"languages_section_name": {
		Name:    "languages_section_name",
		Choices: []string{"Languages", "Language Proficiency", "Foreign Language Skills", "Linguistic Skills"},
		Weights: []float64{0.5, 0.2, 0.2, 0.1},
	},
	"volunteer_section_name": {
		Name:    "volunteer_section_name",
		Choices: []string{"Volunteer Experience", "Volunteering", "Community Involvement", "Pro Bono Service", "Unpaid Experience"},
		Weights: []float64{0.4, 0.1, 0.2, 0.1, 0.2},
	},
	"certificates_section_name": {
		Name:    "certificates_section_name",
		Choices: []string{"Certificates", "Credentials", "Professional Certificates"},
		Weights: []float64{0.4, 0.2, 0.4},
	},
	"awards_section_name": {
		Name:    "awards_section_name",
		Choices: []string{"Awards", "Recognition", "Honors", "Honours", "Achievements"},
		Weights: []float64{0.4, 0.1, 0.2, 0.1, 0.2},
	},
	"publications_section_name": {
		Name:    "publications_section_name",
		Choices: []string{"Publications", "Academic Publications", "Articles"},
		Weights: []float64{0.5, 0.2, 0.3},
	},
	"project_section_name": {
		Name:    "project_section_name",
		Choices: []string{"Projects", "Key Projects", "Portfolio", "Relevant Projects", "Key Initiatives"},
		Weights: []float64{0.5, 0.1, 0.2, 0.1, 0.1},
	},
	"skills_section_name": {
		Name:    "skills_section_name",
		Choices: []string{"Core Skills", "Skills", "Competencies", "Expertise", "Technical Skills"},
		Weights: []float64{0.2, 0.5, 0.1, 0.1, 0.1},
	},
	"resume_template": {
		Name:    "resume_template",
		Choices: []string{"resume_1.txt", "resume_2.txt", "resume_3.txt", "resume_4.txt"},
		Weights: []float64{0.25, 0.25, 0.25, 0.25},
	},
	"section_template": {
		Name:    "section_template",
		Choices: []string{"section.txt"},
		Weights: []float64{1.0},
	},
	"basics_template": {
		Name:    "basics_template",
		Choices: []string{"basics_1.txt", "basics_2.txt", "basics_3.txt", "basics_4.txt"},
		Weights: []float64{0.25, 0.25, 0.25, 0.25},
	},
	"work_template": {
		Name:    "work_template",
		Choices: []string{"work_1.txt", "work_2.txt", "work_3.txt", "work_4.txt"},
		Weights: []float64{0.25, 0.25, 0.25, 0.25},
	},
	"education_template": {
		Name:    "education_template",
		Choices: []string{"education_2.txt"},
		Weights: []float64{1.0},
	},
	"skills_template": {
		Name:    "skills_template",
		Choices: []string{"skills_1.txt"},
		Weights: []float64{1.0},
	},
	"projects_template": {
		Name:    "projects_template",
		Choices: []string{"project_1.txt", "project_2.txt"},
		Weights: []float64{0.5, 0.5},
	},
	"publications_template": {
		Name:    "publications_template",
		Choices: []string{"publication_1.txt", "publication_2.txt"},
		Weights: []float64{0.5, 0.5},
	},
	"awards_template": {
		Name:    "awards_template",
		Choices: []string{"award.txt"},
		Weights: []float64{1.0},
	},
	"certificates_template": {
		Name:    "certificates_template",
		Choices: []string{"certificate_1.txt", "certificate_2.txt"},
		Weights: []float64{0.5, 0.5},
	},
	"volunteer_template": {
		Name:    "volunteer_template",
		Choices: []string{"volunteer_1.txt", "volunteer_2.txt", "volunteer_3.txt"},
		Weights: []float64{0.4, 0.3, 0.3},
	},
	"language_template": {
		Name:    "language_template",
		Choices: []string{"language_1.txt", "language_2.txt", "language_3.txt"},
		Weights: []float64{0.4, 0.3, 0.3},
	},
	"interests_template": {
		Name:    "interests_template",
		Choices: []string{"interests.txt"},
		Weights: []float64{1.0},
	},
	"references_template": {
		Name:    "references_template",
		Choices: []string{"references.txt"},
		Weights: []float64{1.0},
	},
}

// Dimensions returns the distribution table keyed by dimension name.
func Dimensions() map[string]Dimension {
	out := make(map[string]Dimension, len(dimensions))
	for k, v := range dimensions {
		out[k] = v
	}
	return out
}
