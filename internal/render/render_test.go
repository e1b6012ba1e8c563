package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-synth/internal/sampling"
	"github.com/jonathan/resume-synth/internal/types"
)

func testConfig() sampling.Config {
	cfg, _ := sampling.ConfigFromMap(map[string]string{
		"date_fmt":                  "Jan 2006",
		"date_delimiter":            "-",
		"skill_delimiter":           ", ",
		"work_delimiter":            "|",
		"bullet_prefix":             "- ",
		"current_str":               "Present",
		"education_section_name":    "Education",
		"work_section_name":         "Work Experience",
		"interests_section_name":    "Interests",
		"references_section_name":   "References",
		"languages_section_name":    "Languages",
		"volunteer_section_name":    "Volunteer Experience",
		"certificates_section_name": "Certificates",
		"awards_section_name":       "Awards",
		"publications_section_name": "Publications",
		"project_section_name":      "Projects",
		"skills_section_name":       "Skills",
		"resume_template":           "resume_1.txt",
		"section_template":          "section.txt",
		"basics_template":           "basics_1.txt",
		"work_template":             "work_1.txt",
		"education_template":        "education_2.txt",
		"skills_template":           "skills_1.txt",
		"projects_template":         "project_1.txt",
		"publications_template":     "publication_1.txt",
		"awards_template":           "award.txt",
		"certificates_template":     "certificate_1.txt",
		"volunteer_template":        "volunteer_1.txt",
		"language_template":         "language_1.txt",
		"interests_template":        "interests.txt",
		"references_template":       "references.txt",
	})
	return cfg
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	engine, err := NewDirEngine(templateDir(t))
	require.NoError(t, err)
	return NewRenderer(engine)
}

func templateDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "templates"))
	require.NoError(t, err)
	if _, err := os.Stat(dir); err != nil {
		t.Skipf("template directory unavailable: %v", err)
	}
	return dir
}

func ymPtr(year int, month time.Month) *types.YearMonth {
	return &types.YearMonth{Year: year, Month: month}
}

func TestDateRange(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		name     string
		start    *types.YearMonth
		end      *types.YearMonth
		expected string
	}{
		{"both absent", nil, nil, ""},
		{"end only", nil, ymPtr(2021, time.May), "May 2021"},
		{"start and end", ymPtr(2020, time.March), ymPtr(2021, time.May), "Mar 2020 - May 2021"},
		{"start only uses current token", ymPtr(2020, time.March), nil, "Mar 2020 - Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dateRange(tt.start, tt.end, cfg))
		})
	}
}

func TestRenderResume(t *testing.T) {
	r := newTestRenderer(t)
	cfg := testConfig()
	resume := &types.Resume{
		Basics: &types.Basics{Name: "Jane Doe", Email: "jane@example.com"},
		Work: []types.Work{{
			Position:   "Engineer",
			Name:       "acme",
			StartDate:  ymPtr(2020, time.March),
			Highlights: []string{"built the pipeline"},
		}},
		Skills: []types.Skill{{Name: "Go"}, {Name: "SQL"}},
	}

	text, err := r.RenderResume(resume, cfg)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Acme", "work names render title-cased")
	assert.Contains(t, text, "Mar 2020 - Present")
	assert.Contains(t, text, "Work Experience")
	assert.Contains(t, text, "- built the pipeline")
	assert.Contains(t, text, "Go, SQL")
	assert.NotContains(t, text, "Go, SQL,", "trailing skill delimiter is stripped")
	assert.NotContains(t, text, "Education", "empty sections leave no heading")
}

func TestRenderResumeDeterministic(t *testing.T) {
	r := newTestRenderer(t)
	cfg := testConfig()
	resume := &types.Resume{
		Basics: &types.Basics{Name: "Jane Doe"},
		Work:   []types.Work{{Position: "Engineer", Name: "Acme"}},
	}

	a, err := r.RenderResume(resume, cfg)
	require.NoError(t, err)
	b, err := r.RenderResume(resume, cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)
	cfg := testConfig()
	cfg.BasicsTemplate = "missing.txt"

	_, err := r.RenderResume(&types.Resume{Basics: &types.Basics{Name: "x"}}, cfg)
	require.Error(t, err)
	var tmplErr *TemplateError
	assert.ErrorAs(t, err, &tmplErr)
}
