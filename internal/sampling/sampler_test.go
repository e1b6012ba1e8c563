package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomConfigDrawsFromPopulations(t *testing.T) {
	s := NewSampler(1)
	for i := 0; i < 50; i++ {
		cfg := s.RandomConfig()

		assert.Contains(t, dimensions["date_fmt"].Choices, cfg.DateFormat)
		assert.Contains(t, dimensions["date_delimiter"].Choices, cfg.DateDelimiter)
		assert.Contains(t, dimensions["work_delimiter"].Choices, cfg.WorkDelimiter)
		assert.Contains(t, dimensions["skill_delimiter"].Choices, cfg.SkillDelimiter)
		assert.Contains(t, dimensions["bullet_prefix"].Choices, cfg.BulletPrefix)
		assert.Contains(t, dimensions["current_str"].Choices, cfg.CurrentLabel)
		assert.Contains(t, dimensions["work_section_name"].Choices, cfg.WorkSectionName)
		assert.Contains(t, dimensions["resume_template"].Choices, cfg.ResumeTemplate)
		assert.Contains(t, dimensions["work_template"].Choices, cfg.WorkTemplate)
	}
}

func TestRandomConfigReproducible(t *testing.T) {
	a := NewSampler(7)
	b := NewSampler(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.RandomConfig(), b.RandomConfig(), "same seed must yield the same draws")
	}
}

func TestSingleChoiceDimensions(t *testing.T) {
	cfg := NewSampler(3).RandomConfig()
	assert.Equal(t, "section.txt", cfg.SectionTemplate)
	assert.Equal(t, "skills_1.txt", cfg.SkillsTemplate)
	assert.Equal(t, "education_2.txt", cfg.EducationTemplate)
	assert.Equal(t, "award.txt", cfg.AwardsTemplate)
	assert.Equal(t, "interests.txt", cfg.InterestsTemplate)
	assert.Equal(t, "references.txt", cfg.ReferencesTemplate)
}

func TestConfigMapRoundTrip(t *testing.T) {
	cfg := NewSampler(11).RandomConfig()

	m := cfg.ToMap()
	assert.Equal(t, cfg.DateFormat, m["date_fmt"])
	assert.Equal(t, cfg.WorkSectionName, m["work_section_name"])
	assert.NotContains(t, m, "env", "no engine handle in the persisted form")

	rebuilt, err := ConfigFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, cfg, rebuilt)
}

func TestWeightedRespectsDistribution(t *testing.T) {
	s := NewSampler(42)
	counts := make(map[string]int)
	for i := 0; i < 2000; i++ {
		counts[s.weighted(dimensions["current_str"])]++
	}
	assert.Greater(t, counts["Present"], counts["Current"], "an 80/20 split should favor Present")
	assert.Greater(t, counts["Current"], 0, "low-weight choices must still appear")
}
