package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-synth/internal/types"
)

func validResume() *types.Resume {
	return &types.Resume{
		Basics: &types.Basics{Name: "jane doe"},
		Work: []types.Work{
			{Position: "engineer", Name: "acme"},
		},
	}
}

func TestApplyValidityGate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*types.Resume)
		expected bool
	}{
		{"name and work", func(r *types.Resume) {}, true},
		{"empty name rejected", func(r *types.Resume) { r.Basics.Name = "" }, false},
		{"nil basics rejected", func(r *types.Resume) { r.Basics = nil }, false},
		{"no work/projects/volunteer rejected", func(r *types.Resume) { r.Work = nil }, false},
		{"projects alone suffice", func(r *types.Resume) {
			r.Work = nil
			r.Projects = []types.Project{{Name: "tool"}}
		}, true},
		{"volunteer alone suffices", func(r *types.Resume) {
			r.Work = nil
			r.Volunteer = []types.Volunteer{{Organization: "org"}}
		}, true},
		{"education does not satisfy the gate", func(r *types.Resume) {
			r.Work = nil
			r.Education = []types.Education{{Institution: "school"}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResume()
			tt.mutate(r)
			assert.Equal(t, tt.expected, Apply(r, Options{}))
		})
	}
}

func TestApplyTitleCasesName(t *testing.T) {
	r := validResume()
	r.Basics.Label = "software engineer"
	require.True(t, Apply(r, Options{}))
	assert.Equal(t, "Jane Doe", r.Basics.Name)
	assert.Equal(t, "Software Engineer", r.Basics.Label)
}

func TestApplyClearsBadEmail(t *testing.T) {
	r := validResume()
	r.Basics.Email = "not-an-email"
	require.True(t, Apply(r, Options{}))
	assert.Empty(t, r.Basics.Email)

	r = validResume()
	r.Basics.Email = "jane@example.com"
	require.True(t, Apply(r, Options{}))
	assert.Equal(t, "jane@example.com", r.Basics.Email)
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ten digits", "(555) 123-4567", "555-123-4567"},
		{"seven digits", "1234567", "123-4567"},
		{"too short", "1234", ""},
		{"no digits", "call me", ""},
		{"punctuation stripped", "+1.555.123.4567", "1-555-123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhone(tt.input))
		})
	}
}

func TestProcessSkillsSplitsCompoundNames(t *testing.T) {
	skills := []types.Skill{
		{Name: "Python - Go | Rust", Level: "expert", Keywords: []string{"backend"}},
		{Name: "SQL"},
		{Name: ""},
	}

	out := processSkills(skills)
	require.Len(t, out, 4, "compound names split, empty names dropped")
	assert.Equal(t, "Python", out[0].Name)
	assert.Equal(t, "Go", out[1].Name)
	assert.Equal(t, "Rust", out[2].Name)
	assert.Equal(t, "SQL", out[3].Name)

	for _, s := range out[:3] {
		assert.Equal(t, "expert", s.Level, "level carries over to each split entry")
		assert.Equal(t, []string{"backend"}, s.Keywords, "keywords carry over to each split entry")
	}
}

func TestProcessHighlights(t *testing.T) {
	t.Run("bullet strategy re-splits newlines", func(t *testing.T) {
		out := processHighlights([]string{"• built a thing\ndid more", "", "- shipped it"}, NewlineBullet)
		assert.Equal(t, []string{"built a thing", "did more", "shipped it"}, out)
	})

	t.Run("space strategy collapses newlines", func(t *testing.T) {
		out := processHighlights([]string{"• built a thing\ndid more"}, NewlineSpace)
		assert.Equal(t, []string{"built a thing did more"}, out)
	})

	t.Run("all-empty highlights stay untouched", func(t *testing.T) {
		in := []string{"•", ""}
		out := processHighlights(in, NewlineBullet)
		assert.Equal(t, in, out)
	})
}

func TestStripLeadingBullet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"unicode bullet", "• led a team", "led a team"},
		{"dash", "- led a team", "led a team"},
		{"angle", "> led a team", "led a team"},
		{"plain text untouched", "led a team", "led a team"},
		{"only first glyph removed", "-- led", "- led"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripLeadingBullet(tt.input))
		})
	}
}

func TestCleanStrayBullets(t *testing.T) {
	assert.Equal(t, "writes  code", CleanStrayBullets("writes • code"))
	assert.Equal(t, "has  marker", CleanStrayBullets("has u2022 marker"))
}

func TestFilterProfiles(t *testing.T) {
	profiles := []types.Profile{
		{URL: "https://example.com", Network: "web"},
		{Network: "ghost"},
		{Username: "jane", Network: "chat"},
	}
	out := filterProfiles(profiles)
	require.Len(t, out, 2, "profiles without url and username are dropped")
	assert.Equal(t, "https://example.com", out[0].URL)
	assert.Equal(t, "jane", out[1].Username)
}

func TestProcessEducationRequiresInstitution(t *testing.T) {
	out := processEducation([]types.Education{
		{Institution: "MIT"},
		{Institution: ""},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "MIT", out[0].Institution)
}
