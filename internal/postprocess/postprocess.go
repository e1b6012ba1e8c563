// Package postprocess cleans a freshly deserialized resume for rendering:
// display-string normalization, bullet and newline cleanup, skill splitting,
// and the final validity gate.
package postprocess

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-synth/internal/types"
)

// NewlineStrategy controls what happens to newlines inside a highlight line.
type NewlineStrategy string

const (
	// NewlineBullet splits multi-line highlights into separate lines.
	NewlineBullet NewlineStrategy = "bullet"
	// NewlineSpace collapses internal newlines to single spaces.
	NewlineSpace NewlineStrategy = "space"
)

// Options configures the post-processing pass.
type Options struct {
	HighlightNewlines NewlineStrategy
}

var skillDelimiterRe = regexp.MustCompile(` [-\|] `)

// Apply mutates the resume in place and reports whether it survives the
// validity gate: basics with a non-empty name plus at least one of
// work, projects or volunteer.
func Apply(resume *types.Resume, opts Options) bool {
	if resume == nil {
		return false
	}
	if opts.HighlightNewlines == "" {
		opts.HighlightNewlines = NewlineBullet
	}

	resume.Basics = processBasics(resume.Basics)
	resume.Skills = processSkills(resume.Skills)
	for i := range resume.Projects {
		resume.Projects[i].Highlights = processHighlights(resume.Projects[i].Highlights, opts.HighlightNewlines)
	}
	for i := range resume.Work {
		resume.Work[i].Highlights = processHighlights(resume.Work[i].Highlights, opts.HighlightNewlines)
	}
	for i := range resume.Volunteer {
		resume.Volunteer[i].Highlights = processHighlights(resume.Volunteer[i].Highlights, opts.HighlightNewlines)
	}
	resume.Education = processEducation(resume.Education)
	resume.Interests = processInterests(resume.Interests)

	if resume.Basics == nil {
		return false
	}
	return len(resume.Work) > 0 || len(resume.Projects) > 0 || len(resume.Volunteer) > 0
}

// processHighlights strips leading bullets, drops emptied lines and applies
// the newline strategy so every highlight renders on its own line.
func processHighlights(highlights []string, strategy NewlineStrategy) []string {
	cleaned := make([]string, 0, len(highlights))
	for _, h := range highlights {
		h = StripLeadingBullet(strings.TrimSpace(h))
		if h != "" {
			cleaned = append(cleaned, h)
		}
	}
	if len(cleaned) == 0 {
		return highlights
	}

	switch strategy {
	case NewlineSpace:
		for i, h := range cleaned {
			cleaned[i] = strings.ReplaceAll(h, "\n", " ")
		}
		return cleaned
	case NewlineBullet:
		split := make([]string, 0, len(cleaned))
		for _, h := range cleaned {
			for _, line := range strings.Split(h, "\n") {
				if line != "" {
					split = append(split, line)
				}
			}
		}
		return split
	default:
		return cleaned
	}
}

// processEducation drops entries without an institution.
func processEducation(education []types.Education) []types.Education {
	kept := education[:0]
	for _, e := range education {
		if e.Institution != "" {
			kept = append(kept, e)
		}
	}
	return kept
}

// processInterests strips a leading bullet glyph from each interest name.
func processInterests(interests []types.Interest) []types.Interest {
	for i := range interests {
		interests[i].Name = StripLeadingBullet(interests[i].Name)
	}
	return interests
}

// processSkills drops unnamed skills and splits compound names like
// "Python - Go | Rust" into one entry per term, each inheriting the original
// level and keywords.
func processSkills(skills []types.Skill) []types.Skill {
	out := make([]types.Skill, 0, len(skills))
	for _, skill := range skills {
		if skill.Name == "" {
			continue
		}
		skill.Name = StripLeadingBullet(skill.Name)
		if !skillDelimiterRe.MatchString(skill.Name) {
			out = append(out, skill)
			continue
		}
		for _, term := range skillDelimiterRe.Split(skill.Name, -1) {
			term = CleanStrayBullets(term)
			out = append(out, types.Skill{Name: term, Level: skill.Level, Keywords: skill.Keywords})
		}
	}
	return out
}
