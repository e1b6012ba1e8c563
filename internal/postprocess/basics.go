package postprocess

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-synth/internal/types"
)

var (
	titleCaser = cases.Title(language.Und)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// TitleCase normalizes a display string to word-capitalized form.
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	return titleCaser.String(s)
}

// ValidEmail reports whether the address has a plausible mailbox shape.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// FormatPhone keeps only digits and regroups them with dashes, grouping all
// but the last digit in thousands and re-appending the last digit. Fewer than
// five digits is treated as unparseable and clears the field.
func FormatPhone(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.String()
	if len(n) < 5 {
		return ""
	}
	return groupThousands(n[:len(n)-1]) + n[len(n)-1:]
}

// groupThousands renders a digit string in dash-separated groups of three
// from the right, dropping leading zeros.
func groupThousands(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, "-")
}

// processBasics applies the basics transforms. Returns nil when the name is
// missing, which invalidates the whole resume.
func processBasics(b *types.Basics) *types.Basics {
	if b == nil || b.Name == "" {
		return nil
	}
	b.Name = TitleCase(b.Name)
	b.Label = TitleCase(b.Label)
	if b.Summary != "" {
		b.Summary = CleanStrayBullets(b.Summary)
	}
	if b.Email != "" && !ValidEmail(b.Email) {
		b.Email = ""
	}
	if b.Phone != "" {
		b.Phone = FormatPhone(b.Phone)
	}
	b.Profiles = filterProfiles(b.Profiles)
	return b
}

// filterProfiles drops profile entries that carry neither a url nor a
// username; they render as empty noise otherwise.
func filterProfiles(profiles []types.Profile) []types.Profile {
	if len(profiles) == 0 {
		return nil
	}
	kept := profiles[:0]
	for _, p := range profiles {
		if p.URL == "" && p.Username == "" {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
