package postprocess

import (
	"regexp"
	"strings"
)

// bulletClass covers the unicode glyphs and plain characters commonly used as
// bullet markers in extracted resume text.
const bulletClass = `\-\x{058A}\x{05BE}\x{1400}\x{1806}\x{2010}\x{2011}\x{2012}\x{2013}\x{2014}\x{2015}\x{2022}\x{2023}\x{2043}\x{204C}\x{204D}\x{2219}\x{25CB}\x{25CF}\x{25D8}\x{25E6}\x{261A}\x{261B}\x{261C}\x{261E}\x{2E17}\x{2E1A}\x{301C}\x{3030}\x{30A0}\x{FE31}\x{FE32}\x{FE58}\x{FE63}\x{FF0D}\*•>/\+`

var (
	leadingBulletRe = regexp.MustCompile(`^[` + bulletClass + `]`)
	anyBulletRe     = regexp.MustCompile(`[` + bulletClass + `]`)

	// Unicode code points sometimes survive extraction as literal text
	// ("u2022"); they are scrubbed alongside the real glyphs.
	textualBulletRe = regexp.MustCompile(`(u2022 t|u002D|u058A|u05BE|u1400|u1806|u2010|u2011|u2012|u2013|u2014|u2015|u2022|u2023|u2043|u204C|u204D|u2219|u25CB|u25CF|u25D8|u25E6|u261A|u261B|u261C|u261E|u2E17|u2E1A|u301C|u3030|u30A0|uFE31|uFE32|uFE58|uFE63|uFF0D)`)
)

// StripLeadingBullet removes a single bullet glyph at the start of a line and
// trims surrounding whitespace.
func StripLeadingBullet(text string) string {
	return strings.TrimSpace(leadingBulletRe.ReplaceAllString(text, ""))
}

// CleanStrayBullets removes bullet glyphs anywhere in the text, including
// code points that leaked through as literal "uXXXX" sequences.
func CleanStrayBullets(text string) string {
	t := anyBulletRe.ReplaceAllString(text, "")
	t = textualBulletRe.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}
