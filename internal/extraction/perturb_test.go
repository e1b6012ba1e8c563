package extraction

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleText() string {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("line with enough characters to matter for offsets\n")
	}
	return sb.String()
}

func TestPerturbTextVariants(t *testing.T) {
	text := sampleText()
	seen := make(map[string]bool)

	for seed := int64(0); seed < 300; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out, tag := PerturbText(text, rng)

		switch {
		case strings.HasPrefix(tag, "p1-"):
			seen["p1"] = true
			assert.LessOrEqual(t, len(out), 4000)
			assert.True(t, strings.HasPrefix(text, out), "truncation keeps a prefix of the input")
		case strings.HasPrefix(tag, "p2-"):
			seen["p2"] = true
			assert.Len(t, strings.Split(out, "\n"), len(strings.Split(text, "\n")), "shuffling preserves the line count")
		case tag == "p3":
			seen["p3"] = true
			assert.NotContains(t, out, "\n", "head-drop variant flattens newlines")
			assert.Len(t, out, len(text)-300)
		case tag == "n":
			seen["n"] = true
			assert.Equal(t, text, out)
		default:
			t.Fatalf("unexpected variant tag %q", tag)
		}
	}

	for _, variant := range []string{"p1", "p2", "p3", "n"} {
		assert.True(t, seen[variant], "variant %s never drawn across 300 seeds", variant)
	}
}

func TestPerturbTextTruncateClampsToLength(t *testing.T) {
	short := "tiny resume\nwith two lines"
	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out, tag := PerturbText(short, rng)
		if strings.HasPrefix(tag, "p1-") {
			assert.Equal(t, short, out, "offsets beyond the text clamp to its length")
			return
		}
	}
	t.Fatal("no truncation draw in 100 seeds")
}

func TestPerturbTextShuffleKeepsHead(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	text := strings.Join(lines, "\n")

	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out, tag := PerturbText(text, rng)
		if !strings.HasPrefix(tag, "p2-") {
			continue
		}
		// 100 lines / 4 = 25, capped at 20 kept in place.
		assert.Equal(t, "p2-20", tag)
		assert.Equal(t, lines[:20], strings.Split(out, "\n")[:20])
		return
	}
	t.Fatal("no shuffle draw in 200 seeds")
}

func TestPerturbTextHeadDropEmptiesShortText(t *testing.T) {
	short := "brief resume\nunder three hundred characters"
	for seed := int64(0); seed < 300; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out, tag := PerturbText(short, rng)
		if tag == "p3" {
			assert.Empty(t, out, "dropping the head of a short text leaves nothing")
			return
		}
	}
	t.Fatal("no head-drop draw in 300 seeds")
}

func TestPerturbTextKeepsValidUTF8(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("résumé línes with multi-byte rünes\n")
	}
	text := sb.String()

	for seed := int64(0); seed < 300; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out, tag := PerturbText(text, rng)
		assert.True(t, utf8.ValidString(out), "variant %s produced invalid UTF-8", tag)
	}
}

func TestPerturbTextReproducible(t *testing.T) {
	text := sampleText()
	outA, tagA := PerturbText(text, rand.New(rand.NewSource(17)))
	outB, tagB := PerturbText(text, rand.New(rand.NewSource(17)))
	require.Equal(t, tagA, tagB)
	assert.Equal(t, outA, outB)
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json untouched", `{"basics": {}}`, `{"basics": {}}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence with language line", "```json5\n{\"a\": 1}\n```", `{"a": 1}`},
		{"jsonc fence", "```jsonc\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json fence content on same line", "```json {\"a\": 1}```", `{"a": 1}`},
		{"bare fence without language", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n ", `{"a": 1}`},
		{"fence content starting with brace kept", "```{\"a\": 1}```", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
