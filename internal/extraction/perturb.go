package extraction

import (
	"fmt"
	"math/rand"
	"strings"
)

// PerturbText applies at most one of three mutations to exercise extraction
// robustness, each gated by its own fresh draw against a 0.3 threshold:
// truncate to a random offset, shuffle the tail lines, or drop the head and
// flatten newlines. Offsets count runes so a mutation never splits a UTF-8
// sequence. Returns the mutated text and a variant tag for logging.
func PerturbText(text string, rng *rand.Rand) (string, string) {
	if rng.Float64() < 0.3 {
		offsets := []int{2000, 3000, 4000}
		offset := offsets[rng.Intn(len(offsets))]
		runes := []rune(text)
		if len(runes) > offset {
			runes = runes[:offset]
		}
		return string(runes), fmt.Sprintf("p1-%d", offset)
	}
	if rng.Float64() < 0.3 {
		lines := strings.Split(text, "\n")
		offset := len(lines) / 4
		if offset > 20 {
			offset = 20
		}
		head := lines[:offset]
		tail := append([]string(nil), lines[offset:]...)
		rng.Shuffle(len(tail), func(i, j int) {
			tail[i], tail[j] = tail[j], tail[i]
		})
		return strings.Join(append(head, tail...), "\n"), fmt.Sprintf("p2-%d", offset)
	}
	if rng.Float64() < 0.3 {
		runes := []rune(text)
		if len(runes) > 300 {
			runes = runes[300:]
		} else {
			runes = nil
		}
		return strings.ReplaceAll(string(runes), "\n", " "), "p3"
	}
	return text, "n"
}
