package render

import (
	"regexp"

	"github.com/jonathan/resume-synth/internal/types"
)

var yearRe = regexp.MustCompile(`\b([0-9]{4})\b`)

// HarmonizeDates aligns the structured date labels with the granularity the
// rendered text actually exposes: when the layout is year-only, every
// date-bearing string in the plain mapping is reduced to its 4-digit year (or
// emptied when no year can be found). Mappings with other layouts pass
// through unchanged.
func HarmonizeDates(resumeJSON map[string]any, dateLayout string) map[string]any {
	if !types.IsYearOnly(dateLayout) {
		return resumeJSON
	}
	out, _ := reformatDates(resumeJSON).(map[string]any)
	return out
}

// reformatDates walks the plain value tree, rewriting date keys in mappings.
func reformatDates(obj any) any {
	switch v := obj.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = reformatDates(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = reformatDates(val)
		}
		for _, key := range types.DateKeys {
			if val, ok := out[key]; ok {
				if s, isString := val.(string); isString && s != "" {
					out[key] = yearRe.FindString(s)
				}
			}
		}
		return out
	default:
		return obj
	}
}
