package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// YearMonth is a calendar date with month granularity. Day-of-month is not
// stored: upstream extraction is unreliable about days and nothing downstream
// renders them, so parsed dates are pinned to the first of the month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth builds a YearMonth from a full time.Time, discarding the day.
func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Time returns the date as a time.Time on the first of the month (UTC).
func (ym YearMonth) Time() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Format renders the date using a Go reference layout (e.g. "2006-01", "Jan 2006").
func (ym YearMonth) Format(layout string) string {
	return ym.Time().Format(layout)
}

// String returns the canonical "YYYY-MM" form.
func (ym YearMonth) String() string {
	return ym.Format("2006-01")
}

// IsYearOnly reports whether a date layout exposes no month component.
// Used to decide whether persisted labels must be truncated to the year.
func IsYearOnly(layout string) bool {
	return !strings.Contains(layout, "01") && !strings.Contains(layout, "Jan")
}

// MarshalJSON encodes the date as a "YYYY-MM" string.
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return json.Marshal(ym.String())
}

// UnmarshalJSON accepts "YYYY-MM" and "YYYY-MM-DD" strings; any day component
// is discarded.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseYearMonth(s)
	if err != nil {
		return err
	}
	*ym = *parsed
	return nil
}

// ParseYearMonth parses the canonical string forms produced by MarshalJSON.
func ParseYearMonth(s string) (*YearMonth, error) {
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			ym := NewYearMonth(t)
			return &ym, nil
		}
	}
	return nil, fmt.Errorf("invalid year-month string: %q", s)
}
