package normalize

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// maxLineBytes bounds a single JSONL line. Some extraction records carry very
// large nested payloads.
const maxLineBytes = 16 * 1024 * 1024

// Record is one raw extraction record as read from the line-delimited input.
type Record struct {
	UserID    string
	UpdatedTS float64
	Language  string
	Data      Mapping

	// Index is the zero-based position of the record in the input file.
	Index int
}

// ParseRecord decodes a single JSONL line into a Record. The data envelope is
// kept as an untyped value tree; metadata fields tolerate both string and
// numeric encodings.
func ParseRecord(line []byte, index int) (*Record, error) {
	var raw map[string]any
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode record %d: %w", index, err)
	}

	rec := &Record{Index: index}

	switch id := raw["user_id"].(type) {
	case string:
		rec.UserID = id
	case float64:
		rec.UserID = fmt.Sprintf("%.0f", id)
	}

	if ts, ok := raw["updated_ts"].(float64); ok {
		rec.UpdatedTS = ts
	}

	rec.Language = recordLanguage(raw)

	if data, ok := raw["data"]; ok && data != nil {
		if m, ok := FromAny(data).(Mapping); ok {
			rec.Data = m
		}
	}

	return rec, nil
}

// recordLanguage reads the language tag from the record, falling back to the
// upstream parser's original metadata.
func recordLanguage(raw map[string]any) string {
	if lang, ok := raw["language"].(string); ok {
		return lang
	}
	if pod, ok := raw["parser_original_data"].(map[string]any); ok {
		if lang, ok := pod["language"].(string); ok {
			return lang
		}
	}
	return ""
}

// ReadRecords reads all records from a line-delimited JSON stream. Blank lines
// are skipped; a malformed line fails the read, since corrupt input usually
// means the wrong file was supplied.
func ReadRecords(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []Record
	index := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		rec, err := ParseRecord(line, index)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

// Dedup keeps the most recently updated record per user id. Records are
// ordered by descending recency and the first occurrence of each id wins.
func Dedup(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedTS > sorted[j].UpdatedTS
	})

	seen := make(map[string]bool, len(sorted))
	out := make([]Record, 0, len(sorted))
	for _, rec := range sorted {
		if seen[rec.UserID] {
			continue
		}
		seen[rec.UserID] = true
		out = append(out, rec)
	}
	return out
}

// Prepare normalizes one record's data envelope: flatten wrapper envelopes,
// drop schema noise keys, and parse date strings. Returns nil when the record
// has no usable data (absent envelope, judged empty, or filtered by language).
func Prepare(rec *Record, englishOnly bool) Mapping {
	if rec.Data == nil {
		return nil
	}
	if englishOnly && rec.Language != "en" {
		return nil
	}

	flattened, ok := Flatten(rec.Data).(Mapping)
	if !ok {
		return nil
	}
	if IsEmpty(flattened) {
		return nil
	}
	return ParseDates(CleanSchema(flattened))
}
