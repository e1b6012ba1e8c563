package pipeline

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/jonathan/resume-synth/internal/normalize"
	"github.com/jonathan/resume-synth/internal/types"
)

// DefaultSamplePerSection caps how many records each section contributes to a
// dev sample.
const DefaultSamplePerSection = 100

// SampleDevData extracts a small slice of the raw dump that still covers
// every section: for each section, up to perSection deduplicated records
// carrying that section are drawn at random and written out verbatim.
func SampleDevData(inputPath, outputPath string, perSection int, seed int64, rep interface{ Stepf(string, ...any) }) error {
	if perSection <= 0 {
		perSection = DefaultSamplePerSection
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	records := make([]normalize.Record, 0, len(lines))
	for i, line := range lines {
		rec, err := normalize.ParseRecord(line, i)
		if err != nil {
			continue
		}
		records = append(records, *rec)
	}
	records = normalize.Dedup(records)

	flattened := make([]normalize.Mapping, len(records))
	for i := range records {
		flattened[i], _ = normalize.Flatten(records[i].Data).(normalize.Mapping)
	}

	sections := append([]string{"basics"}, types.SectionNames...)
	rng := rand.New(rand.NewSource(seed))
	picked := make(map[int]struct{})
	var sample []int
	for _, section := range sections {
		var candidates []int
		for i := range records {
			if flattened[i] != nil && normalize.IsTruthy(flattened[i][section]) {
				candidates = append(candidates, records[i].Index)
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		n := min(len(candidates), perSection)
		rep.Stepf("Sampling %d records for %s...", n, section)
		for _, idx := range candidates[:n] {
			if _, seen := picked[idx]; seen {
				continue
			}
			picked[idx] = struct{}{}
			sample = append(sample, idx)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	bw := bufio.NewWriter(out)
	for _, idx := range sample {
		bw.Write(lines[idx])
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return err
	}
	rep.Stepf("Wrote %d sample records to %s.", len(sample), outputPath)
	return out.Close()
}
