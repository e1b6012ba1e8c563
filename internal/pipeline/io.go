package pipeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-synth/internal/deserialize"
	"github.com/jonathan/resume-synth/internal/normalize"
	"github.com/jonathan/resume-synth/internal/render"
	"github.com/jonathan/resume-synth/internal/types"
)

// WriteResumes persists deserialized resumes as one plain-mapping JSON object
// per line, the intermediate form between the deserialize and render stages.
func WriteResumes(path string, resumes []*types.Resume) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	for i, resume := range resumes {
		if err := enc.Encode(render.Serialize(resume)); err != nil {
			return fmt.Errorf("encoding resume %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// LoadResumes reads the intermediate form back into typed resumes. The plain
// mappings re-enter through the same normalization and deserialization used
// for raw records, so both stages accept either representation.
func LoadResumes(path string) ([]*types.Resume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var resumes []*types.Resume
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("decoding line %d: %w", line, err)
		}
		mapping, ok := normalize.FromAny(decoded).(normalize.Mapping)
		if !ok {
			return nil, fmt.Errorf("line %d: expected a mapping", line)
		}
		resume, _ := deserialize.Deserialize(normalize.ParseDates(mapping))
		if resume == nil {
			return nil, fmt.Errorf("line %d: invalid resume", line)
		}
		resumes = append(resumes, resume)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading resumes: %w", err)
	}
	return resumes, nil
}
