package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-synth/internal/corpus"
	"github.com/jonathan/resume-synth/internal/observability"
)

const rawRecord = `{"user_id": "u1", "updated_ts": 10, "language": "en", "data": {` +
	`"basics": {"name": "jane doe", "email": "jane@example.com", ` +
	`"summary": "Engineer who has spent years building data systems and pipelines across several teams."}, ` +
	`"work": [{"position": "engineer", "name": "acme", "startdate": "2020-03-01", ` +
	`"highlights": ["built the ingestion pipeline", "led a small team"]}]}}`

func writeInput(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func testOptions(t *testing.T, inputPath string) *Options {
	t.Helper()
	templateDir, err := filepath.Abs(filepath.Join("..", "..", "templates"))
	require.NoError(t, err)
	if _, err := os.Stat(templateDir); err != nil {
		t.Skipf("template directory unavailable: %v", err)
	}
	return &Options{
		InputPath:   inputPath,
		OutputPath:  filepath.Join(t.TempDir(), "corpus.jsonl"),
		TemplateDir: templateDir,
		MinLength:   10,
		Workers:     2,
		Seed:        1,
		Reporter:    observability.NewReporter(&bytes.Buffer{}, false),
	}
}

func TestRunDeserialize(t *testing.T) {
	opts := testOptions(t, writeInput(t, rawRecord))

	resumes, err := RunDeserialize(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, resumes, 1)

	r := resumes[0]
	assert.Equal(t, "Jane Doe", r.Basics.Name, "names come out title-cased")
	require.Len(t, r.Work, 1)
	assert.Equal(t, 2020, r.Work[0].StartDate.Year)
	assert.Equal(t, 1, opts.Reporter.Counter("resumes_valid"))
}

func TestRunDeserializeDedupsAndDrops(t *testing.T) {
	older := strings.Replace(rawRecord, `"updated_ts": 10`, `"updated_ts": 5`, 1)
	noName := `{"user_id": "u2", "updated_ts": 1, "data": {"basics": {"email": "x@example.com"}, "work": [{"position": "dev", "name": "beta"}]}}`
	opts := testOptions(t, writeInput(t, rawRecord, older, noName))

	resumes, err := RunDeserialize(context.Background(), opts)
	require.NoError(t, err)
	assert.Len(t, resumes, 1, "duplicate user kept once, nameless record dropped")
	assert.Equal(t, 3, opts.Reporter.Counter("records_read"))
	assert.Equal(t, 2, opts.Reporter.Counter("records_after_dedup"))
	assert.Equal(t, 1, opts.Reporter.Counter("records_dropped"))
}

func TestRunDeserializeEnglishOnly(t *testing.T) {
	french := strings.Replace(
		strings.Replace(rawRecord, `"language": "en"`, `"language": "fr"`, 1),
		`"user_id": "u1"`, `"user_id": "u9"`, 1)
	opts := testOptions(t, writeInput(t, rawRecord, french))
	opts.EnglishOnly = true

	resumes, err := RunDeserialize(context.Background(), opts)
	require.NoError(t, err)
	assert.Len(t, resumes, 1)
}

func TestRunEndToEnd(t *testing.T) {
	opts := testOptions(t, writeInput(t, rawRecord))

	require.NoError(t, Run(context.Background(), opts))

	f, err := os.Open(opts.OutputPath)
	require.NoError(t, err)
	defer f.Close()

	samples, err := corpus.ReadJSONL(f)
	require.NoError(t, err)
	require.NotEmpty(t, samples)

	s := samples[0]
	assert.Contains(t, s.Text, "Acme", "work names render title-cased")
	assert.Contains(t, strings.ToLower(s.Text), "jane doe")
	assert.NotEmpty(t, s.TemplateConfig["resume_template"])

	basics := s.ResumeJSON["basics"].(map[string]any)
	assert.Equal(t, "Jane Doe", basics["name"])
	assert.Equal(t, 1, opts.Reporter.Counter("samples_written"))
}

func TestRunRenderCullsShortResumes(t *testing.T) {
	opts := testOptions(t, writeInput(t, rawRecord))
	opts.MinLength = 100000

	resumes, err := RunDeserialize(context.Background(), opts)
	require.NoError(t, err)

	stats, err := RunRender(context.Background(), resumes, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Culled)
	assert.Equal(t, 0, stats.Samples)
}

func TestWriteAndLoadResumes(t *testing.T) {
	opts := testOptions(t, writeInput(t, rawRecord))
	resumes, err := RunDeserialize(context.Background(), opts)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "resumes.jsonl")
	require.NoError(t, WriteResumes(path, resumes))

	loaded, err := LoadResumes(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Jane Doe", loaded[0].Basics.Name)
	require.Len(t, loaded[0].Work, 1)
	assert.Equal(t, "engineer", loaded[0].Work[0].Position, "post-processing title-cases only basics name and label")
	require.NotNil(t, loaded[0].Work[0].StartDate)
	assert.Equal(t, 2020, loaded[0].Work[0].StartDate.Year)
	assert.Nil(t, loaded[0].Work[0].EndDate, "empty date strings load back as absent")
}

func TestSampleDevData(t *testing.T) {
	withPublications := `{"user_id": "u3", "updated_ts": 3, "data": {` +
		`"basics": {"name": "sam roe"}, ` +
		`"work": [{"position": "writer", "name": "press"}], ` +
		`"publications": [{"name": "a paper"}]}}`
	inputPath := writeInput(t, rawRecord, withPublications)
	outputPath := filepath.Join(t.TempDir(), "sample.jsonl")

	rep := observability.NewReporter(&bytes.Buffer{}, false)
	require.NoError(t, SampleDevData(inputPath, outputPath, 10, 1, rep))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2, "each record is written once despite matching several sections")
	assert.Contains(t, string(data), `"u3"`, "the publications-bearing record is sampled")
}
