package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/jonathan/resume-synth/internal/extraction"
	"github.com/jonathan/resume-synth/internal/observability"
)

// ExtractOptions holds configuration for the extraction stage.
type ExtractOptions struct {
	InputPath  string
	OutputPath string
	Perturb    bool
	Seed       int64
	Reporter   *observability.Reporter
}

func (o *ExtractOptions) reporter() *observability.Reporter {
	if o.Reporter == nil {
		o.Reporter = observability.NewReporter(os.Stdout, false)
	}
	return o.Reporter
}

// textRecord is one line of the free-text input: the resume text plus the
// metadata that the downstream record form carries through.
type textRecord struct {
	UserID    string  `json:"user_id"`
	UpdatedTS float64 `json:"updated_ts"`
	Text      string  `json:"text"`
}

// RunExtract turns a dump of free-text resumes into a raw extraction dump that
// the deserialize stage accepts. A failed extraction still emits a record with
// an empty data envelope, so one bad text never aborts a batch.
func RunExtract(ctx context.Context, extractor extraction.Extractor, opts *ExtractOptions) error {
	rep := opts.reporter()

	in, err := os.Open(opts.InputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)
	rng := rand.New(rand.NewSource(opts.Seed))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		line++

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var rec textRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decoding line %d: %w", line, err)
		}
		rep.Count("texts_read", 1)

		text := rec.Text
		variant := "n"
		if opts.Perturb {
			text, variant = extraction.PerturbText(text, rng)
		}

		data, usage, err := extractor.Extract(ctx, text)
		rep.Count("prompt_tokens", usage.PromptTokens)
		rep.Count("completion_tokens", usage.CompletionTokens)
		if err != nil {
			rep.Count("extraction_failures", 1)
			rep.Verbosef("[VERBOSE] Extraction failed for user %s: %v", rec.UserID, err)
		}

		if err := enc.Encode(map[string]any{
			"user_id":    rec.UserID,
			"updated_ts": rec.UpdatedTS,
			"variant":    variant,
			"data":       data,
		}); err != nil {
			return fmt.Errorf("encoding line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	rep.Stepf("Extracted %d texts (%d failures, %d tokens).",
		rep.Counter("texts_read"), rep.Counter("extraction_failures"),
		rep.Counter("prompt_tokens")+rep.Counter("completion_tokens"))
	return nil
}
