// Package pipeline provides the high-level orchestration for the corpus
// generation process: raw extraction dump in, rendered training corpus out.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-synth/internal/corpus"
	"github.com/jonathan/resume-synth/internal/deserialize"
	"github.com/jonathan/resume-synth/internal/normalize"
	"github.com/jonathan/resume-synth/internal/observability"
	"github.com/jonathan/resume-synth/internal/postprocess"
	"github.com/jonathan/resume-synth/internal/render"
	"github.com/jonathan/resume-synth/internal/types"
)

// Options holds configuration for running the pipeline.
type Options struct {
	InputPath   string
	OutputPath  string
	TemplateDir string
	MinLength   int
	Workers     int
	Seed        int64
	EnglishOnly bool
	DatabaseURL string
	Reporter    *observability.Reporter
}

func (o *Options) reporter() *observability.Reporter {
	if o.Reporter == nil {
		o.Reporter = observability.NewReporter(os.Stdout, false)
	}
	return o.Reporter
}

// RunDeserialize executes stages 1-5: read the raw dump, dedup, normalize,
// deserialize and post-process. Returns the valid resumes in input order.
func RunDeserialize(ctx context.Context, opts *Options) ([]*types.Resume, error) {
	rep := opts.reporter()

	rep.Stepf("Step 1/3: Reading raw records from %s...", opts.InputPath)
	f, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	records, err := normalize.ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	rep.Count("records_read", len(records))

	records = normalize.Dedup(records)
	rep.Count("records_after_dedup", len(records))
	rep.Stepf("Step 2/3: Deduplicated to %d records...", len(records))

	var resumes []*types.Resume
	dropped := 0
	for i := range records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mapping := normalize.Prepare(&records[i], opts.EnglishOnly)
		if mapping == nil {
			dropped++
			continue
		}

		resume, counts := deserialize.Deserialize(mapping)
		rep.MergeFailures(counts)
		if resume == nil {
			dropped++
			continue
		}

		if !postprocess.Apply(resume, postprocess.Options{}) {
			dropped++
			continue
		}
		resumes = append(resumes, resume)
	}

	rep.Count("records_dropped", dropped)
	rep.Count("resumes_valid", len(resumes))
	rep.Stepf("Step 3/3: %d valid resumes (%d dropped).", len(resumes), dropped)
	rep.PrintErrorCounts()
	return resumes, nil
}

// RunRender executes stages 6-9: sample configurations, render, gate by
// length, harmonize and persist the corpus.
func RunRender(ctx context.Context, resumes []*types.Resume, opts *Options) (corpus.Stats, error) {
	rep := opts.reporter()

	rep.Stepf("Step 1/3: Loading templates from %s...", opts.TemplateDir)
	engine, err := render.NewDirEngine(opts.TemplateDir)
	if err != nil {
		return corpus.Stats{}, err
	}

	builder := corpus.NewBuilder(render.NewRenderer(engine))
	builder.MinLength = opts.MinLength
	builder.Workers = opts.Workers
	builder.Seed = opts.Seed

	rep.Stepf("Step 2/3: Rendering %d resumes...", len(resumes))
	samples, stats, err := builder.Build(ctx, resumes)
	if err != nil {
		return stats, fmt.Errorf("building corpus: %w", err)
	}
	rep.Count("renders_culled", stats.Culled)
	rep.Count("renders_extra", stats.Extra)
	rep.Count("samples_written", stats.Samples)

	rep.Stepf("Step 3/3: Writing %d samples to %s...", len(samples), opts.OutputPath)
	if err := corpus.WriteJSONLFile(opts.OutputPath, samples); err != nil {
		return stats, err
	}

	if opts.DatabaseURL != "" {
		if err := persistCorpus(ctx, opts, samples, stats); err != nil {
			rep.Stepf("Warning: Failed to persist corpus to database: %v", err)
			rep.Stepf("Continuing with file output only...")
		}
	}

	rep.PrintSectionCoverage(corpus.SectionCoverage(resumes), 0)
	return stats, nil
}

// Run executes the full pipeline end to end.
func Run(ctx context.Context, opts *Options) error {
	resumes, err := RunDeserialize(ctx, opts)
	if err != nil {
		return err
	}
	stats, err := RunRender(ctx, resumes, opts)
	if err != nil {
		return err
	}
	rep := opts.reporter()
	rep.PrintBatchSummary("CORPUS BUILD SUMMARY")
	rep.Stepf("Done! %d samples written to %s.", stats.Samples, opts.OutputPath)
	return nil
}

// persistCorpus stores the batch in PostgreSQL when a database is configured.
func persistCorpus(ctx context.Context, opts *Options, samples []corpus.Sample, stats corpus.Stats) error {
	rep := opts.reporter()

	store, err := corpus.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	batchID, err := store.CreateBatch(ctx, opts.InputPath, stats)
	if err != nil {
		return err
	}
	rep.Verbosef("[VERBOSE] Created corpus batch: %s", batchID)

	if err := store.SaveSamples(ctx, batchID, samples); err != nil {
		if completeErr := store.CompleteBatch(ctx, batchID, "failed"); completeErr != nil {
			rep.Stepf("Warning: Failed to mark batch as failed: %v", completeErr)
		}
		return err
	}
	return store.CompleteBatch(ctx, batchID, "completed")
}
