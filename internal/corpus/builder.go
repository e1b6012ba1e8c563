package corpus

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-synth/internal/render"
	"github.com/jonathan/resume-synth/internal/sampling"
	"github.com/jonathan/resume-synth/internal/types"
)

// DefaultMinLength is the rendered-text length gate; shorter renders carry
// too little signal to train on.
const DefaultMinLength = 1000

// Stats summarizes one corpus build.
type Stats struct {
	Input   int
	Culled  int
	Extra   int
	Samples int
}

// Builder renders each resume under freshly sampled configurations and
// collects the retained samples.
type Builder struct {
	Renderer  *render.Renderer
	MinLength int
	Workers   int
	Seed      int64
}

// NewBuilder returns a builder with the default length gate and serial
// execution.
func NewBuilder(renderer *render.Renderer) *Builder {
	return &Builder{Renderer: renderer, MinLength: DefaultMinLength, Workers: 1}
}

// Build produces the corpus for a batch of post-processed resumes. Records
// are processed in parallel but emitted in input order; each record draws
// from its own seeded sampler so a run is reproducible for a fixed Seed.
func (b *Builder) Build(ctx context.Context, resumes []*types.Resume) ([]Sample, Stats, error) {
	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	minLength := b.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	perRecord := make([][]Sample, len(resumes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, resume := range resumes {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			samples, err := b.buildOne(resume, i, minLength)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			perRecord[i] = samples
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Input: len(resumes)}
	var out []Sample
	for _, samples := range perRecord {
		if samples == nil {
			stats.Culled++
			continue
		}
		if n := len(samples); n > 1 {
			stats.Extra += n - 1
		}
		out = append(out, samples...)
	}
	stats.Samples = len(out)
	return out, stats, nil
}

// buildOne renders a record once, applies the length gate, then adds the
// rarity-weighted re-renders. A nil return means the record was culled.
func (b *Builder) buildOne(resume *types.Resume, index, minLength int) ([]Sample, error) {
	sampler := sampling.NewSampler(b.Seed + int64(index))

	first, err := b.renderSample(resume, index, sampler)
	if err != nil {
		return nil, err
	}
	if len(first.Text) <= minLength {
		return nil, nil
	}

	samples := []Sample{first}
	for i := 0; i < extraRenders(resume); i++ {
		s, err := b.renderSample(resume, index, sampler)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func (b *Builder) renderSample(resume *types.Resume, index int, sampler *sampling.Sampler) (Sample, error) {
	cfg := sampler.RandomConfig()
	text, err := b.Renderer.RenderResume(resume, cfg)
	if err != nil {
		return Sample{}, err
	}
	resumeJSON := render.HarmonizeDates(render.Serialize(resume), cfg.DateFormat)
	return Sample{
		Text:           text,
		ResumeJSON:     resumeJSON,
		TemplateConfig: cfg.ToMap(),
		DateFormat:     cfg.DateFormat,
		SourceIndex:    index,
	}, nil
}

// extraRenders rebalances rare sections: re-render counts stack when a
// resume carries sections from several rarity tiers.
func extraRenders(r *types.Resume) int {
	n := 0
	if len(r.Publications) > 0 {
		n += 4
	}
	if len(r.Interests) > 0 || len(r.Projects) > 0 || len(r.Volunteer) > 0 || len(r.Awards) > 0 {
		n += 2
	}
	if len(r.Certificates) > 0 || len(r.Languages) > 0 {
		n += 1
	}
	return n
}
