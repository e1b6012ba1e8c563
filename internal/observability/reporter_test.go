package observability

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-synth/internal/types"
)

func TestCounters(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, false)
	r.Count("records_read", 3)
	r.Count("records_read", 2)
	assert.Equal(t, 5, r.Counter("records_read"))
	assert.Equal(t, 0, r.Counter("unknown"))
}

func TestCountersConcurrent(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, false)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Count("records_read", 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1000, r.Counter("records_read"))
}

func TestMergeFailuresReturnsCopy(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, false)

	counts := types.NewSectionCounts()
	counts["work"] = 2
	r.MergeFailures(counts)
	counts["work"] = 100

	got := r.Failures()
	assert.Equal(t, 2, got["work"], "merged counts are copied, not aliased")

	got["work"] = 50
	assert.Equal(t, 2, r.Failures()["work"], "returned counts are a copy")
}

func TestVerbosef(t *testing.T) {
	var quiet bytes.Buffer
	NewReporter(&quiet, false).Verbosef("detail %d", 1)
	assert.Empty(t, quiet.String())

	var loud bytes.Buffer
	NewReporter(&loud, true).Verbosef("detail %d", 1)
	assert.Equal(t, "detail 1\n", loud.String())
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.Count("samples_written", 42)
	r.Count("records_read", 7)
	r.PrintBatchSummary("CORPUS BUILD SUMMARY")

	out := buf.String()
	assert.Contains(t, out, "CORPUS BUILD SUMMARY")
	assert.Contains(t, out, "samples_written")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintSectionCoverage(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.PrintSectionCoverage(map[string]int{"work": 30, "awards": 5}, 10)

	out := buf.String()
	assert.Contains(t, out, "SECTION COVERAGE")
	assert.Contains(t, out, "|||", "counts scale into bar characters")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, "awards")
}
