// Package observability provides the reporting sink the pipeline stages
// write their counters and verbose summaries to.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-synth/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// coverageBarFactor scales coverage counts into bar characters
	coverageBarFactor = 10
)

// Reporter accumulates batch counters and prints formatted summaries. Safe
// for concurrent use; stages receive it by injection rather than through a
// package-level singleton.
type Reporter struct {
	out     io.Writer
	verbose bool

	mu       sync.Mutex
	counters map[string]int
	failures types.SectionCounts
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{
		out:      out,
		verbose:  verbose,
		counters: make(map[string]int),
		failures: types.NewSectionCounts(),
	}
}

// Count adds n to a named batch counter.
func (r *Reporter) Count(name string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name] += n
}

// Counter returns the current value of a named counter.
func (r *Reporter) Counter(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name]
}

// MergeFailures folds per-record section validation failures into the batch
// totals. Merging is associative, so parallel shards can report in any order.
func (r *Reporter) MergeFailures(counts types.SectionCounts) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures.Merge(counts)
}

// Failures returns a copy of the accumulated per-section failure counts.
func (r *Reporter) Failures() types.SectionCounts {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := types.NewSectionCounts()
	out.Merge(r.failures)
	return out
}

// Stepf prints a progress line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (r *Reporter) Stepf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Verbosef prints a progress line only in verbose mode.
func (r *Reporter) Verbosef(format string, args ...any) {
	if r.verbose {
		r.Stepf(format, args...)
	}
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (r *Reporter) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(r.out, "┌%s┐\n", border)
	fmt.Fprintf(r.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(r.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(r.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(r.out, "└%s┘\n", border)
}

// PrintBatchSummary outputs the end-of-batch counters.
func (r *Reporter) PrintBatchSummary(title string) {
	r.mu.Lock()
	names := make([]string, 0, len(r.counters))
	for name := range r.counters {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%-28s %d\n", name, r.counters[name]))
	}
	r.mu.Unlock()

	r.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintErrorCounts outputs per-section validation failure totals.
func (r *Reporter) PrintErrorCounts() {
	failures := r.Failures()

	names := make([]string, 0, len(failures))
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%-28s %d\n", name, failures[name]))
	}
	r.printBox("VALIDATION FAILURES BY SECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSectionCoverage outputs a per-section coverage table with bars.
func (r *Reporter) PrintSectionCoverage(coverage map[string]int, factor int) {
	if factor <= 0 {
		factor = coverageBarFactor
	}

	names := make([]string, 0, len(coverage))
	for name := range coverage {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if coverage[names[i]] != coverage[names[j]] {
			return coverage[names[i]] > coverage[names[j]]
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	for _, name := range names {
		bars := strings.Repeat("|", coverage[name]/factor)
		sb.WriteString(fmt.Sprintf("%-14s %6d  %s\n", name, coverage[name], bars))
	}
	r.printBox("SECTION COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}
