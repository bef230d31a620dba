// Package ingest runs a full import: reset the store, extract every group
// sheet listed in a manifest and persist the results.
package ingest

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/manifest"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/parser"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/source"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/store"
	"golang.org/x/sync/errgroup"
)

// Failure records a file or sheet that could not be imported.
type Failure struct {
	File  string
	Group string
	Err   error
}

func (f Failure) String() string {
	if f.Group == "" {
		return fmt.Sprintf("%s: %v", f.File, f.Err)
	}
	return fmt.Sprintf("%s (%s): %v", f.Group, f.File, f.Err)
}

// Report summarizes a run.
type Report struct {
	RunID    string
	Files    int
	Groups   int
	Facts    int
	Warnings int
	Skipped  []string
	Failures []Failure

	mu sync.Mutex
}

func (r *Report) fail(f Failure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, f)
}

func (r *Report) done(facts, warnings int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Groups++
	r.Facts += facts
	r.Warnings += warnings
}

// Runner imports manifest entries into a store.
type Runner struct {
	store   store.Writer
	opts    schedule.Options
	logger  *log.Logger
	verbose bool
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(w store.Writer, opts schedule.Options, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{store: w, opts: opts, logger: logger}
}

// SetVerbose enables per-sheet progress and warning lines.
func (r *Runner) SetVerbose(v bool) {
	r.verbose = v
}

// Run resets the store and imports every entry. Sheets are extracted
// concurrently, bounded by Options.Workers. A failing file or sheet is
// reported and skipped; only a failed reset or a cancelled context
// returns an error.
func (r *Runner) Run(ctx context.Context, entries []manifest.Entry) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	r.logger.Printf("run %s: %d files", report.RunID, len(entries))

	if err := r.store.ResetAll(ctx); err != nil {
		return report, fmt.Errorf("reset store: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.opts.Workers, 1))

	for _, entry := range entries {
		if gctx.Err() != nil {
			break
		}

		sheets, err := source.Open(entry.Path)
		if err != nil {
			r.logger.Printf("skip file %s: %v", entry.Path, err)
			report.fail(Failure{File: entry.Path, Err: err})
			continue
		}
		report.Files++

		kept, skipped := source.FilterSheets(sheets, r.opts.Exclusions)
		report.mu.Lock()
		report.Skipped = append(report.Skipped, skipped...)
		report.mu.Unlock()

		for _, sheet := range kept {
			entry, sheet := entry, sheet
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				r.importSheet(gctx, entry, sheet, report)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].String() < report.Failures[j].String()
	})
	r.logger.Printf("run %s: %d groups, %d lessons, %d failed, %d skipped",
		report.RunID, report.Groups, report.Facts, len(report.Failures), len(report.Skipped))
	return report, nil
}

func (r *Runner) importSheet(ctx context.Context, entry manifest.Entry, sheet source.Sheet, report *Report) {
	group := strings.TrimSpace(sheet.Name)

	ex, err := schedule.ExtractGroupSchedule(group, sheet.Grid, r.opts.Layout)
	if err != nil {
		r.logger.Printf("skip group %s: %v", group, err)
		report.fail(Failure{File: entry.Path, Group: group, Err: err})
		return
	}

	for _, w := range ex.Warnings {
		// unknown weekday labels are always reported; per-row findings only when verbose
		if r.verbose || w.Kind == parser.UnrecognizedDayToken {
			r.logger.Printf("%s: %s", group, w)
		}
	}

	if err := persist(ctx, r.store, entry.Meta(), ex); err != nil {
		r.logger.Printf("store group %s: %v", group, err)
		report.fail(Failure{File: entry.Path, Group: group, Err: err})
		return
	}

	if r.verbose {
		r.logger.Printf("%s: %d days, %d lessons, %d warnings",
			group, len(ex.Schedule), len(ex.Facts), len(ex.Warnings))
	}
	report.done(len(ex.Facts), len(ex.Warnings))
}

// persist writes one group's results: metadata, schedule document, then facts.
func persist(ctx context.Context, w store.Writer, meta models.GroupMeta, ex *schedule.Extraction) error {
	if err := w.UpsertGroupMeta(ctx, ex.Group, meta); err != nil {
		return err
	}
	if err := w.ReplaceSchedule(ctx, ex.Group, ex.Schedule); err != nil {
		return err
	}
	return w.InsertLessonFacts(ctx, ex.Facts)
}
