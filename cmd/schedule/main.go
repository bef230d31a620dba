// Package main provides the CLI entry point for the schedule parser.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/ingest"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/manifest"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/output"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/parser"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/source"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configPath   string
	outputPath   string
	pretty       bool
	format       string
	sheetName    string
	manifestPath string
	pathsFromCWD bool
	dbPath       string
	workers      int
	dryRun       bool
	verbose      bool
	showLessons  bool
	showTeachers bool
	teacher      string
	fromRow      int
	toRow        int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Extract weekly class timetables from spreadsheet files",
		Long: `schedule reads group timetable sheets (one sheet per group, one workbook
per institute course), builds odd/even weekly schedules and lesson records,
and stores them in SQLite.`,
		SilenceUsage: true,
	}

	extractCmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract schedules from one workbook and print them",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	addConfigFlag(extractCmd.Flags())
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	extractCmd.Flags().StringVar(&format, "format", "json", "Output format: json or csv (lessons only)")
	extractCmd.Flags().StringVar(&sheetName, "sheet", "", "Only extract this sheet")

	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Rebuild the store from every workbook in a manifest",
		Args:  cobra.NoArgs,
		RunE:  runIngest,
	}
	addConfigFlag(ingestCmd.Flags())
	addDBFlag(ingestCmd.Flags())
	ingestCmd.Flags().StringVar(&manifestPath, "manifest", "filedata.json", "Manifest listing workbooks and their institutes")
	ingestCmd.Flags().BoolVar(&pathsFromCWD, "paths-from-cwd", false, "Resolve relative manifest paths from the working directory instead of the manifest's directory")
	ingestCmd.Flags().IntVar(&workers, "workers", 0, "Sheets extracted concurrently (default from config)")
	ingestCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Extract without writing to the database")
	ingestCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every group and warning")

	showCmd := &cobra.Command{
		Use:   "show [group]",
		Short: "Print stored groups, a group schedule, lessons or teachers",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	addDBFlag(showCmd.Flags())
	showCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	showCmd.Flags().BoolVar(&showLessons, "lessons", false, "Print lesson records instead of the schedule")
	showCmd.Flags().BoolVar(&showTeachers, "teachers", false, "Print the distinct teacher names")
	showCmd.Flags().StringVar(&teacher, "teacher", "", "Only lessons taught by this teacher")

	cellsCmd := &cobra.Command{
		Use:   "cells [input.xlsx]",
		Short: "Dump a sheet's non-empty cells by column letter",
		Args:  cobra.ExactArgs(1),
		RunE:  runCells,
	}
	cellsCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to dump (default: first sheet)")
	cellsCmd.Flags().IntVar(&fromRow, "from", 1, "First row to dump")
	cellsCmd.Flags().IntVar(&toRow, "to", 0, "Last row to dump (0: until the end)")
	cellsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(extractCmd, ingestCmd, showCmd, cellsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlag(fs *pflag.FlagSet) {
	fs.StringVarP(&configPath, "config", "c", "", "YAML file overriding the default layout and exclusions")
}

func addDBFlag(fs *pflag.FlagSet) {
	fs.StringVar(&dbPath, "db", "schedule.db", "SQLite database path")
}

func loadOptions() (schedule.Options, error) {
	if configPath == "" {
		return schedule.DefaultOptions(), nil
	}
	return schedule.LoadOptions(configPath)
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "schedule: ", log.LstdFlags)
}

func runExtract(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	sheets, err := source.Open(args[0])
	if err != nil {
		return err
	}
	if sheetName != "" {
		sheets = selectSheet(sheets, sheetName)
		if len(sheets) == 0 {
			return fmt.Errorf("sheet %q not found in %s", sheetName, args[0])
		}
	} else {
		sheets, _ = source.FilterSheets(sheets, opts.Exclusions)
	}

	logger := newLogger()
	var results []*schedule.Extraction
	for _, sheet := range sheets {
		ex, err := schedule.ExtractGroupSchedule(sheet.Name, sheet.Grid, opts.Layout)
		if err != nil {
			// one bad sheet does not stop the others
			logger.Printf("skip %s: %v", sheet.Name, err)
			continue
		}
		for _, w := range ex.Warnings {
			logger.Printf("%s: %s", sheet.Name, w)
		}
		results = append(results, ex)
	}

	return writeOutput(func(w io.Writer) error {
		switch format {
		case "json":
			data, err := output.ToJSON(results, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		case "csv":
			return output.WriteFactsCSV(w, collectFacts(results))
		default:
			return fmt.Errorf("invalid format: %s (must be json or csv)", format)
		}
	})
}

func runIngest(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if workers > 0 {
		opts.Workers = workers
	}

	var entries []manifest.Entry
	if pathsFromCWD {
		entries, err = manifest.LoadRelativeTo(manifestPath, "")
	} else {
		entries, err = manifest.Load(manifestPath)
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var st store.Store
	if dryRun {
		st = store.NewMemory()
	} else {
		st, err = store.OpenSQLite(ctx, dbPath)
		if err != nil {
			return err
		}
	}
	defer st.Close()

	logger := newLogger()
	runner := ingest.NewRunner(st, opts, logger)
	runner.SetVerbose(verbose)

	report, err := runner.Run(ctx, entries)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	for _, f := range report.Failures {
		logger.Printf("failed: %s", f)
	}
	fmt.Printf("%d groups, %d lessons, %d failed, %d skipped\n",
		report.Groups, report.Facts, len(report.Failures), len(report.Skipped))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	st, err := store.OpenSQLite(ctx, dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	var group string
	if len(args) == 1 {
		group = args[0]
	}

	var v interface{}
	switch {
	case showTeachers:
		v, err = st.Teachers(ctx)
	case showLessons || teacher != "":
		v, err = st.LessonFacts(ctx, store.LessonFilter{Group: group, Teacher: teacher})
	case group != "":
		v, err = st.Schedule(ctx, group)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no schedule stored for group %q", group)
		}
	default:
		v, err = st.Groups(ctx)
	}
	if err != nil {
		return err
	}

	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runCells(cmd *cobra.Command, args []string) error {
	sheets, err := source.Open(args[0])
	if err != nil {
		return err
	}
	if sheetName != "" {
		sheets = selectSheet(sheets, sheetName)
	}
	if len(sheets) == 0 {
		return fmt.Errorf("sheet %q not found in %s", sheetName, args[0])
	}

	rows := parser.ExtractCells(sheets[0].Grid, fromRow, toRow)
	data, err := output.ToJSON(rows, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func selectSheet(sheets []source.Sheet, name string) []source.Sheet {
	for _, s := range sheets {
		if s.Name == name {
			return []source.Sheet{s}
		}
	}
	return nil
}

func collectFacts(results []*schedule.Extraction) []models.LessonFact {
	var facts []models.LessonFact
	for _, ex := range results {
		facts = append(facts, ex.Facts...)
	}
	return facts
}

// writeOutput sends output to --output or stdout.
func writeOutput(write func(io.Writer) error) error {
	if outputPath == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
