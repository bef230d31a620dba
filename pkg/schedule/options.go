// Package schedule extracts weekly class timetables from spreadsheet sheets.
package schedule

import (
	"fmt"
	"os"
	"strings"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/parser"
	"gopkg.in/yaml.v3"
)

// Options configures an ingestion run.
type Options struct {
	// Layout is the column map applied to every sheet.
	Layout parser.Layout `yaml:"layout"`
	// Exclusions are case-insensitive sheet name substrings that are skipped.
	Exclusions []string `yaml:"exclusions"`
	// Workers bounds the number of sheets extracted concurrently.
	Workers int `yaml:"workers"`
}

// DefaultOptions returns the options used for the Kosygin university files.
func DefaultOptions() Options {
	return Options{
		Layout:     parser.DefaultLayout(),
		Exclusions: []string{"майнор", "уг_"},
		Workers:    4,
	}
}

// LoadOptions reads a YAML file on top of DefaultOptions.
// Fields missing from the file keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return opts, fmt.Errorf("read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid options %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks the layout and worker count.
func (o Options) Validate() error {
	if err := o.Layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", o.Workers)
	}
	for _, ex := range o.Exclusions {
		if strings.TrimSpace(ex) == "" {
			return fmt.Errorf("exclusions must not contain blank entries")
		}
	}
	return nil
}
