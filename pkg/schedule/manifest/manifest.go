// Package manifest reads the list of downloaded timetable files.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
	"gopkg.in/yaml.v3"
)

// Entry describes one workbook: where it lives and which institute and
// course its groups belong to.
type Entry struct {
	InstituteID   string `yaml:"instituteId"`
	InstituteName string `yaml:"instituteName"`
	Form          string `yaml:"form"`
	LastChange    string `yaml:"lastChange"`
	Course        string `yaml:"course"`
	Path          string `yaml:"path"`
}

// Meta returns the group metadata attached to every sheet of the entry.
func (e Entry) Meta() models.GroupMeta {
	return models.GroupMeta{
		InstituteID:   e.InstituteID,
		InstituteName: e.InstituteName,
		Course:        e.Course,
	}
}

// Load reads a manifest file. JSON manifests (filedata.json) are accepted
// since YAML is a superset of JSON. Relative paths are resolved against
// the manifest's directory.
func Load(path string) ([]Entry, error) {
	return LoadRelativeTo(path, filepath.Dir(path))
}

// LoadRelativeTo is like Load but resolves relative workbook paths against
// base. An empty base leaves them relative to the working directory.
func LoadRelativeTo(path, base string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", schedule.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	for i, e := range entries {
		if e.Path == "" {
			return nil, fmt.Errorf("manifest %s: entry %d has no path", path, i)
		}
		if base != "" && !filepath.IsAbs(e.Path) {
			entries[i].Path = filepath.Join(base, e.Path)
		}
	}
	return entries, nil
}
