// Package cliconfig loads parser options from YAML files and flag values
// for the command line front end.
package cliconfig

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tomavic/conventional-changelog/pkg/commitparser"
)

// File is the YAML shape of an options file. Every field is optional;
// unset fields keep the value from the base options.
type File struct {
	HeaderPattern        string    `yaml:"headerPattern"`
	HeaderCorrespondence ListOrCSV `yaml:"headerCorrespondence"`
	NoteKeywords         ListOrCSV `yaml:"noteKeywords"`
	ReferenceKeywords    ListOrCSV `yaml:"referenceKeywords"`
	IssuePrefixes        ListOrCSV `yaml:"issuePrefixes"`
}

// ListOrCSV accepts either a YAML sequence or a comma-separated scalar,
// so both of these work:
//
//	noteKeywords: [BREAKING CHANGE, DEPRECATED]
//	noteKeywords: "BREAKING CHANGE,DEPRECATED"
type ListOrCSV []string

func (l *ListOrCSV) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	case yaml.ScalarNode:
		*l = SplitCSV(value.Value)
		return nil
	default:
		return fmt.Errorf("expected a list or a comma-separated string, got %s", value.Tag)
	}
}

// SplitCSV splits a comma-separated value, trimming whitespace and dropping
// empty items.
func SplitCSV(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// Load reads a YAML options file and overlays it on base.
func Load(path string, base *commitparser.Options) (*commitparser.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return f.Apply(base)
}

// Apply overlays the file's settings on a copy of base.
func (f *File) Apply(base *commitparser.Options) (*commitparser.Options, error) {
	opts := *base

	if f.HeaderPattern != "" {
		re, err := regexp.Compile(f.HeaderPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid header pattern: %w", err)
		}
		opts.HeaderPattern = re
	}
	if len(f.HeaderCorrespondence) > 0 {
		opts.HeaderCorrespondence = f.HeaderCorrespondence
	}
	if len(f.NoteKeywords) > 0 {
		opts.NoteKeywords = f.NoteKeywords
	}
	if len(f.ReferenceKeywords) > 0 {
		opts.ReferenceKeywords = f.ReferenceKeywords
	}
	if len(f.IssuePrefixes) > 0 {
		opts.IssuePrefixes = f.IssuePrefixes
	}
	return &opts, nil
}
