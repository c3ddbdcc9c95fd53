package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tomavic/conventional-changelog/pkg/commitparser"
)

func TestListOrCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "sequence",
			input: `keywords: [BREAKING CHANGE, DEPRECATED]`,
			want:  []string{"BREAKING CHANGE", "DEPRECATED"},
		},
		{
			name:  "comma separated scalar",
			input: `keywords: "closes, fixes ,resolves"`,
			want:  []string{"closes", "fixes", "resolves"},
		},
		{
			name:  "empty items dropped",
			input: `keywords: "closes,,fixes,"`,
			want:  []string{"closes", "fixes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Keywords ListOrCSV `yaml:"keywords"`
			}
			if err := yaml.Unmarshal([]byte(tt.input), &doc); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual([]string(doc.Keywords), tt.want) {
				t.Errorf("got %v, want %v", doc.Keywords, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parser.yaml")
	content := `headerPattern: '^(\w+)\[([\w-]+)\] (.*)$'
headerCorrespondence: type, ticket, subject
referenceKeywords: [kills]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	opts, err := Load(path, commitparser.DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	commit, err := commitparser.Parse("fix[JIRA-1] repair the build\n\nKills #99", opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if v, _ := commit.Field("ticket"); v != "JIRA-1" {
		t.Errorf("ticket = %q, want JIRA-1", v)
	}
	if len(commit.References) != 1 || commit.References[0].Issue != "99" {
		t.Errorf("references = %+v, want #99", commit.References)
	}
	// Unset file fields keep the base defaults.
	if !reflect.DeepEqual(opts.NoteKeywords, []string{"BREAKING CHANGE"}) {
		t.Errorf("NoteKeywords = %v, want defaults", opts.NoteKeywords)
	}
}

func TestLoadInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parser.yaml")
	if err := os.WriteFile(path, []byte("headerPattern: '('\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path, commitparser.DefaultOptions()); err == nil {
		t.Error("Load should reject an invalid header pattern")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), commitparser.DefaultOptions()); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
