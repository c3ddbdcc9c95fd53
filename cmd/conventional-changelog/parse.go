package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/tomavic/conventional-changelog/pkg/commitparser"
)

var (
	parseSeparator string
	parseStrict    bool
	parseCompact   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse commit messages into structured JSON",
	Long: `Parse commit messages from files or stdin and print them as JSON.

File arguments support glob patterns (including **). Each input may hold
multiple messages separated by the record separator, which matches the
output of 'git log --format="%B%n%n"' by default.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := resolveOptions()
		if err != nil {
			fatal("Invalid parser options", err)
		}

		records, err := collectRecords(args)
		if err != nil {
			fatal("Failed to read input", err)
		}

		stream, err := commitparser.NewStream(opts,
			commitparser.WithStrict(parseStrict),
			commitparser.WithWarningHandler(func(err error) {
				slog.Warn("skipping record", "error", err)
			}),
		)
		if err != nil {
			fatal("Failed to configure parser", err)
		}

		commits, err := stream.ProcessAll(records)
		if err != nil {
			fatal("Failed to parse", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		if parseCompact {
			// One commit per line (NDJSON).
			for _, commit := range commits {
				if err := encoder.Encode(commit); err != nil {
					fatal("Failed to encode JSON", err)
				}
			}
			return
		}

		encoder.SetIndent("", "  ")
		if err := encoder.Encode(commits); err != nil {
			fatal("Failed to encode JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseSeparator, "separator", commitparser.DefaultSeparator, "Record separator between messages")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Abort on the first record that fails to parse")
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false, "Print one JSON object per line instead of an array")
}

// collectRecords gathers raw commit messages from the file arguments, or
// from stdin when none are given.
func collectRecords(args []string) ([]string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return commitparser.SplitRecords(string(data), parseSeparator), nil
	}

	paths, err := expandGlobs(args)
	if err != nil {
		return nil, err
	}

	var records []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		records = append(records, commitparser.SplitRecords(string(data), parseSeparator)...)
	}
	return records, nil
}

// expandGlobs resolves glob patterns against the filesystem. A pattern that
// matches nothing is passed through as a literal path so that the read
// reports a useful error.
func expandGlobs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			paths = append(paths, pattern)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}
