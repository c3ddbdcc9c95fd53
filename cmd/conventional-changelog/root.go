package main

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/tomavic/conventional-changelog/internal/cliconfig"
	"github.com/tomavic/conventional-changelog/pkg/commitparser"
)

var (
	verbose bool

	// Parser configuration, shared by parse and watch.
	configPath           string
	headerPattern        string
	headerCorrespondence string
	noteKeywords         string
	referenceKeywords    string
	issuePrefixes        string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "conventional-changelog",
	Short: "Parse free-text commit messages into structured records",
	Long: `conventional-changelog decomposes commit messages into header fields,
body, footer, notes (e.g. breaking changes) and issue references,
driven by a configurable header pattern and keyword lists.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file with parser options")
	rootCmd.PersistentFlags().StringVar(&headerPattern, "header-pattern", "", "Regexp applied to the header line")
	rootCmd.PersistentFlags().StringVar(&headerCorrespondence, "header-correspondence", "", "Comma-separated field names for the header capture groups")
	rootCmd.PersistentFlags().StringVar(&noteKeywords, "note-keywords", "", "Comma-separated keywords that open a note")
	rootCmd.PersistentFlags().StringVar(&referenceKeywords, "reference-keywords", "", "Comma-separated action verbs that introduce references")
	rootCmd.PersistentFlags().StringVar(&issuePrefixes, "issue-prefixes", "", "Comma-separated issue markers, e.g. '#,gh-'")
}

// resolveOptions layers the configuration sources: defaults, then the YAML
// config file, then individual flags.
func resolveOptions() (*commitparser.Options, error) {
	opts := commitparser.DefaultOptions()

	if configPath != "" {
		loaded, err := cliconfig.Load(configPath, opts)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}

	if headerPattern != "" {
		re, err := regexp.Compile(headerPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid --header-pattern: %w", err)
		}
		opts.HeaderPattern = re
	}
	if headerCorrespondence != "" {
		opts.HeaderCorrespondence = cliconfig.SplitCSV(headerCorrespondence)
	}
	if noteKeywords != "" {
		opts.NoteKeywords = cliconfig.SplitCSV(noteKeywords)
	}
	if referenceKeywords != "" {
		opts.ReferenceKeywords = cliconfig.SplitCSV(referenceKeywords)
	}
	if issuePrefixes != "" {
		opts.IssuePrefixes = cliconfig.SplitCSV(issuePrefixes)
	}
	return opts, nil
}
