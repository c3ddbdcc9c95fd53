package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tomavic/conventional-changelog/pkg/commitparser"
)

// watchDebounce absorbs the bursts of events editors emit on save.
const watchDebounce = 50 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-parse a commit message file on every change",
	Long: `Watch a commit message file (e.g. .git/COMMIT_EDITMSG) and print the
parsed record as JSON whenever the file changes. Useful as a live preview
while editing a commit message.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		opts, err := resolveOptions()
		if err != nil {
			fatal("Invalid parser options", err)
		}
		parser, err := commitparser.New(opts)
		if err != nil {
			fatal("Failed to configure parser", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("Failed to create watcher", err)
		}
		defer watcher.Close()

		// Watch the directory, not the file: editors replace files on
		// save, which would silently drop a watch on the file itself.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			fatal("Failed to watch directory", err)
		}

		reparse(parser, path)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		debounce := time.NewTimer(watchDebounce)
		if !debounce.Stop() {
			<-debounce.C
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				debounce.Reset(watchDebounce)
			case <-debounce.C:
				reparse(parser, path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watcher error", "error", err)
			case <-sigCh:
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// reparse reads and parses the file, printing the record or a warning.
func reparse(parser *commitparser.Parser, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read file", "path", path, "error", err)
		return
	}

	commit, err := parser.Parse(string(data))
	if err != nil {
		slog.Warn("failed to parse", "path", path, "error", err)
		return
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(commit); err != nil {
		slog.Error("failed to encode JSON", "error", err)
	}
}
