package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ncplab/chronicle/internal/core/arc"
	"github.com/ncplab/chronicle/internal/core/theme"
	"github.com/ncplab/chronicle/internal/loader"
)

var (
	watchPlayer      string
	watchPerspective string
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-render a report whenever the narrative file changes",
	Long: `Watch a narrative file and re-render the selected report (character
arc with --player, thematic analysis with --perspective) on every save. Each
reload constructs a fresh document; nothing is updated in place.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		if watchPlayer == "" && watchPerspective == "" {
			fatal("one of --player or --perspective is required", nil)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("Error creating watcher", err)
		}
		defer watcher.Close()

		// Watch the directory: editors replace files on save, which drops
		// a watch registered on the file itself.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			fatal("Error watching directory", err)
		}

		render := func() {
			doc, err := loader.FromFile(path)
			if err != nil {
				slog.Error("reload failed", "path", path, "error", err)
				return
			}
			if watchPlayer != "" {
				fmt.Print(arc.NewGenerator().Generate(doc, watchPlayer))
			} else {
				fmt.Print(theme.NewAnalyzer().Analyze(doc, watchPerspective))
			}
		}

		render()

		target := filepath.Clean(path)
		var last time.Time
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				// Debounce editor save bursts.
				if time.Since(last) < 100*time.Millisecond {
					continue
				}
				last = time.Now()
				slog.Debug("narrative changed", "path", path)
				render()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watch error", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPlayer, "player", "", "Render the character arc for this player id")
	watchCmd.Flags().StringVar(&watchPerspective, "perspective", "", "Render the thematic analysis for this perspective id")
}
