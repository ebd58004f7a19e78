package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncplab/chronicle/internal/core/theme"
	"github.com/ncplab/chronicle/internal/loader"
)

var (
	themeJSON  bool
	themeTerms []string
)

var themeCmd = &cobra.Command{
	Use:   "theme [file] [perspective-id]",
	Short: "Analyze a thematic tension",
	Long:  `Analyze how a thematic perspective manifests across the narrative's story beats. Search terms are derived from the perspective unless supplied with --term.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loader.FromFile(args[0])
		if err != nil {
			fatal("Error loading narrative", err)
		}

		analyzer := theme.NewAnalyzer()
		state := analyzer.AnalyzeState(theme.State{
			Doc:           doc,
			PerspectiveID: args[1],
			SearchTerms:   themeTerms,
		})
		if state.Err != nil {
			fatal("Error generating analysis", state.Err)
		}

		if themeJSON {
			out := map[string]interface{}{
				"perspective_id": state.PerspectiveID,
				"search_terms":   state.SearchTerms,
				"storybeat_ids":  state.BeatIDs,
				"markdown":       state.Analysis,
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Print(state.Analysis)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.Flags().BoolVar(&themeJSON, "json", false, "Output full pipeline state as JSON")
	themeCmd.Flags().StringSliceVar(&themeTerms, "term", nil, "Explicit search terms (overrides derivation)")
}
