package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncplab/chronicle/internal/core/traversal"
	"github.com/ncplab/chronicle/internal/loader"
)

var (
	queryMode        string
	queryPlayer      string
	queryPerspective string
	queryBeat        string
	queryWeight      string
	queryTerms       []string
)

var queryCmd = &cobra.Command{
	Use:   "query [file]",
	Short: "Run a traversal query against a narrative",
	Long: `Run one of the traversal modes (player_journey, thematic_trace,
temporal_sequence, emotional_arc, connected_elements) and print the result as
JSON. Unknown entity ids yield empty results; unknown modes are an error.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loader.FromFile(args[0])
		if err != nil {
			fatal("Error loading narrative", err)
		}

		mode, err := traversal.ParseMode(queryMode)
		if err != nil {
			fatal("Error parsing mode", err)
		}

		engine := traversal.NewEngine()
		result, err := engine.Traverse(doc, traversal.Request{
			Mode:            mode,
			PlayerID:        queryPlayer,
			PerspectiveID:   queryPerspective,
			StoryBeatID:     queryBeat,
			EmotionalWeight: queryWeight,
			SearchTerms:     queryTerms,
		})
		if err != nil {
			fatal("Error running query", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&queryMode, "mode", string(traversal.ModePlayerJourney), "Traversal mode")
	queryCmd.Flags().StringVar(&queryPlayer, "player", "", "Player id (player_journey)")
	queryCmd.Flags().StringVar(&queryPerspective, "perspective", "", "Perspective id (thematic_trace)")
	queryCmd.Flags().StringVar(&queryBeat, "beat", "", "Story beat id (connected_elements)")
	queryCmd.Flags().StringVar(&queryWeight, "weight", "", "Emotional weight (emotional_arc)")
	queryCmd.Flags().StringSliceVar(&queryTerms, "term", nil, "Explicit search terms (thematic_trace)")
}
