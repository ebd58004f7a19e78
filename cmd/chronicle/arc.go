package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncplab/chronicle/internal/core/arc"
	"github.com/ncplab/chronicle/internal/loader"
)

var arcJSON bool

var arcCmd = &cobra.Command{
	Use:   "arc [file] [player-id]",
	Short: "Generate a character arc summary",
	Long:  `Generate a markdown summary of one character's journey through the narrative. With --json, outputs the full pipeline state instead.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loader.FromFile(args[0])
		if err != nil {
			fatal("Error loading narrative", err)
		}

		gen := arc.NewGenerator()
		state := gen.GenerateState(doc, args[1])
		if state.Err != nil {
			fatal("Error generating arc", state.Err)
		}

		if arcJSON {
			out := map[string]interface{}{
				"player_id": state.PlayerID,
				"player":    state.Player,
				"beats":     state.Beats,
				"markdown":  state.Summary,
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Print(state.Summary)
	},
}

func init() {
	rootCmd.AddCommand(arcCmd)
	arcCmd.Flags().BoolVar(&arcJSON, "json", false, "Output full pipeline state as JSON")
}
