package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ncplab/chronicle/internal/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file-or-glob...]",
	Short: "Validate narrative documents",
	Long:  `Validate one or more narrative files against the document schema. Arguments may be files or doublestar globs like 'narratives/**/*.json'.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var paths []string
		for _, arg := range args {
			if !hasGlobMeta(arg) {
				paths = append(paths, arg)
				continue
			}
			found, err := loader.Discover(".", arg)
			if err != nil {
				fatal("Error expanding pattern", err)
			}
			paths = append(paths, found...)
		}

		failed := 0
		for _, path := range paths {
			doc, err := loader.FromFile(path)
			if err != nil {
				fmt.Printf("FAIL %s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Printf("OK   %s (%q: %d players, %d perspectives, %d beats, %d points)\n",
				path, doc.Title, len(doc.Players), len(doc.Perspectives), len(doc.StoryBeats), len(doc.StoryPoints))
		}
		if failed > 0 {
			fatal(fmt.Sprintf("%d of %d documents invalid", failed, len(paths)), nil)
		}
	},
}

func hasGlobMeta(s string) bool {
	for _, c := range s {
		if c == '*' || c == '?' || c == '[' || c == '{' {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
