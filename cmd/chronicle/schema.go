package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ncplab/chronicle/internal/loader"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the narrative document JSON Schema",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := loader.Schema()
		if err != nil {
			fatal("Error generating schema", err)
		}
		fmt.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
