package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncplab/chronicle/internal/config"
	"github.com/ncplab/chronicle/internal/core/classify"
	"github.com/ncplab/chronicle/internal/llm"
	"github.com/ncplab/chronicle/internal/loader"
)

var (
	classifyAll    bool
	classifyHint   string
	classifyConfig string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file] [storybeat-id]",
	Short: "Classify the emotional tone of story beats",
	Long: `Classify one story beat (or every beat with --all). An authored
emotional_weight is reported verbatim; otherwise the configured LLM strategy
is consulted, falling back to the rule-based keyword scorer.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loader.FromFile(args[0])
		if err != nil {
			fatal("Error loading narrative", err)
		}

		classifier := buildClassifier()
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if classifyAll || len(args) == 1 {
			results := classifier.ClassifyAll(context.Background(), doc, classifyHint)
			if err := encoder.Encode(results); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		beat, ok := doc.StoryBeat(args[1])
		if !ok {
			fatal("Story beat not found", nil)
		}
		result := classifier.Classify(context.Background(), beat, classifyHint)
		if err := encoder.Encode(result); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func buildClassifier() *classify.Classifier {
	var opts []classify.Option

	cfg := config.Default()
	if classifyConfig != "" {
		loaded, err := config.Load(classifyConfig)
		if err != nil {
			fatal("Error loading config", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		fatal("Error applying environment overrides", err)
	}

	taxonomy := classify.DefaultTaxonomy()
	if len(cfg.Classifier.Categories) > 0 {
		custom := make(classify.Taxonomy, 0, len(cfg.Classifier.Categories))
		for _, c := range cfg.Classifier.Categories {
			custom = append(custom, classify.Category{Name: c.Name, Keywords: c.Keywords})
		}
		taxonomy = custom
		opts = append(opts, classify.WithTaxonomy(taxonomy))
	}
	if cfg.Classifier.Fallback != "" {
		opts = append(opts, classify.WithFallback(cfg.Classifier.Fallback))
	}
	if cfg.LLM.Provider != "" {
		client, err := llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			fatal("Error initializing LLM client", err)
		}
		opts = append(opts, classify.WithStrategy(classify.NewLLMStrategy(client, taxonomy)))
	}

	return classify.New(opts...)
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyAll, "all", false, "Classify every beat in the document")
	classifyCmd.Flags().StringVar(&classifyHint, "context", "", "Additional context passed to the classifier")
	classifyCmd.Flags().StringVar(&classifyConfig, "config", "", "Path to a TOML config file")
}
