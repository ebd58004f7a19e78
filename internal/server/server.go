// Package server exposes the analysis core over HTTP. Documents are loaded
// into an in-memory registry keyed by generated handles; all analysis
// endpoints address a registered document.
package server

import (
	"context"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ncplab/chronicle/internal/config"
	"github.com/ncplab/chronicle/internal/core/arc"
	"github.com/ncplab/chronicle/internal/core/classify"
	"github.com/ncplab/chronicle/internal/core/theme"
	"github.com/ncplab/chronicle/internal/core/traversal"
	"github.com/ncplab/chronicle/internal/llm"
	"github.com/ncplab/chronicle/internal/ncp"
)

type Server struct {
	engine     *traversal.Engine
	classifier *classify.Classifier
	arcs       *arc.Generator
	themes     *theme.Analyzer

	mu   sync.RWMutex
	docs map[string]*ncp.Document
}

// NewServer wires the core against the configuration. The LLM strategy is
// attached only when a provider is configured; without one the classifier
// runs rule-based only.
func NewServer(cfg *config.Config) *Server {
	engine := traversal.NewEngine()
	if len(cfg.Traversal.Stopwords) > 0 {
		engine = traversal.NewEngineWithStopwords(cfg.Traversal.Stopwords)
	}

	taxonomy := classify.DefaultTaxonomy()
	if len(cfg.Classifier.Categories) > 0 {
		custom := make(classify.Taxonomy, 0, len(cfg.Classifier.Categories))
		for _, c := range cfg.Classifier.Categories {
			custom = append(custom, classify.Category{Name: c.Name, Keywords: c.Keywords})
		}
		taxonomy = custom
	}

	opts := []classify.Option{classify.WithTaxonomy(taxonomy)}
	if cfg.Classifier.Fallback != "" {
		opts = append(opts, classify.WithFallback(cfg.Classifier.Fallback))
	}
	if cfg.LLM.Provider != "" {
		client, err := llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Printf("LLM provider unavailable, falling back to rule-based classification: %v", err)
		} else {
			opts = append(opts, classify.WithStrategy(classify.NewLLMStrategy(client, taxonomy)))
		}
	}

	return &Server{
		engine:     engine,
		classifier: classify.New(opts...),
		arcs:       arc.NewGenerator(),
		themes:     theme.NewAnalyzerWithEngine(engine),
		docs:       make(map[string]*ncp.Document),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/documents", s.CreateDocument)
	r.GET("/documents/:id", s.GetDocument)
	r.POST("/documents/:id/query", s.Query)
	r.GET("/documents/:id/players/:player/arc", s.CharacterArc)
	r.GET("/documents/:id/perspectives/:perspective/analysis", s.ThematicAnalysis)
	r.GET("/documents/:id/storybeats/:beat/classification", s.ClassifyBeat)
	r.GET("/documents/:id/classification", s.ClassifyAll)

	return r
}

func (s *Server) register(doc *ncp.Document) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.docs[id] = doc
	s.mu.Unlock()
	return id
}

func (s *Server) document(id string) (*ncp.Document, bool) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	return doc, ok
}
