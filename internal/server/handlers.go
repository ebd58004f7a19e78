package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncplab/chronicle/internal/core/theme"
	"github.com/ncplab/chronicle/internal/core/traversal"
	"github.com/ncplab/chronicle/internal/loader"
)

// CreateDocument loads the request body as a narrative document and registers
// it, returning the handle used by the analysis endpoints.
func (s *Server) CreateDocument(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	doc, err := loader.FromBytes(data)
	if err != nil {
		var verr *loader.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := s.register(doc)
	c.JSON(http.StatusCreated, gin.H{"document_id": id, "title": doc.Title})
}

func (s *Server) GetDocument(c *gin.Context) {
	doc, ok := s.document(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Query dispatches a traversal request against a document. Unknown modes are
// a client error; unknown entity ids are empty results, not errors.
func (s *Server) Query(c *gin.Context) {
	doc, ok := s.document(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var req traversal.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if _, err := traversal.ParseMode(string(req.Mode)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.engine.Traverse(doc, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CharacterArc renders the markdown arc summary for one player.
func (s *Server) CharacterArc(c *gin.Context) {
	doc, ok := s.document(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	state := s.arcs.GenerateState(doc, c.Param("player"))
	if state.Err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": state.Err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"player_id": state.PlayerID,
		"markdown":  state.Summary,
		"beats":     len(state.Beats),
	})
}

// ThematicAnalysis renders the markdown thematic report for one perspective.
// Caller-supplied search terms (?term=x&term=y) override derivation.
func (s *Server) ThematicAnalysis(c *gin.Context) {
	doc, ok := s.document(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	state := s.themes.AnalyzeState(theme.State{
		Doc:           doc,
		PerspectiveID: c.Param("perspective"),
		SearchTerms:   c.QueryArray("term"),
	})
	if state.Err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": state.Err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"perspective_id": state.PerspectiveID,
		"markdown":       state.Analysis,
		"storybeat_ids":  state.BeatIDs,
		"search_terms":   state.SearchTerms,
	})
}

// ClassifyBeat classifies the emotional tone of one story beat. An optional
// ?context= adds free-text context for the external strategy.
func (s *Server) ClassifyBeat(c *gin.Context) {
	doc, ok := s.document(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	beat, ok := doc.StoryBeat(c.Param("beat"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story beat not found"})
		return
	}

	result := s.classifier.Classify(c.Request.Context(), beat, c.Query("context"))
	c.JSON(http.StatusOK, result)
}

// ClassifyAll classifies every beat of a document in document order.
func (s *Server) ClassifyAll(c *gin.Context) {
	doc, ok := s.document(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	results := s.classifier.ClassifyAll(c.Request.Context(), doc, c.Query("context"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}
