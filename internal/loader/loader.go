// Package loader turns JSON or YAML narrative files into validated documents.
// It is the only place a Document is constructed; everything downstream treats
// the result as read-only.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/ncplab/chronicle/internal/ncp"
)

// ValidationError reports a document that does not conform to the narrative
// schema. Cross-reference integrity is deliberately not part of validation.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid narrative document: %s", strings.Join(e.Problems, "; "))
}

// FromBytes parses a JSON document, applies defaults and validates it.
func FromBytes(data []byte) (*ncp.Document, error) {
	var doc ncp.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return finalize(&doc)
}

// FromYAML parses a YAML document. The YAML is decoded generically and routed
// through the JSON field names, so both formats share one schema.
func FromYAML(data []byte) (*ncp.Document, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML document: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML document: %w", err)
	}
	return FromBytes(jsonData)
}

// FromFile loads a document from disk, picking the format by extension
// (.yaml/.yml for YAML, JSON otherwise).
func FromFile(path string) (*ncp.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read narrative file '%s': %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromBytes(data)
	}
}

// FromURL fetches and parses a JSON document.
func FromURL(ctx context.Context, url string) (*ncp.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch narrative from '%s': %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch narrative from '%s': status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// Discover returns the narrative files under root matching a doublestar
// pattern like "narratives/**/*.json", in lexical order.
func Discover(root, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern '%s': %w", pattern, err)
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(root, m)
	}
	return paths, nil
}

func finalize(doc *ncp.Document) (*ncp.Document, error) {
	if doc.Version == "" {
		doc.Version = "1.0"
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// validate checks required fields. IDs must be present; uniqueness within a
// collection is assumed rather than enforced, and dangling cross-references
// are tolerated so that partial narratives load.
func validate(doc *ncp.Document) error {
	var problems []string
	if doc.Title == "" {
		problems = append(problems, "title is required")
	}
	for i, p := range doc.Players {
		if p.PlayerID == "" {
			problems = append(problems, fmt.Sprintf("players[%d]: player_id is required", i))
		}
		if p.Name == "" {
			problems = append(problems, fmt.Sprintf("players[%d]: name is required", i))
		}
	}
	for i, p := range doc.Perspectives {
		if p.PerspectiveID == "" {
			problems = append(problems, fmt.Sprintf("perspectives[%d]: perspective_id is required", i))
		}
	}
	for i, sb := range doc.StoryBeats {
		if sb.StoryBeatID == "" {
			problems = append(problems, fmt.Sprintf("storybeats[%d]: storybeat_id is required", i))
		}
		for j, m := range sb.Moments {
			if m.MomentID == "" {
				problems = append(problems, fmt.Sprintf("storybeats[%d].moments[%d]: moment_id is required", i, j))
			}
		}
	}
	for i, sp := range doc.StoryPoints {
		if sp.StoryPointID == "" {
			problems = append(problems, fmt.Sprintf("storypoints[%d]: storypoint_id is required", i))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
