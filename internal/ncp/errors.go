package ncp

import "fmt"

// MissingDataError reports that an entity a caller required to exist could not
// be resolved. Lookup accessors and traversal queries never return it; it is
// produced by pipeline stages that need a present entity to proceed.
type MissingDataError struct {
	Entity string // "player", "perspective", "storybeat", "document"
	ID     string
}

func (e *MissingDataError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("no %s provided", e.Entity)
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}
