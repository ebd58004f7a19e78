package loader

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/ncplab/chronicle/internal/ncp"
)

// Schema returns the JSON Schema of the narrative document format, derived
// from the model types.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&ncp.Document{})
	return json.MarshalIndent(schema, "", "  ")
}
