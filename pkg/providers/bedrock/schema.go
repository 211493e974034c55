// Tool input schema construction for structured completions
package bedrock

import (
	"encoding/json"
	"fmt"

	"github.com/swaggest/jsonschema-go"
)

// fieldSchema builds the JSON Schema for the structured-output tool: an
// object with exactly one required string property named field, with
// additional properties disallowed. The schema is returned as a generic
// map so it can be converted to a smithy document for the wire.
func fieldSchema(field, description string) (map[string]any, error) {
	property := jsonschema.Schema{}
	property.AddType(jsonschema.String)
	property.WithDescription(description)

	schema := jsonschema.Schema{}
	schema.AddType(jsonschema.Object)
	schema.WithProperties(map[string]jsonschema.SchemaOrBool{
		field: property.ToSchemaOrBool(),
	})
	schema.WithRequired(field)
	schema.WithAdditionalProperties(*(&jsonschema.SchemaOrBool{}).WithTypeBoolean(false))

	// Convert to JSON and back to get a map[string]any
	jsonBytes, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	var schemaMap map[string]any
	if err := json.Unmarshal(jsonBytes, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema JSON to map: %w", err)
	}

	return schemaMap, nil
}
