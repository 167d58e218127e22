package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema describes the TOML config file as JSON Schema, for editor tooling
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(new(Config))
	schema.Title = "not-rogue configuration"
	schema.Description = "Keys accepted in the not-rogue TOML config file"
	return schema
}

// MarshalSchema returns Schema as indented JSON
func MarshalSchema() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: marshal schema: %w", err)
	}
	return data, nil
}
