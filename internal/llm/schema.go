package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildSectionSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map for one section's response envelope. We pass it to the service as a
// structured output constraint and also validate locally on receipt.
//
// All properties are nullable on the wire; required-field enforcement happens
// after enum resolution so a thin page degrades to partial instead of
// hard-failing schema validation.
func BuildSectionSchema(def SectionDef) map[string]any {
	props := map[string]any{
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{}

	if len(def.Fields) > 0 {
		props["fields"] = map[string]any{
			"type":                 []string{"object", "null"},
			"additionalProperties": false,
			"properties":           fieldProps(def.Fields),
		}
		required = append(required, "fields")
	}
	if len(def.RowFields) > 0 {
		props["rows"] = map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           fieldProps(def.RowFields),
			},
		}
		required = append(required, "rows")
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func fieldProps(defs []FieldDef) map[string]any {
	props := make(map[string]any, len(defs))
	for _, d := range defs {
		switch d.Kind {
		case KindInt, KindYear:
			props[d.Name] = map[string]any{"type": []string{"integer", "null"}}
		case KindDay:
			props[d.Name] = map[string]any{"type": []string{"integer", "null"}, "minimum": 1, "maximum": 31}
		case KindMonth:
			props[d.Name] = map[string]any{"type": []string{"integer", "null"}, "minimum": 1, "maximum": 12}
		case KindMoney:
			// number preferred; strings tolerated for values like "1,500,000.00"
			props[d.Name] = map[string]any{"type": []string{"number", "string", "null"}}
		case KindBool:
			props[d.Name] = map[string]any{"type": []string{"boolean", "null"}}
		case KindEnum:
			// either a vocabulary id or a label to be resolved locally
			props[d.Name] = map[string]any{"type": []string{"integer", "string", "null"}}
		default:
			props[d.Name] = map[string]any{"type": []string{"string", "null"}}
		}
	}
	return props
}

// ValidateJSONAgainstSchema validates data against schemaMap.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
