package llm

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the three documented response shapes. A response missing a
// required key, or carrying the wrong type for one, is a validation failure
// and triggers the caller's deterministic fallback.

const currentSkillsSchema = `{
	"type": "object",
	"required": ["current_skills"],
	"properties": {
		"current_skills": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

const requiredSkillsSchema = `{
	"type": "object",
	"required": ["required_skills"],
	"properties": {
		"required_skills": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

const gapAnalysisSchema = `{
	"type": "object",
	"required": [
		"job_title",
		"current_skills",
		"missing_skills",
		"skill_match_percentage",
		"recommended_courses",
		"recommended_projects"
	],
	"properties": {
		"job_title": {"type": "string"},
		"current_skills": {"type": "array", "items": {"type": "string"}},
		"missing_skills": {"type": "array", "items": {"type": "string"}},
		"skill_match_percentage": {"type": "integer", "minimum": 0, "maximum": 100},
		"recommended_courses": {"type": "array", "items": {"type": "string"}},
		"recommended_projects": {"type": "array", "items": {"type": "string"}}
	}
}`

// validateResponse validates raw JSON content against a schema string.
func validateResponse(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}

	if !result.Valid() {
		descs := result.Errors()
		if len(descs) > 0 {
			return fmt.Errorf("response failed schema validation: %s: %s", descs[0].Field(), descs[0].Description())
		}
		return fmt.Errorf("response failed schema validation")
	}
	return nil
}
