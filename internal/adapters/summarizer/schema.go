package summarizer

import "encoding/json"

const SchemaName = "summary_result"

func stringArray() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

// Schema is the JSON schema of a summary document.
func Schema() map[string]any {
	codeExample := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"code":        map[string]any{"type": "string"},
			"language":    map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
		},
		"required":             []string{"code", "language"},
		"additionalProperties": false,
	}

	section := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":         map[string]any{"type": "string"},
			"summary":       map[string]any{"type": "string"},
			"codeExamples":  map[string]any{"type": "array", "items": codeExample},
			"keyPoints":     stringArray(),
			"userRelevance": map[string]any{"type": "string"},
			"referenceUrls": stringArray(),
		},
		"required":             []string{"title", "summary"},
		"additionalProperties": false,
	}

	practical := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"relevanceScore":   map[string]any{"type": "number"},
			"relevanceSummary": map[string]any{"type": "string"},
			"keyTakeaways":     stringArray(),
			"actionableItems":  stringArray(),
			"relatedConcepts":  stringArray(),
		},
		"required":             []string{"relevanceScore", "relevanceSummary", "keyTakeaways"},
		"additionalProperties": false,
	}

	summaryError := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url":   map[string]any{"type": "string"},
			"error": map[string]any{"type": "string"},
		},
		"required":             []string{"url", "error"},
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url":                  map[string]any{"type": "string"},
			"topic":                map[string]any{"type": "string"},
			"title":                map[string]any{"type": "string"},
			"summary":              map[string]any{"type": "string"},
			"tags":                 stringArray(),
			"sections":             map[string]any{"type": "array", "items": section},
			"practicalApplication": practical,
			"errors":               map[string]any{"type": "array", "items": summaryError},
		},
		"required":             []string{"url"},
		"additionalProperties": false,
	}
}

func SchemaJSON() string {
	raw, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		panic(err)
	}

	return string(raw)
}
