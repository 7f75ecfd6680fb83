package storage

import "github.com/goliatone/go-sitegraph/internal/validation"

const uuidPattern = "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"

var keyListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":    "string",
		"pattern": uuidPattern,
	},
}

var keySchema = map[string]any{
	"type":    []any{"string", "null"},
	"pattern": uuidPattern,
}

var countSchema = map[string]any{
	"type":    []any{"integer", "null"},
	"minimum": 0,
}

// pagePayloadSchema guards page payload columns loaded from storage. Rows are
// normally written by SaveLibrary, but snapshots can also be produced by
// external tooling, so the shape is re-checked before indexing.
var pagePayloadSchema = validation.MustCompile(map[string]any{
	"type":     "object",
	"required": []string{"meta"},
	"properties": map[string]any{
		"meta": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"draft": map[string]any{"type": "boolean"},
				"date_tuple": map[string]any{
					"type":     []any{"object", "null"},
					"required": []string{"year", "month", "day"},
					"properties": map[string]any{
						"year":  map[string]any{"type": "integer"},
						"month": map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
						"day":   map[string]any{"type": "integer", "minimum": 1, "maximum": 31},
					},
				},
			},
		},
		"word_count":      countSchema,
		"reading_time":    countSchema,
		"lighter":         keySchema,
		"heavier":         keySchema,
		"earlier":         keySchema,
		"later":           keySchema,
		"earlier_updated": keySchema,
		"later_updated":   keySchema,
		"title_prev":      keySchema,
		"title_next":      keySchema,
		"ancestors":       keyListSchema,
	},
})

// sectionPayloadSchema guards section payload columns loaded from storage.
var sectionPayloadSchema = validation.MustCompile(map[string]any{
	"type":     "object",
	"required": []string{"meta"},
	"properties": map[string]any{
		"meta": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"draft": map[string]any{"type": "boolean"},
			},
		},
		"word_count":   countSchema,
		"reading_time": countSchema,
		"pages":        keyListSchema,
		"subsections":  keyListSchema,
		"includers":    keyListSchema,
		"ancestors":    keyListSchema,
	},
})
