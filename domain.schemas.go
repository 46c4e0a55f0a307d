package main

// The two payload schemas are immutable JSON documents compiled once at
// process start. They are the single source of truth for what a create
// or update request body may contain: any property outside the declared
// set is rejected, and each declared property carries its type, format
// and bounds constraints.

// bookCreateSchema requires the full set of eight fields.
const bookCreateSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "bookCreate",
	"type": "object",
	"additionalProperties": false,
	"required": ["isbn", "amazon_url", "author", "language", "pages", "publisher", "title", "year"],
	"properties": {
		"isbn":       {"type": "string"},
		"amazon_url": {"type": "string", "format": "uri"},
		"author":     {"type": "string"},
		"language":   {"type": "string"},
		"pages":      {"type": "integer", "minimum": 1},
		"publisher":  {"type": "string"},
		"title":      {"type": "string"},
		"year":       {"type": "integer", "minimum": 0}
	}
}`

// bookUpdateSchema keeps the same per-field constraints but requires
// nothing: every field is optional on update. The isbn is not listed
// because it is immutable and must not appear in an update body.
const bookUpdateSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "bookUpdate",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"amazon_url": {"type": "string", "format": "uri"},
		"author":     {"type": "string"},
		"language":   {"type": "string"},
		"pages":      {"type": "integer", "minimum": 1},
		"publisher":  {"type": "string"},
		"title":      {"type": "string"},
		"year":       {"type": "integer", "minimum": 0}
	}
}`
