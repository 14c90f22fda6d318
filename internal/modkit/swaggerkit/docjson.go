package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	docs "interviewcoach/internal/services/api/docs"
)

// readDoc returns the generated swag document; tests may swap it
var readDoc = func() string { return docs.SwaggerInfo.ReadDoc() }

// sharedErrors are documented on every operation that does not list them itself
var sharedErrors = []struct {
	status, desc string
	example      map[string]any
}{
	{"400", "Bad Request", map[string]any{"status_code": 400, "status": "Bad Request", "code": 5, "error": "question is a required field", "field": "question"}},
	{"500", "Internal Server Error", map[string]any{"status_code": 500, "status": "Internal Server Error", "code": 1, "error": "panic recovered"}},
	{"503", "Service Unavailable", map[string]any{"status_code": 503, "status": "Service Unavailable", "code": 2, "error": "transcription is not configured"}},
}

var errorSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

// serveDocJSON serves the swag output as OpenAPI 3.0 with the shared error responses filled in
func serveDocJSON(titleSuffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(readDoc()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		if info := child(spec, "info"); titleSuffix != "" {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + titleSuffix
			}
		}

		schemas := child(child(spec, "components"), "schemas")
		if _, ok := schemas["ErrorResponse"]; !ok {
			schemas["ErrorResponse"] = errorSchema
		}
		for _, e := range sharedErrors {
			addDefaultResponse(spec, e.status, e.desc, e.example)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// child returns m[key] as a map, creating it when absent
func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

// ensureServers rewrites swagger 2.0 and OAS 3.1 headers to 3.0.3 for the bundled UI
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// addDefaultResponse documents status on every operation missing it
func addDefaultResponse(spec map[string]any, status, desc string, example map[string]any) {
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, raw := range ops {
			op, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if responses := child(op, "responses"); responses[status] == nil {
				responses[status] = resp
			}
		}
	}
}
