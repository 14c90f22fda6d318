// Package docs holds the OpenAPI document served at /api/docs.
// Regenerate with swag init from the handler annotations when routes change
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{.Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/meta/health": {"get": {"tags": ["Meta"], "summary": "Liveness", "responses": {"200": {"description": "ok"}}}},
    "/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness with store and capability checks", "responses": {"200": {"description": "ok"}}}},
    "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build info", "responses": {"200": {"description": "ok"}}}},
    "/meta/capabilities": {"get": {"tags": ["Meta"], "summary": "Capability gate snapshot", "responses": {"200": {"description": "ok"}}}},
    "/interview/evaluate": {"post": {"tags": ["Interview"], "summary": "Score one answer",
      "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/EvaluateRequest"}}}},
      "responses": {"200": {"description": "turn feedback"}}}},
    "/interview/transcribe": {"post": {"tags": ["Interview"], "summary": "Transcribe an uploaded audio file",
      "requestBody": {"required": true, "content": {"multipart/form-data": {"schema": {"type": "object", "properties": {"audio_file": {"type": "string", "format": "binary"}}}}}},
      "responses": {"200": {"description": "transcript"}}}},
    "/interview/transcribe-chunk": {"post": {"tags": ["Interview"], "summary": "Transcribe a base64 audio chunk",
      "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ChunkRequest"}}}},
      "responses": {"200": {"description": "transcript"}}}},
    "/questions/domains": {"get": {"tags": ["Questions"], "summary": "Supported domains", "responses": {"200": {"description": "ok"}}}},
    "/questions/generate": {"post": {"tags": ["Questions"], "summary": "Generate a question",
      "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/QuestionRequest"}}}},
      "responses": {"200": {"description": "question"}}}},
    "/questions/next": {"post": {"tags": ["Questions"], "summary": "Follow-up question",
      "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/NextRequest"}}}},
      "responses": {"200": {"description": "question"}}}},
    "/sessions/start": {"post": {"tags": ["Sessions"], "summary": "Start a session",
      "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/QuestionRequest"}}}},
      "responses": {"201": {"description": "session"}}}},
    "/sessions/{id}": {"get": {"tags": ["Sessions"], "summary": "Session with history",
      "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string", "format": "uuid"}}],
      "responses": {"200": {"description": "session"}, "404": {"description": "not found"}}}},
    "/reports/generate": {"post": {"tags": ["Reports"], "summary": "Synthesize a report",
      "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ReportRequest"}}}},
      "responses": {"200": {"description": "report"}}}},
    "/analytics/domains": {"get": {"tags": ["Analytics"], "summary": "Per-domain score aggregates", "responses": {"200": {"description": "ok"}}}}
  },
  "components": {
    "schemas": {
      "EvaluateRequest": {"type": "object", "required": ["question", "transcript"], "properties": {
        "question": {"type": "string"}, "transcript": {"type": "string"}, "domain": {"type": "string", "example": "software"}, "session_id": {"type": "string", "format": "uuid"}}},
      "ChunkRequest": {"type": "object", "required": ["audio_data"], "properties": {
        "audio_data": {"type": "string", "format": "byte"}, "mime_type": {"type": "string", "example": "audio/webm"}}},
      "QuestionRequest": {"type": "object", "properties": {
        "domain": {"type": "string", "example": "software"}, "experience_level": {"type": "string", "example": "fresher"}}},
      "NextRequest": {"type": "object", "properties": {
        "domain": {"type": "string"}, "experience_level": {"type": "string"}, "previous_answers": {"type": "array", "items": {"type": "string"}}}},
      "ReportRequest": {"type": "object", "properties": {
        "session_id": {"type": "string", "format": "uuid"}, "domain": {"type": "string"}, "history": {"type": "array", "items": {"type": "object"}}}}
    }
  }
}`

// SwaggerInfo holds exported spec info
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/api/v1",
	Title:            "Interview Coach API",
	Description:      "Answer scoring, question generation, sessions and reports",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InfoInstanceName, SwaggerInfo)
}
