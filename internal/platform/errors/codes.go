package errors

import "net/http"

// ErrorCode classifies an error for transports. The numeric values go over the wire.
type ErrorCode uint16

// Codes, in wire order
const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered panic
	ErrorCodeUnavailable                      // backend or capability down; retry may work
	ErrorCodeConflict                         // concurrent turn on the same session
	ErrorCodeInvalidArgument                  // well-formed input that cannot be processed
	ErrorCodeValidation                       // a field broke a validation rule
	ErrorCodeJSON                             // malformed body
	ErrorCodeNotFound                         // unknown session or resource
	ErrorCodeDuplicateKey                     // unique violation
	ErrorCodeDB                               // other database failure
)

var codeInfo = [...]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeConflict:        {"conflict", http.StatusConflict},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeDuplicateKey:    {"duplicate_key", http.StatusConflict},
	ErrorCodeDB:              {"db", http.StatusInternalServerError},
}

func (c ErrorCode) String() string {
	if int(c) < len(codeInfo) {
		return codeInfo[c].name
	}
	return "unknown"
}

// HTTPStatusCode maps c to a response status; unknown codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if int(c) < len(codeInfo) {
		return codeInfo[c].status
	}
	return http.StatusInternalServerError
}
