// Package domain contains the core domain types for the glossary service.
package domain

// Entry is a single glossary entry: a term and its definition.
// The term is the exact key supplied by a caller; no normalization is
// applied anywhere in the service.
type Entry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// LookupResult is the success body returned for a found term.
type LookupResult struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// NotFoundBody is the body returned when a term is absent from the store.
type NotFoundBody struct {
	Message string `json:"message"`
}

// BadRequestBody is the body returned when no term could be extracted.
// Debug echoes the caller's own input to aid diagnosis; it never contains
// store contents.
type BadRequestBody struct {
	Message string       `json:"message"`
	Debug   RequestDebug `json:"debug"`
}

// RequestDebug mirrors the request back to the caller on a 400.
type RequestDebug struct {
	QueryParams map[string]string `json:"query_params"`
	PathParams  map[string]string `json:"path_params"`
	Body        string            `json:"body"`
	HTTPMethod  string            `json:"http_method"`
	EventKeys   []string          `json:"event_keys"`
}

// ErrorBody is the body returned when the handler hits an internal fault.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
