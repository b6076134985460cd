package handler

import (
	"encoding/json"
	"sort"
)

// Event is the parsed invocation payload. The gateway populates the proxy
// fields; direct invocations may carry the term at the top level instead.
// Parsing is lenient throughout: a field that is missing or has an
// unexpected type is simply left at its zero value.
type Event struct {
	QueryStringParameters map[string]string
	PathParameters        map[string]string
	Body                  string
	HTTPMethod            string
	Term                  string

	// Keys holds the sorted top-level keys of the raw payload, echoed back
	// to the caller on a 400.
	Keys []string
}

// ParseEvent decodes the raw invocation payload into an Event.
// It never fails: an unparseable payload yields an empty Event, which the
// handler turns into a 400.
func ParseEvent(raw json.RawMessage) Event {
	var e Event

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return e
	}

	e.Keys = make([]string, 0, len(top))
	for k := range top {
		e.Keys = append(e.Keys, k)
	}
	sort.Strings(e.Keys)

	decodeField(top, "queryStringParameters", &e.QueryStringParameters)
	decodeField(top, "pathParameters", &e.PathParameters)
	decodeField(top, "body", &e.Body)
	decodeField(top, "httpMethod", &e.HTTPMethod)
	decodeField(top, "term", &e.Term)

	return e
}

// decodeField unmarshals top[key] into dst, ignoring absent keys and type
// mismatches.
func decodeField[T any](top map[string]json.RawMessage, key string, dst *T) {
	raw, ok := top[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// ExtractTerm pulls the search term out of an event. The locations are
// probed in a fixed order and the first non-empty value wins:
// query string, path parameters, JSON body, top-level term field.
// A body that fails to parse as JSON is treated as absent, not as an error.
func ExtractTerm(e Event) string {
	if term := e.QueryStringParameters["term"]; term != "" {
		return term
	}
	if term := e.PathParameters["term"]; term != "" {
		return term
	}
	if e.Body != "" {
		var body struct {
			Term string `json:"term"`
		}
		if err := json.Unmarshal([]byte(e.Body), &body); err == nil && body.Term != "" {
			return body.Term
		}
	}
	return e.Term
}
