package handler

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestExtractTerm(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "query string parameter",
			payload: `{"queryStringParameters": {"term": "AWS KMS"}}`,
			want:    "AWS KMS",
		},
		{
			name:    "path parameter",
			payload: `{"pathParameters": {"term": "AWS KMS"}}`,
			want:    "AWS KMS",
		},
		{
			name:    "json body",
			payload: `{"body": "{\"term\": \"AWS KMS\"}"}`,
			want:    "AWS KMS",
		},
		{
			name:    "top-level term",
			payload: `{"term": "AWS KMS"}`,
			want:    "AWS KMS",
		},
		{
			name:    "query string wins over path parameter",
			payload: `{"queryStringParameters": {"term": "first"}, "pathParameters": {"term": "second"}}`,
			want:    "first",
		},
		{
			name:    "path parameter wins over body",
			payload: `{"pathParameters": {"term": "first"}, "body": "{\"term\": \"second\"}"}`,
			want:    "first",
		},
		{
			name:    "body wins over top-level term",
			payload: `{"body": "{\"term\": \"first\"}", "term": "second"}`,
			want:    "first",
		},
		{
			name:    "empty query value falls through to path",
			payload: `{"queryStringParameters": {"term": ""}, "pathParameters": {"term": "fallback"}}`,
			want:    "fallback",
		},
		{
			name:    "malformed body falls through to top-level term",
			payload: `{"body": "not json at all", "term": "fallback"}`,
			want:    "fallback",
		},
		{
			name:    "malformed body with no term elsewhere",
			payload: `{"body": "not json at all"}`,
			want:    "",
		},
		{
			name:    "body without term field falls through",
			payload: `{"body": "{\"other\": 1}", "term": "fallback"}`,
			want:    "fallback",
		},
		{
			name:    "empty payload",
			payload: `{}`,
			want:    "",
		},
		{
			name:    "whitespace is preserved",
			payload: `{"queryStringParameters": {"term": "  padded  "}}`,
			want:    "  padded  ",
		},
		{
			name:    "key names are case sensitive",
			payload: `{"queryStringParameters": {"Term": "wrong case"}}`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTerm(ParseEvent(json.RawMessage(tt.payload)))
			if got != tt.want {
				t.Errorf("ExtractTerm() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEvent_Keys(t *testing.T) {
	payload := `{"zeta": 1, "httpMethod": "GET", "alpha": true}`

	event := ParseEvent(json.RawMessage(payload))

	want := []string{"alpha", "httpMethod", "zeta"}
	if !reflect.DeepEqual(event.Keys, want) {
		t.Errorf("Keys = %v, want %v", event.Keys, want)
	}
}

func TestParseEvent_LenientTypes(t *testing.T) {
	// Wrong-typed fields are ignored rather than failing the parse
	payload := `{"queryStringParameters": "not a map", "httpMethod": 42, "term": "still works"}`

	event := ParseEvent(json.RawMessage(payload))

	if event.QueryStringParameters != nil {
		t.Errorf("QueryStringParameters = %v, want nil", event.QueryStringParameters)
	}
	if event.HTTPMethod != "" {
		t.Errorf("HTTPMethod = %q, want empty", event.HTTPMethod)
	}
	if event.Term != "still works" {
		t.Errorf("Term = %q, want %q", event.Term, "still works")
	}
}

func TestParseEvent_NotAnObject(t *testing.T) {
	event := ParseEvent(json.RawMessage(`"just a string"`))

	if ExtractTerm(event) != "" {
		t.Errorf("ExtractTerm() on non-object payload should be empty")
	}
	if len(event.Keys) != 0 {
		t.Errorf("Keys = %v, want empty", event.Keys)
	}
}
