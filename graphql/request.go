// Package graphql implements the resilient execution engine for Shikimori GraphQL calls:
// single-attempt HTTP transport with outcome classification, a retry/backoff/rate-limit
// state machine, envelope decoding, and the shared error taxonomy.
package graphql

import "encoding/json"

// Request is an immutable GraphQL operation: a fixed query document plus the
// variables of a single call. It is created once per call and discarded after
// the call resolves.
type Request struct {
	Query     string
	Variables map[string]any
}

// NewRequest pairs a query document with its variables.
func NewRequest(query string, variables map[string]any) Request {
	return Request{Query: query, Variables: variables}
}

// Body renders the JSON wire form {"query": ..., "variables": ...}.
// The variables key is omitted entirely when no variables are set.
func (r Request) Body() ([]byte, error) {
	payload := struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}{
		Query:     r.Query,
		Variables: r.Variables,
	}
	return json.Marshal(payload)
}
