package graphql

import (
	"bytes"
	"encoding/json"
)

// envelope is the standard GraphQL response wrapper.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors"`
}

// ResponseError is a single structured error from the remote service. Only
// the message is surfaced; Shikimori populates locations and paths
// inconsistently.
type ResponseError struct {
	Message string `json:"message"`
}

// DecodeEnvelope unwraps a raw HTTP body into its data payload. A response
// with a non-empty errors array resolves to a KindGraphQL error carrying the
// messages in order, even when partial data is present. A body that is not
// valid JSON, or whose data is null or absent without errors, resolves to a
// KindDecode error.
func DecodeEnvelope(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &Error{Kind: KindDecode, Reason: "response is not valid JSON", Body: snippet(body), Err: err}
	}

	if len(env.Errors) > 0 {
		messages := make([]string, len(env.Errors))
		for i, re := range env.Errors {
			messages[i] = re.Message
		}
		return nil, &Error{Kind: KindGraphQL, Messages: messages}
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil, &Error{Kind: KindDecode, Reason: "response carries no data", Body: snippet(body)}
	}

	return env.Data, nil
}
