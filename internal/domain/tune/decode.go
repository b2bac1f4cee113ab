// ABOUTME: Decodes a response body into a tune collection
// ABOUTME: Rejects anything that is not a well-formed top-level JSON array
package tune

import (
	"encoding/json"

	"github.com/buger/jsonparser"
)

// Decode splits a JSON array body into its elements, keeping their order.
// An empty array yields an empty, non-nil collection.
func Decode(body []byte) (Collection, error) {
	if !json.Valid(body) {
		return nil, &DecodeError{Reason: "body is not valid json", Err: syntaxError(body)}
	}

	// jsonparser reports the top-level type without decoding the elements.
	_, dataType, _, err := jsonparser.Get(body)
	if err != nil {
		return nil, &DecodeError{Reason: "read top-level value", Err: err}
	}
	if dataType != jsonparser.Array {
		return nil, &DecodeError{Reason: "expected array, got " + dataType.String()}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, &DecodeError{Reason: "split array", Err: err}
	}

	tunes := make(Collection, len(elems))
	for i, e := range elems {
		tunes[i] = Tune(e)
	}

	return tunes, nil
}

// syntaxError recovers the position-carrying error json.Valid does not return.
func syntaxError(body []byte) error {
	var v any
	return json.Unmarshal(body, &v)
}
