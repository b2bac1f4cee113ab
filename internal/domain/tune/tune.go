// ABOUTME: Tune record and collection types returned by the tunes endpoint
// ABOUTME: Tunes stay opaque JSON; accessors read common fields without validating them
package tune

import (
	"encoding/json"

	"github.com/buger/jsonparser"
)

// Tune is one element of the server's array, kept as raw JSON.
type Tune json.RawMessage

// Collection is the server's array in the order it was sent.
type Collection []Tune

var (
	titleKeys = []string{"title", "t"}
	keyKeys   = []string{"key", "k"}
)

// MarshalJSON writes the tune back out unchanged.
func (t Tune) MarshalJSON() ([]byte, error) {
	if len(t) == 0 {
		return []byte("null"), nil
	}
	return t, nil
}

// UnmarshalJSON stores a copy of data.
func (t *Tune) UnmarshalJSON(data []byte) error {
	*t = append((*t)[0:0], data...)
	return nil
}

// Title returns the first of "title" or "t" that holds a string.
func (t Tune) Title() (string, bool) {
	return t.firstString(titleKeys)
}

// Key returns the musical key from "key" or "k".
func (t Tune) Key() (string, bool) {
	return t.firstString(keyKeys)
}

// Notes returns the integer "notes" array, skipping elements that are not numbers.
func (t Tune) Notes() ([]int, bool) {
	raw, dataType, _, err := jsonparser.Get(t, "notes")
	if err != nil || dataType != jsonparser.Array {
		return nil, false
	}

	notes := []int{}
	jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if dataType != jsonparser.Number {
			return
		}
		n, err := jsonparser.ParseInt(value)
		if err != nil {
			return
		}
		notes = append(notes, int(n))
	})

	return notes, true
}

// Field returns the raw value at the given key path.
func (t Tune) Field(path ...string) ([]byte, bool) {
	value, _, _, err := jsonparser.Get(t, path...)
	if err != nil {
		return nil, false
	}
	return value, true
}

func (t Tune) firstString(keys []string) (string, bool) {
	for _, k := range keys {
		if v, err := jsonparser.GetString(t, k); err == nil {
			return v, true
		}
	}
	return "", false
}
