// ABOUTME: Output formatting for fetched tunes
// ABOUTME: One line per tune, or the array re-encoded as JSON
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harper/tunes-client/internal/domain/tune"
)

func writeList(w io.Writer, tunes tune.Collection) error {
	for i, t := range tunes {
		title, ok := t.Title()
		if !ok {
			title = "(untitled)"
		}

		line := fmt.Sprintf("%d. %s", i+1, title)
		if key, ok := t.Key(); ok {
			line += fmt.Sprintf(" (%s)", key)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, tunes tune.Collection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tunes)
}
