// Package export renders recompute history for consumption outside the
// inspector.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"

	"github.com/okvist/pagesync/internal/history"
)

// JSON renders entries as indented JSON, newest first as stored.
func JSON(entries []history.Entry) ([]byte, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding history: %w", err)
	}
	return pretty.Pretty(raw), nil
}
