package archive

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses an export file. The file must contain a valid
// JSON object; anything else is a hard error. Field-level oddities
// inside the document never fail the load.
func Load(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var a Archive
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &a, nil
}

// ReplyIndex maps message identifiers to their records, used to resolve
// reply references for inline quoting. It is built once per conversion
// and only read afterwards.
type ReplyIndex map[int64]*Message

// BuildReplyIndex indexes every message that carries an identifier.
// Messages without one (some service records) are simply absent.
func BuildReplyIndex(messages []*Message) ReplyIndex {
	index := make(ReplyIndex, len(messages))
	for _, m := range messages {
		if m.ID != nil {
			index[*m.ID] = m
		}
	}
	return index
}

// Lookup resolves a reply reference. A nil or zero reference, or one
// pointing outside the archive, resolves to nothing.
func (idx ReplyIndex) Lookup(id *int64) (*Message, bool) {
	if id == nil || *id == 0 {
		return nil, false
	}
	m, ok := idx[*id]
	return m, ok
}
