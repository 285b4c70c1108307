package docs2md

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DefaultMaxExportSize is the default limit on an export document, in bytes.
const DefaultMaxExportSize = 32 << 20

// ParseExport decodes a documentation export. The top level is either a
// single entry object or an array of entries.
func ParseExport(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidExport)
	}

	switch trimmed[0] {
	case '[':
		var entries []Entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidExport, err)
		}
		return entries, nil
	case '{':
		var entry Entry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidExport, err)
		}
		return []Entry{entry}, nil
	default:
		return nil, fmt.Errorf("%w: top level must be an object or an array", ErrInvalidExport)
	}
}

// ReadExport reads and decodes an export from r, rejecting documents larger
// than limit bytes. A non-positive limit uses DefaultMaxExportSize.
func ReadExport(r io.Reader, limit int64) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultMaxExportSize
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrExportTooLarge, limit)
	}
	return ParseExport(data)
}

// Flatten returns every entry of the tree in depth-first pre-order, parents
// before their children. The returned entries still carry their Children.
func Flatten(entries []Entry) []Entry {
	var out []Entry
	var walk func([]Entry)
	walk = func(es []Entry) {
		for i := range es {
			out = append(out, es[i])
			walk(es[i].Children)
		}
	}
	walk(entries)
	return out
}
