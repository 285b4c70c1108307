package render

import "errors"

// Sentinel errors for rendering. They never reach library callers: a failed
// render degrades to PlainText.
var (
	ErrUnsupportedNode = errors.New("unsupported node")
	ErrInvalidTable    = errors.New("invalid table")
	ErrInvalidHeading  = errors.New("invalid heading depth")
)
