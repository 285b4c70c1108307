package docs2md

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrHTMLTooLarge   = errors.New("HTML exceeds maximum size")
	ErrHTMLParse      = errors.New("HTML parsing failed")
	ErrInvalidContent = errors.New("invalid body content")
	ErrInvalidExport  = errors.New("invalid documentation export")
	ErrExportTooLarge = errors.New("documentation export exceeds maximum size")

	// Entry validation errors. Each wraps ErrSchema.
	ErrSchema         = errors.New("invalid docs entry")
	ErrMissingRoute   = fmt.Errorf("%w: missing route", ErrSchema)
	ErrMissingTitle   = fmt.Errorf("%w: missing title", ErrSchema)
	ErrAbsoluteRoute  = fmt.Errorf("%w: absolute or rooted route", ErrSchema)
	ErrRouteTraversal = fmt.Errorf("%w: route contains ..", ErrSchema)

	// Generation errors.
	ErrWritePage     = errors.New("failed to write page")
	ErrDuplicatePage = errors.New("another route maps to the same output file")
)

// SizeError reports input rejected by a size guard.
// errors.Is(err, ErrHTMLTooLarge) holds for oversized HTML.
type SizeError struct {
	Size  int
	Limit int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %d bytes (max %d)", ErrHTMLTooLarge, e.Size, e.Limit)
}

func (e *SizeError) Unwrap() error { return ErrHTMLTooLarge }
