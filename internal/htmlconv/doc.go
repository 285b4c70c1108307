// Package htmlconv builds an mdast tree from documentation HTML.
//
// The walk keeps an explicit stack of frames. Each frame owns the block
// nodes collected for the current container (document, list item,
// blockquote, table cell) and an optional open paragraph that loose inline
// content accumulates into. Inline elements (headings' content, links,
// emphasis) push a frame of their own, so their content can never leak
// into the enclosing paragraph, and block content found inside them is
// flattened back to inline nodes when the frame is popped.
//
// Elements that carry no document content (script, iframe, object, embed,
// style, link and the head section) are dropped with their subtree. Unknown
// elements are transparent: their children are converted in place.
package htmlconv
