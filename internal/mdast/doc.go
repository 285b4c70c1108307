// Package mdast defines the Markdown syntax tree produced by the HTML
// converter and consumed by the renderers.
//
// The set of node kinds is closed: every node implements Node through an
// unexported marker method, so only this package can add kinds. Consumers
// switch on the concrete type (or on Kind) and treat anything unexpected as
// an unsupported node.
//
// Block nodes (Root, Heading, Paragraph, Code, List, ListItem, Blockquote,
// Table, TableRow, TableCell) never appear inside inline nodes (Text,
// InlineCode, Link, Emphasis, Strong). The converter enforces this.
package mdast
