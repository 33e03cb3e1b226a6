// Package reader parses meowlisp's surface syntax into a generic,
// untyped parse tree, then adapts that tree into value.Value terms.
// Splitting parsing from adaptation keeps the grammar and the value
// model independent of each other, even though this grammar has no
// reader macros of its own.
package reader

// Node is one node of the generic parse tree a Reader produces: a tag
// naming what kind of token or production it is, the raw text it covers
// (populated for leaves), and any child nodes (populated for productions).
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// Tags used by the parser. The adapter (adapter.go) switches on these.
const (
	TagRoot   = "root"
	TagNumber = "number"
	TagSymbol = "symbol"
	TagSExpr  = "sexpr"
	TagQExpr  = "qexpr"
	TagRegex  = "regex"
	TagPunct  = "punct"
)
