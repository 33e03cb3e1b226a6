package reader

import (
	"strconv"

	"meowlisp/value"
)

// skippedContents holds the punctuation markers a generic parse tree may
// carry alongside its meaningful children; this reader's own Node tree
// never emits them, but the adapter still guards against them so it
// stays correct for any parse tree shaped like this generic one.
var skippedContents = map[string]bool{"(": true, ")": true, "{": true, "}": true}

// Convert walks a parse tree node and produces the Value it denotes: Num
// for a number token, Sym for a symbol token, SExpr for the root or an
// explicit sexpr node, QExpr for a qexpr node. regex nodes and bare
// punctuation children are skipped; anything else is recursed into and
// appended to the current container.
func Convert(n *Node) value.Value {
	switch n.Tag {
	case TagNumber:
		return convertNumber(n.Contents)
	case TagSymbol:
		return value.MakeSym(n.Contents)
	case TagRoot, TagSExpr:
		return value.MakeSExpr(convertChildren(n)...)
	case TagQExpr:
		return value.MakeQExpr(convertChildren(n)...)
	default:
		return value.MakeErr("unrecognized parse node %q", n.Tag)
	}
}

func convertNumber(tok string) value.Value {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return value.MakeErr("'%s' is an invalid number", tok)
	}
	return value.MakeNum(n)
}

func convertChildren(n *Node) []value.Value {
	elems := make([]value.Value, 0, len(n.Children))
	for _, child := range n.Children {
		if child.Tag == TagRegex || skippedContents[child.Contents] {
			continue
		}
		elems = append(elems, Convert(child))
	}
	return elems
}
