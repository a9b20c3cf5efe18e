// Released under an MIT license. See LICENSE.

// Package tree provides the parse tree produced by the mlisp parser.
package tree

import (
	"strings"

	"github.com/michaelmacinnis/mlisp/internal/common/struct/loc"
)

// Node tags.
const (
	Char    = "char"
	Comment = "comment"
	Number  = "number"
	QExpr   = "qexpr"
	Root    = "root"
	SExpr   = "sexpr"
	String  = "string"
	Symbol  = "symbol"
)

// Node is a tagged parse tree node. Leaves carry contents. Expressions
// carry children, including their delimiters tagged as Char.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
	Source   loc.T
}

// Is returns true if the node n has any of the tags in tags.
func (n *Node) Is(tags ...string) bool {
	for _, tag := range tags {
		if n.Tag == tag {
			return true
		}
	}

	return false
}

// String returns the node and its children as an indented outline.
// Useful for debugging.
func (n *Node) String() string {
	var b strings.Builder

	n.outline(&b, 0)

	return b.String()
}

func (n *Node) outline(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)

	if n.Contents != "" {
		b.WriteString(" '" + n.Contents + "'")
	}

	b.WriteByte('\n')

	for _, c := range n.Children {
		c.outline(b, depth+1)
	}
}
