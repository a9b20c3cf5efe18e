// Released under an MIT license. See LICENSE.

// Package reader turns mlisp source text into values.
package reader

import (
	"errors"
	"fmt"
	"os"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/num"
	"github.com/michaelmacinnis/mlisp/internal/common/type/str"
	"github.com/michaelmacinnis/mlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/mlisp/internal/reader/lexer"
	"github.com/michaelmacinnis/mlisp/internal/reader/parser"
	"github.com/michaelmacinnis/mlisp/internal/reader/tree"
)

// Error is the error returned when text cannot be parsed.
type Error = parser.Error

// IsIncomplete returns true if err was caused by input that ended before
// every expression was closed.
func IsIncomplete(err error) bool {
	var e *Error

	return errors.As(err, &e) && e.Incomplete
}

// Parse parses text. The name is used to label error locations.
func Parse(name, text string) (*tree.Node, error) {
	l := lexer.New(name)

	l.Scan(text)

	return parser.New(name, l.Token).Parse()
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*tree.Node, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return Parse(path, string(b))
}

// Read converts a parse tree into a value. The root becomes an
// S-expression. Delimiters and comments are skipped.
func Read(n *tree.Node) cell.I {
	switch n.Tag {
	case tree.Number:
		return num.Parse(n.Contents)

	case tree.String:
		s, err := adapted.ActualBytes(n.Contents[1 : len(n.Contents)-1])
		if err != nil {
			return errstr.New("Invalid string: " + n.Contents)
		}

		return str.New(s)

	case tree.Symbol:
		return sym.New(n.Contents)
	}

	l := list.NewS()
	if n.Is(tree.QExpr) {
		l.Quote()
	}

	for _, c := range n.Children {
		if c.Is(tree.Char, tree.Comment) {
			continue
		}

		l.Add(Read(c))
	}

	return l
}

// ReadString parses and reads text in one step.
func ReadString(name, text string) (*list.T, error) {
	n, err := Parse(name, text)
	if err != nil {
		return nil, err
	}

	return list.To(Read(n)), nil
}

// ReadFile parses and reads the file at path in one step.
func ReadFile(path string) (*list.T, error) {
	n, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	return list.To(Read(n)), nil
}
