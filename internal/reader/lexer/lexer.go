// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the mlisp language.
//
// The mlisp lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/mlisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/mlisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string     // Buffer being scanned.
	first int        // Index of the current token's first byte.
	index int        // Index of the current byte.
	queue []*token.T // Tokens waiting to be returned.
	state action     // Current action.

	source loc.T // Location of the current byte.
	start  loc.T // Location of the current token's first byte.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.start = l.source
	l.state = skipWhitespace

	return l
}

// Scan appends text to the buffer being scanned.
func (l *T) Scan(text string) {
	l.bytes += text
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil when the buffer is exhausted.
func (l *T) Token() *token.T {
	for len(l.queue) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.queue[0]
	l.queue = l.queue[1:]

	return t
}

type action func(*T) action

const eof = -1

//nolint:gochecknoglobals
var number = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.source.Char = 1
	} else {
		l.source.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.queue = append(l.queue, token.New(c, v, l.start))
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	if r != eof {
		l.accept(r, w)
	}

	return r
}

func (l *T) peek() (rune, int) {
	if l.index >= len(l.bytes) {
		return eof, 0
	}

	return utf8.DecodeRuneInString(l.bytes[l.index:])
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
}

// T states.

func scanAtom(l *T) action {
	for {
		r, w := l.peek()
		if !symbolic(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()
	if number.MatchString(s) {
		l.emit(token.Number, s)
	} else {
		l.emit(token.Symbol, s)
	}

	return skipWhitespace
}

func scanComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof, '\n':
			l.emit(token.Comment, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Unterminated, l.Text())

			return nil
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			if l.next() == eof {
				l.emit(token.Unterminated, l.Text())

				return nil
			}
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case strings.ContainsRune(" \t\r\n", r):
			l.accept(r, w)
			l.skip()

			continue
		case strings.ContainsRune("(){}", r):
			l.accept(r, w)
			l.emit(token.Class(r), l.Text())
		case r == '"':
			l.accept(r, w)

			return scanString
		case r == ';':
			return scanComment
		case symbolic(r):
			return scanAtom
		default:
			l.accept(r, w)
			l.emit(token.Error, l.Text())
		}

		return skipWhitespace
	}
}

// Helper functions (well, function).

func symbolic(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}

	return strings.ContainsRune(`_+-*/\=<>!&%.^`, r)
}
