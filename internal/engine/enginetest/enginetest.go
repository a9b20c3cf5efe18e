// Released under an MIT license. See LICENSE.

// Package enginetest runs sequences of mlisp expressions against an engine
// and checks what each one evaluates to and prints.
package enginetest

import (
	"bytes"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/mlisp/internal/engine"
)

// TestSequence is a sequence of expressions which are evaluated in order
// by one engine.
type TestSequence []struct {
	Expr   string // An mlisp expression.
	Result string // The displayed result.
	Stdout string // Anything printed while evaluating Expr.
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// New creates an engine that writes to out and discards diagnostics.
func New(t *testing.T, out io.Writer, opts ...engine.Option) *engine.T {
	t.Helper()

	logger := log.New()
	logger.SetOutput(io.Discard)

	opts = append([]engine.Option{
		engine.Logger(logger),
		engine.Stdout(out),
	}, opts...)

	e, err := engine.New(opts...)
	require.NoError(t, err)

	return e
}

// RunTestSuite runs each TestSequence in tests on its own engine.
func RunTestSuite(t *testing.T, tests TestSuite, opts ...engine.Option) {
	t.Helper()

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			var out bytes.Buffer

			e := New(t, &out, opts...)

			for j, expr := range test.TestSequence {
				out.Reset()

				v, err := e.Evaluate("test", expr.Expr)
				if !assert.NoError(t, err, "expr %d: %s", j, expr.Expr) {
					continue
				}

				assert.Equal(t, expr.Result, e.Render(v), "expr %d: %s", j, expr.Expr)
				assert.Equal(t, expr.Stdout, out.String(), "expr %d: %s", j, expr.Expr)
			}
		})
	}
}
