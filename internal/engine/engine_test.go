// Released under an MIT license. See LICENSE.

package engine_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/num"
	"github.com/michaelmacinnis/mlisp/internal/engine"
	"github.com/michaelmacinnis/mlisp/internal/engine/enginetest"
	"github.com/michaelmacinnis/mlisp/internal/reader"
)

func TestPreludeOption(t *testing.T) {
	var out bytes.Buffer

	e := enginetest.New(t, &out)
	v, err := e.Evaluate("test", "len {1 2}")
	require.NoError(t, err)
	assert.Equal(t, "2", e.Render(v))

	e = enginetest.New(t, &out, engine.Prelude(false))
	v, err = e.Evaluate("test", "len {1 2}")
	require.NoError(t, err)
	assert.Equal(t, "Error: Unbound symbol: 'len'", e.Render(v))
}

func TestEvaluateParseError(t *testing.T) {
	var out bytes.Buffer

	e := enginetest.New(t, &out)

	_, err := e.Evaluate("test", "(+ 1")
	require.Error(t, err)
	assert.True(t, reader.IsIncomplete(err))

	_, err = e.Evaluate("test", "+ 1)")
	require.Error(t, err)
	assert.False(t, reader.IsIncomplete(err))
	assert.Equal(t, "test:1:4: unexpected ')'", err.Error())
}

func TestExecute(t *testing.T) {
	var out bytes.Buffer

	e := enginetest.New(t, &out)

	err := e.Execute("script", `
		(def {x} 1)
		(print "x is" x)
		(/ x 0)
		(println "" (+ x 1))
	`)
	require.NoError(t, err)
	assert.Equal(t, "x is 1Error: Division by zero\n 2\n", out.String())

	out.Reset()

	err = e.Execute("script", "(println x) (")
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestLoad(t *testing.T) {
	var out bytes.Buffer

	e := enginetest.New(t, &out)

	path := filepath.Join(t.TempDir(), "square.mlisp")
	require.NoError(t, os.WriteFile(path, []byte(`
		; Squares.
		(fun {square x} {* x x})
		(println (square 12))
	`), 0o600))

	require.NoError(t, e.Load(path))
	assert.Equal(t, "144\n", out.String())

	v, err := e.Evaluate("test", "square 3")
	require.NoError(t, err)
	assert.True(t, num.Int(9).Equal(v))

	assert.Error(t, e.Load(filepath.Join(t.TempDir(), "missing.mlisp")))
}

func TestDefine(t *testing.T) {
	var out bytes.Buffer

	e := enginetest.New(t, &out)

	require.NoError(t, e.Define("answer", num.Int(42)))

	v, err := e.Evaluate("test", "+ answer 0")
	require.NoError(t, err)
	assert.Equal(t, "42", e.Render(v))

	err = e.Define("head", num.Int(1))
	require.Error(t, err)
	assert.Equal(t, "Cannot redefine builtin 'head'.", err.Error())

	e = enginetest.New(t, &out, engine.Protect(false))
	assert.NoError(t, e.Define("head", num.Int(1)))
}

func TestRender(t *testing.T) {
	var out bytes.Buffer

	e := enginetest.New(t, &out)

	cases := []struct {
		expr   string
		render string
	}{
		{`"a\tb"`, "a\tb"},
		{`{"a\tb"}`, `{"a\tb"}`},
		{"head", "<function 'head'>"},
		{"{head 1}", "{head 1}"},
		{"list head", "{<function 'head'>}"},
		{"error \"boom\"", "Error: boom"},
		{"lambda {x} {x}", "(lambda {x} {x})"},
		{"1.5", "1.5"},
		{"-0.25", "-0.25"},
	}

	for _, c := range cases {
		v, err := e.Evaluate("test", c.expr)
		require.NoError(t, err, c.expr)
		assert.Equal(t, c.render, e.Render(v), c.expr)
	}

	assert.Equal(t, "Error: oops", e.Render(errstr.New("oops")))
}

func TestEnginesKeepTheirOwnLoggers(t *testing.T) {
	tracer := func(w *bytes.Buffer) *log.Logger {
		l := log.New()
		l.SetOutput(w)
		l.SetLevel(log.TraceLevel)

		return l
	}

	var out, first, second bytes.Buffer

	a, err := engine.New(engine.Logger(tracer(&first)), engine.Prelude(false), engine.Stdout(&out))
	require.NoError(t, err)

	b, err := engine.New(engine.Logger(tracer(&second)), engine.Prelude(false), engine.Stdout(&out))
	require.NoError(t, err)

	first.Reset()
	second.Reset()

	_, err = a.Evaluate("test", "(lambda {x} {head x}) {1}")
	require.NoError(t, err)

	assert.Contains(t, first.String(), "applying closure")
	assert.Contains(t, first.String(), "builtin=head")
	assert.Empty(t, second.String())

	first.Reset()

	_, err = b.Evaluate("test", "+ 1 2")
	require.NoError(t, err)

	assert.Contains(t, second.String(), "applying builtin")
	assert.Empty(t, first.String())
}
