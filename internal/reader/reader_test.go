// Released under an MIT license. See LICENSE.

package reader_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/mlisp/internal/common/printer"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/num"
	"github.com/michaelmacinnis/mlisp/internal/common/type/str"
	"github.com/michaelmacinnis/mlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/mlisp/internal/reader"
)

func TestRead(t *testing.T) {
	l, err := reader.ReadString("test", `+ 1 (x) {2.5 "a\tb" {}} ; comment`)
	require.NoError(t, err)

	expected := list.NewS(
		sym.New("+"),
		num.Int(1),
		list.NewS(sym.New("x")),
		list.NewQ(num.New(2.5), str.New("a\tb"), list.NewQ()),
	)

	assert.True(t, expected.Equal(l), literal.String(l))
}

func TestReadInvalidNumber(t *testing.T) {
	l, err := reader.ReadString("test", "1e")
	require.NoError(t, err)
	assert.True(t, sym.Is(l.Get(0)))

	big := "1"
	for i := 0; i < 400; i++ {
		big += "0"
	}

	l, err = reader.ReadString("test", big)
	require.NoError(t, err)

	e := l.Get(0)
	require.True(t, errstr.Is(e))
	assert.Equal(t, "Invalid number: "+big, errstr.To(e).Message())
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{
		`{1 -2.5 x "q\"uo\\te\n" {y {"z"}}}`,
		"{100000000 3628800 0.000001 -1e+21}",
		`{"\xff" "é" "\a\x01"}`,
	} {
		l, err := reader.ReadString("test", text)
		require.NoError(t, err)

		q := l.Get(0)
		rendered := printer.Display(nil, q)

		again, err := reader.ReadString("test", rendered)
		require.NoError(t, err)
		assert.True(t, q.Equal(again.Get(0)), "%s -> %s", text, rendered)
	}
}

func TestIsIncomplete(t *testing.T) {
	_, err := reader.Parse("test", "(+ 1")
	assert.True(t, reader.IsIncomplete(err))

	_, err = reader.Parse("test", "+ 1)")
	assert.Error(t, err)
	assert.False(t, reader.IsIncomplete(err))

	_, err = reader.Parse("test", "+ 1")
	assert.NoError(t, err)
	assert.False(t, reader.IsIncomplete(err))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forms.mlisp")

	require.NoError(t, os.WriteFile(path, []byte("(def {x} 1)\n(+ x 1)\n"), 0o600))

	forms, err := reader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, forms.Len())

	_, err = reader.ReadFile(filepath.Join(dir, "missing.mlisp"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
