// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/mlisp/internal/system/options"
)

func invoke(t *testing.T, stdin string, argv ...string) (int, string) {
	t.Helper()

	options.ParseArgs(argv, false)

	var stdout, stderr bytes.Buffer

	code := run(strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String()
}

func TestCommand(t *testing.T) {
	code, out := invoke(t, "", "-c", "+ 1 2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", out)

	code, out = invoke(t, "", "-c", "/ 1 0")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Division by zero\n", out)

	code, out = invoke(t, "", "-c", "(+ 1")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestNoPrelude(t *testing.T) {
	code, out := invoke(t, "", "--no-prelude", "-c", "len {1}")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Unbound symbol: 'len'\n", out)
}

func TestUnprotected(t *testing.T) {
	code, out := invoke(t, "", "--unprotected", "-c", "def {head} 1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "()\n", out)
}

func TestStdin(t *testing.T) {
	code, out := invoke(t, "(print 1) (car {2})\n(println 2)\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1Error: Unbound symbol: 'car'\n2\n", out)

	code, _ = invoke(t, "(println 1")
	assert.Equal(t, 1, code)
}

func TestScripts(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.mlisp")
	require.NoError(t, os.WriteFile(first, []byte("(def {greeting} \"hello\")\n"), 0o600))

	second := filepath.Join(dir, "second.mlisp")
	require.NoError(t, os.WriteFile(second, []byte("(println greeting \"world\")\n"), 0o600))

	code, out := invoke(t, "", first, second)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world\n", out)

	code, _ = invoke(t, "", filepath.Join(dir, "missing.mlisp"))
	assert.Equal(t, 1, code)
}
