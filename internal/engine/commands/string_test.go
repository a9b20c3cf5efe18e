// Released under an MIT license. See LICENSE.

package commands_test

import (
	"testing"

	"github.com/michaelmacinnis/mlisp/internal/engine/enginetest"
)

func TestString(t *testing.T) {
	tests := enginetest.TestSuite{
		{"case", enginetest.TestSequence{
			{`upper "MiXed"`, "MIXED", ""},
			{`lower "MiXed"`, "mixed", ""},
			{`repr (upper "a")`, `"A"`, ""},
		}},
		{"trim and replace", enginetest.TestSequence{
			{`trim-prefix "mlisp.go" "mlisp"`, ".go", ""},
			{`trim-suffix "mlisp.go" ".go"`, "mlisp", ""},
			{`replace "a-b-c" "-" "+"`, "a+b+c", ""},
		}},
		{"match", enginetest.TestSequence{
			{`match "*.mlisp" "prelude.mlisp"`, "1", ""},
			{`match "[a-c]?" "bz"`, "1", ""},
			{`match "*.go" "prelude.mlisp"`, "0", ""},
		}},
		{"errors", enginetest.TestSequence{
			{"upper 1", "Error: Function 'upper' passed incorrect argument types. Expected string, got number.", ""},
			{`match "*"`, "Error: Function 'match' passed too few arguments. Expected 2, got 1.", ""},
		}},
	}

	enginetest.RunTestSuite(t, tests)
}
