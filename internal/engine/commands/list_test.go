// Released under an MIT license. See LICENSE.

package commands_test

import (
	"testing"

	"github.com/michaelmacinnis/mlisp/internal/engine/enginetest"
)

func TestList(t *testing.T) {
	tests := enginetest.TestSuite{
		{"construction", enginetest.TestSequence{
			{"list 1 2 3", "{1 2 3}", ""},
			{"list (+ 1 1) {x}", "{2 {x}}", ""},
			{"list + -", "{<function '+'> <function '-'>}", ""},
			{"{}", "{}", ""},
			{"()", "()", ""},
			{"", "()", ""},
		}},
		{"head and tail", enginetest.TestSequence{
			{"head {1 2 3}", "{1}", ""},
			{"tail {1 2 3}", "{2 3}", ""},
			{"tail {1}", "{}", ""},
			{"head {}", "Error: Function 'head' passed empty list.", ""},
			{"tail {}", "Error: Function 'tail' passed empty list.", ""},
			{"head 1", "Error: Function 'head' passed incorrect argument types. Expected Q-Expression, got number.", ""},
			{"head {1} {2}", "Error: Function 'head' passed too many arguments. Expected 1, got 2.", ""},
		}},
		{"join and cons", enginetest.TestSequence{
			{"join {1} {2 3} {}", "{1 2 3}", ""},
			{"join {}", "{}", ""},
			{"join {1} 2", "Error: Function 'join' passed incorrect argument types. Expected Q-Expression, got number.", ""},
			{"cons 1 {2 3}", "{1 2 3}", ""},
			{"cons {1} {}", "{{1}}", ""},
			{"cons 1 2", "Error: Function 'cons' passed incorrect argument types. Expected Q-Expression, got number.", ""},
			{"cons 1", "Error: Function 'cons' passed too few arguments. Expected 2, got 1.", ""},
		}},
		{"laws", enginetest.TestSequence{
			{"def {l} {1 2 3}", "()", ""},
			{"== (join (head l) (tail l)) l", "1", ""},
			{"== (cons (eval (head l)) (tail l)) l", "1", ""},
			{"== (join l {}) l", "1", ""},
			{"== (join {} l) l", "1", ""},
			{"l", "{1 2 3}", ""},
		}},
		{"eval", enginetest.TestSequence{
			{"eval {+ 1 2}", "3", ""},
			{"eval {head (list 1 2 3)}", "{1}", ""},
			{"eval (tail {tail tail {5 6 7}})", "{6 7}", ""},
			{"eval {}", "()", ""},
			{"eval 1", "Error: Function 'eval' passed incorrect argument types. Expected Q-Expression, got number.", ""},
		}},
	}

	enginetest.RunTestSuite(t, tests)
}
