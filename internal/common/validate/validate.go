// Released under an MIT license. See LICENSE.

// Package validate provides the argument checks shared by mlisp's builtins.
// Each check returns nil when the arguments are acceptable and an error
// cell naming the builtin otherwise.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
)

// Kind is a predicate that accepts cells of a single type.
type Kind struct {
	Name string
	Is   func(c cell.I) bool
}

// Count checks that exactly n arguments were passed to the builtin name.
func Count(name string, args *list.T, n int) cell.I {
	if got := args.Len(); got > n {
		return errorf(name, "passed too many arguments. Expected %d, got %d.", n, got)
	} else if got < n {
		return errorf(name, "passed too few arguments. Expected %d, got %d.", n, got)
	}

	return nil
}

// Max checks that at most n arguments were passed to the builtin name.
func Max(name string, args *list.T, n int) cell.I {
	if got := args.Len(); got > n {
		return errorf(name, "passed too many arguments. Expected at most %d, got %d.", n, got)
	}

	return nil
}

// Min checks that at least n arguments were passed to the builtin name.
func Min(name string, args *list.T, n int) cell.I {
	if got := args.Len(); got < n {
		return errorf(name, "passed too few arguments. Expected at least %d, got %d.", n, got)
	}

	return nil
}

// NotEmpty checks that the list argument at index i has elements.
func NotEmpty(name string, args *list.T, i int) cell.I {
	if list.To(args.Get(i)).Len() == 0 {
		return errorf(name, "passed empty list.")
	}

	return nil
}

// Type checks that the argument at index i is of kind k.
func Type(name string, args *list.T, i int, k Kind) cell.I {
	c := args.Get(i)
	if !k.Is(c) {
		return errorf(name, "passed incorrect argument types. Expected %s, got %s.", k.Name, c.Name())
	}

	return nil
}

// All checks that every argument is of kind k.
func All(name string, args *list.T, k Kind) cell.I {
	for i := range args.Cells() {
		if err := Type(name, args, i, k); err != nil {
			return err
		}
	}

	return nil
}

func errorf(name, format string, a ...interface{}) cell.I {
	return errstr.New(fmt.Sprintf("Function '%s' ", name) + fmt.Sprintf(format, a...))
}
