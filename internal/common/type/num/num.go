// Released under an MIT license. See LICENSE.

// Package num provides mlisp's floating point number type.
package num

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/mlisp/internal/common"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/truth"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
)

// Name is the type name used when reporting type errors.
const Name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return New(float64(i))
}

// Parse creates a num from the literal s. A literal that cannot be
// represented produces an error cell rather than a num.
func Parse(s string) cell.I {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return errstr.New("Invalid number: " + s)
	}

	return New(f)
}

// Bool returns the boolean value of the num n. Any non-zero value is true.
func (n *num) Bool() bool {
	return n.Float() != 0
}

// Copy returns n. A num is never modified after it is created.
func (n *num) Copy() cell.I {
	return n
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return Name
}

// String returns the text of the num n in the shortest general format.
func (n *num) String() string {
	return strconv.FormatFloat(n.Float(), 'g', -1, 64)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
