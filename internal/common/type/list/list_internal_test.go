// Released under an MIT license. See LICENSE.

package list

import (
	"testing"

	"github.com/michaelmacinnis/mlisp/internal/common/type/num"
	"github.com/michaelmacinnis/mlisp/internal/common/type/sym"
)

func TestCopyIsDeep(t *testing.T) {
	inner := NewQ(num.Int(1))
	outer := NewQ(inner, sym.New("x"))

	c := To(outer.Copy())
	To(c.Get(0)).Add(num.Int(2))

	if inner.Len() != 1 {
		t.Fatalf("copy shares nested list: %s", outer)
	}

	if !c.Quoted() {
		t.Fatal("copy lost its flavor")
	}
}

func TestEqualIsFlavorStrict(t *testing.T) {
	q := NewQ(num.Int(1), num.Int(2))
	s := NewS(num.Int(1), num.Int(2))

	if q.Equal(s) {
		t.Fatal("{1 2} should not equal (1 2)")
	}

	if !q.Equal(NewQ(num.Int(1), num.Int(2))) {
		t.Fatal("{1 2} should equal {1 2}")
	}

	if q.Equal(NewQ(num.Int(1))) {
		t.Fatal("{1 2} should not equal {1}")
	}
}

func TestPopTake(t *testing.T) {
	l := NewS(sym.New("a"), sym.New("b"), sym.New("c"))

	if v := l.Pop(1); !v.Equal(sym.New("b")) || l.Len() != 2 {
		t.Fatalf("Pop(1) = %v leaving %s", v, l)
	}

	if v := l.Take(1); !v.Equal(sym.New("c")) {
		t.Fatalf("Take(1) = %v", v)
	}
}

func TestJoinEmptiesArgument(t *testing.T) {
	a := NewQ(num.Int(1))
	b := NewQ(num.Int(2), num.Int(3))

	a.Join(b)

	if a.Len() != 3 || b.Len() != 0 {
		t.Fatalf("join left %s and %s", a, b)
	}
}

func TestQuoting(t *testing.T) {
	l := NewS(num.Int(1))

	if l.Name() != SName || l.String() != "(1)" {
		t.Fatalf("unexpected S-expression %s named %s", l, l.Name())
	}

	l.Quote()

	if l.Name() != QName || l.String() != "{1}" {
		t.Fatalf("unexpected Q-expression %s named %s", l, l.Name())
	}

	if l.Unquote().String() != "(1)" {
		t.Fatal("unquote failed")
	}
}
