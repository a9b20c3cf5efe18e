// Released under an MIT license. See LICENSE.

package sym

import "testing"

func TestNew(t *testing.T) {
	a := New("x")
	b := New("x")

	if !a.Equal(b) || a.Equal(New("y")) {
		t.Fatal("symbols should compare by name")
	}

	if a.Copy() != a {
		t.Fatal("Copy should return the symbol itself")
	}

	if To(a).Literal() != "x" || To(a).Name() != Name {
		t.Fatalf("unexpected symbol %s", To(a))
	}
}
