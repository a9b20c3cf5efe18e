// Released under an MIT license. See LICENSE.

package validate

import (
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/num"
	"github.com/michaelmacinnis/mlisp/internal/common/type/str"
	"github.com/michaelmacinnis/mlisp/internal/common/type/sym"
)

//nolint:gochecknoglobals
var (
	Number = Kind{Name: num.Name, Is: num.Is}
	QExpr  = Kind{Name: list.QName, Is: list.IsQ}
	String = Kind{Name: str.Name, Is: str.Is}
	Symbol = Kind{Name: sym.Name, Is: sym.Is}
)
