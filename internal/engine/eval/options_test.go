// Released under an MIT license. See LICENSE.

package eval_test

import (
	"github.com/michaelmacinnis/mlisp/internal/engine"
)

func engineOptions() []engine.Option {
	return []engine.Option{engine.Prelude(false)}
}
