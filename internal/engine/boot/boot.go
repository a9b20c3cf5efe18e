// Released under an MIT license. See LICENSE.

// Package boot provides the prelude loaded when mlisp starts.
package boot

import _ "embed" // Blank import required by embed.

//go:embed prelude.mlisp
var script string //nolint:gochecknoglobals

// Name is used to label errors in the prelude.
const Name = "prelude.mlisp"

// Script returns the prelude for mlisp.
func Script() string {
	return script
}
