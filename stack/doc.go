/*
Package stack implements a mutable singly-linked LIFO stack.

Unlike the persistent list of the sibling package, a stack is owned by a
single holder and mutated in place; nodes are never shared between stacks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.stack'.
func tracer() tracing.Trace {
	return tracing.Select("cons.stack")
}
