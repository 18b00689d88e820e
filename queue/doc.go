/*
Package queue implements a mutable singly-linked FIFO queue.

The queue keeps a pointer to its last node, so that both enqueueing and
dequeueing are O(1). Like the stack of the sibling package it is a
single-owner structure with in-place mutation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.queue'.
func tracer() tracing.Trace {
	return tracing.Select("cons.queue")
}
