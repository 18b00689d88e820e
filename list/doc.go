/*
Package list implements an immutable persistent singly-linked list.

A persistent list has copy-on-write behaviour: appending an element creates
a new list, leaving the original unmodified. Under the hood the new list
points at the nodes of the original, i.e. both lists share their tail
segment transparently to clients:

    list1 → A ─┐
               ▼
    list2 ───→ B → C → D
               ▲
    list3 → X ─┘

Nodes are reference-counted: a node lives as long as the longest-lived
chain of references into it, which may be well beyond the lifetime of the
list that created it. Node contents are never mutated after construction
and reference counts are maintained atomically, so lists may be shared
between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.list'.
func tracer() tracing.Trace {
	return tracing.Select("cons.list")
}
