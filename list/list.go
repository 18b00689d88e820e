package list

import (
	"sync/atomic"

	"github.com/npillmayer/fp/maybe"
)

// List is an immutable persistent singly-linked list of elements of type T.
// An empty instance is usable as an empty list, i.e. this is legal:
//
//     l := list.List[int]{}.Append(42)
//
// returning a single-element list ⟨42⟩. Lists are handles onto shared,
// reference-counted nodes: a List owns exactly one reference to its head
// node. Copying the struct does not acquire a reference of its own; use
// Clone to hand a list to an independent holder, and Release to give a
// handle's reference back.
//
// A handle that is merely overwritten keeps its reference: the collector
// still reclaims unreachable nodes, but the counts stay conservatively high
// and a later Release stops early. Release a handle before replacing it
// whenever exact counts matter (From does this for its intermediates).
type List[T any] struct {
	head *node[T]
}

// Immutable constructs an empty list.
// Use it like this:
//
//     l := list.Immutable[string]()
//     l = l.Append("hello world")
//
func Immutable[T any]() List[T] {
	return List[T]{}
}

// From constructs a list by appending the given values left to right, so
// that the last argument becomes the head of the list.
func From[T any](values ...T) List[T] {
	l := List[T]{}
	for _, v := range values {
		next := l.Append(v)
		l.Release() // the old head is now shared by next, so this stops after one step
		l = next
	}
	tracer().Debugf("constructed list of length %d", len(values))
	return l
}

// --- API -------------------------------------------------------------------

// Empty returns true iff the list contains no elements.
func (l List[T]) Empty() bool {
	return l.head == nil
}

// Append returns a new list with value as its head and l as its tail.
// l is left unchanged and remains independently usable: the new list shares
// every node of l. O(1), no copying of nodes ever occurs.
func (l List[T]) Append(value T) List[T] {
	return List[T]{head: newNode(value, l.head.retain())}
}

// Head returns the first element of the list, or Nothing for an empty list.
// The element is returned by value; shared nodes cannot be mutated through it.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// Tail returns the list of the second-and-onward elements of l, or Nothing
// for an empty list. The returned list shares its nodes with l. O(1).
//
// Note that the tail of a single-element list is Just the empty list,
// while the tail of an empty list is Nothing.
func (l List[T]) Tail() maybe.Maybe[List[T]] {
	if l.head == nil {
		return maybe.Nothing[List[T]]()
	}
	return maybe.Just(List[T]{head: l.head.next.retain()})
}

// Clone returns a new handle onto the same list, owning a reference of its
// own. Use it whenever a list is handed to an independent holder whose
// lifetime is not tied to l's.
func (l List[T]) Clone() List[T] {
	return List[T]{head: l.head.retain()}
}

// Len returns the number of elements in the list.
//
// NOTE: This is an O(n) operation.
func (l List[T]) Len() int {
	length := 0
	for n := l.head; n != nil; n = n.next {
		length++
	}
	return length
}

// Release drops the handle's reference onto its head node and empties the
// handle. Nodes whose reference count drops to zero are unlinked one by one;
// the walk stops at the first node still referenced by another holder, which
// remains intact together with its successors.
//
// Release is an explicit loop rather than a recursion over nodes, so chains
// of arbitrary length tear down with constant stack usage. The garbage
// collector reclaims unreachable nodes in any case; Release keeps the
// reference counts exact and unlinks long dead chains promptly.
//
// Iterators obtained from l before the call must no longer be used.
func (l *List[T]) Release() {
	n := l.head
	l.head = nil
	freed := 0
	for n != nil {
		refs := atomic.AddInt32(&n.refs, -1)
		assertThat(refs >= 0, "reference count of node dropped below zero")
		if refs > 0 {
			break // node is still shared by another holder
		}
		next := n.next
		n.next = nil
		n = next
		freed++
	}
	tracer().Debugf("released list handle, %d nodes freed", freed)
}

// --- Iteration -------------------------------------------------------------

// Iter is an iterator over the elements of a list, front to back. Multiple
// independent iterators over the same or over sharing lists may coexist;
// iterating neither consumes nor mutates the list. An Iter is valid as long
// as its list handle has not been released.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns a fresh iterator positioned at the head of the list.
func (l List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head}
}

// Next returns the next element of the list, or the zero value together
// with false when the list is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.next == nil {
		var none T
		return none, false
	}
	elem := it.next.elem
	it.next = it.next.next
	return elem, true
}
