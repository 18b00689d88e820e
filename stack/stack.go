package stack

import (
	"github.com/npillmayer/fp/maybe"
)

// Stack is a singly-linked LIFO stack of elements of type T.
// The zero value is an empty stack ready to use.
//
// A stack is a single-owner structure: it must not be copied after first
// use, and it is not safe for concurrent access.
type Stack[T any] struct {
	head   *node[T]
	length int
}

type node[T any] struct {
	elem T
	next *node[T]
}

// Push puts value on top of the stack. O(1).
func (s *Stack[T]) Push(value T) {
	s.head = &node[T]{elem: value, next: s.head}
	s.length++
}

// Pop removes the top element and returns it, or the zero value together
// with false if the stack is empty. O(1).
func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var none T
		return none, false
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.length--
	return n.elem, true
}

// Peek returns the top element without removing it, or Nothing for an
// empty stack.
func (s *Stack[T]) Peek() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.elem)
}

// Update applies f to the top element in place. Updating an empty stack is
// a no-op.
func (s *Stack[T]) Update(f func(T) T) {
	if s.head == nil {
		return
	}
	s.head.elem = f(s.head.elem)
}

// Len returns the number of elements on the stack. O(1).
func (s *Stack[T]) Len() int {
	return s.length
}

// Empty returns true iff the stack contains no elements.
func (s *Stack[T]) Empty() bool {
	return s.head == nil
}

// Clear removes all elements. Dropping the head reference releases the
// whole chain at once; no walk over the nodes is involved.
func (s *Stack[T]) Clear() {
	tracer().Debugf("clearing stack of %d elements", s.length)
	s.head = nil
	s.length = 0
}

// --- Iteration -------------------------------------------------------------

// Iter is an iterator over the elements of a stack, top to bottom, without
// consuming them. The stack must not be mutated while an Iter is in use.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns a fresh iterator positioned at the top of the stack.
func (s *Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{next: s.head}
}

// Next returns the next element, or the zero value together with false
// when the stack has been walked completely.
func (it *Iter[T]) Next() (T, bool) {
	if it.next == nil {
		var none T
		return none, false
	}
	elem := it.next.elem
	it.next = it.next.next
	return elem, true
}

// Drain is an iterator which pops the elements it yields, leaving the
// stack empty once exhausted.
type Drain[T any] struct {
	stack *Stack[T]
}

// Drain returns a consuming iterator over the stack, top to bottom.
func (s *Stack[T]) Drain() *Drain[T] {
	return &Drain[T]{stack: s}
}

// Next pops and returns the next element, or the zero value together with
// false once the stack is empty.
func (d *Drain[T]) Next() (T, bool) {
	return d.stack.Pop()
}
