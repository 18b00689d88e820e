package queue

import (
	"fmt"

	"github.com/npillmayer/fp/maybe"
)

// Queue is a singly-linked FIFO queue of elements of type T.
// The zero value is an empty queue ready to use.
//
// A queue is a single-owner structure: it must not be copied after first
// use, and it is not safe for concurrent access.
type Queue[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

type node[T any] struct {
	elem T
	next *node[T]
}

// Enqueue appends value at the back of the queue. O(1).
func (q *Queue[T]) Enqueue(value T) {
	n := &node[T]{elem: value}
	if q.tail == nil {
		assertThat(q.head == nil, "tail of queue is nil, head isn't")
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
	tracer().Debugf("enqueued %v, queue length now %d", value, q.length)
}

// Dequeue removes the front element and returns it, or the zero value
// together with false if the queue is empty. O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.head == nil {
		var none T
		return none, false
	}
	n := q.head
	q.head = n.next
	n.next = nil
	if q.head == nil {
		q.tail = nil
	}
	q.length--
	return n.elem, true
}

// Peek returns the front element without removing it, or Nothing for an
// empty queue.
func (q *Queue[T]) Peek() maybe.Maybe[T] {
	if q.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.head.elem)
}

// Len returns the number of elements in the queue. O(1).
func (q *Queue[T]) Len() int {
	return q.length
}

// Empty returns true iff the queue contains no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == nil
}

// --- Iteration -------------------------------------------------------------

// Iter is an iterator over the elements of a queue, front to back, without
// consuming them. The queue must not be mutated while an Iter is in use.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns a fresh iterator positioned at the front of the queue.
func (q *Queue[T]) Iter() *Iter[T] {
	return &Iter[T]{next: q.head}
}

// Next returns the next element, or the zero value together with false
// when the queue has been walked completely.
func (it *Iter[T]) Next() (T, bool) {
	if it.next == nil {
		var none T
		return none, false
	}
	elem := it.next.elem
	it.next = it.next.next
	return elem, true
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
