package list

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// node is a single cons-cell. elem and next are set at construction and
// never mutated afterwards; refs counts the handles onto the node, i.e. the
// List heads plus the predecessor nodes referencing it.
type node[T any] struct {
	refs int32
	elem T
	next *node[T]
}

// newNode allocates a node holding one reference for its creator.
func newNode[T any](elem T, next *node[T]) *node[T] {
	return &node[T]{refs: 1, elem: elem, next: next}
}

// retain acquires a reference onto n. retain of a nil node is a no-op, so
// link fields may be chained without empty-checks.
func (n *node[T]) retain() *node[T] {
	if n != nil {
		atomic.AddInt32(&n.refs, 1)
	}
	return n
}

// shared returns true iff more than one holder references n.
func (n *node[T]) shared() bool {
	return atomic.LoadInt32(&n.refs) > 1
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
