/*
Package cons collects singly-linked list containers.

Functional programming languages like Lisp have built their data handling
on linked lists of cons-cells since the beginning. This module offers a
small selection of such lists for Go, each with a different ownership
story:

▪ list: an immutable persistent list. “Modification” produces a new list
which shares its structure with the original; nodes are reference-counted
and live as long as the longest-lived list referencing them.

▪ stack: a mutable LIFO stack, owned by a single holder.

▪ queue: a mutable FIFO queue with O(1) operations at both ends.

Persistent immutable data-structures offer structural sharing, which means
that if two data structures are mostly copies of each other, most of the
memory they take up will be shared between them. This implies that making
copies of an immutable data structure is relatively cheap in terms of
space- and time-complexity.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cons
