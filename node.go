// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package sllist

import "fmt"

// Node holds a single opaque value.
type Node[T any] struct {
	value T
}

// NewNode returns a node carrying v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the stored value.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the stored value and returns the node for chaining.
func (n *Node[T]) SetValue(v T) *Node[T] {
	n.value = v
	return n
}

// Linker is the capability set a node must expose to take part in a chain.
// Links are *ListNode[T] rather than Linker[T] because the list rewires
// concrete nodes, so ListNode is the only implementation in practice.
type Linker[T any] interface {
	Value() T
	SetValue(v T) *ListNode[T]
	Next() *ListNode[T]
	SetNext(next *ListNode[T]) *ListNode[T]
}

// ListNode is a Node with a forward link to its successor.
type ListNode[T any] struct {
	Node[T]
	next *ListNode[T]
}

// NewListNode returns an unlinked node carrying v.
func NewListNode[T any](v T) *ListNode[T] {
	return &ListNode[T]{Node: Node[T]{value: v}}
}

// SetValue replaces the stored value and returns the node for chaining.
func (n *ListNode[T]) SetValue(v T) *ListNode[T] {
	n.Node.SetValue(v)
	return n
}

// Next returns the successor, or nil at the end of the chain.
func (n *ListNode[T]) Next() *ListNode[T] {
	return n.next
}

// SetNext rewires the successor link. Passing nil detaches the tail.
func (n *ListNode[T]) SetNext(next *ListNode[T]) *ListNode[T] {
	n.next = next
	return n
}

// AsListNode checks that v is a *ListNode[T]. It is the runtime form of the
// Linker contract for values that arrive untyped.
func AsListNode[T any](v any) (*ListNode[T], error) {
	n, ok := v.(*ListNode[T])
	if !ok || n == nil {
		return nil, fmt.Errorf("%w: %T does not implement the list node contract", ErrTypeContract, v)
	}
	return n, nil
}
