// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package sllist

import (
	"fmt"
	"math"
)

// LinkedList is a singly-linked list addressed by 0-based index.
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head *ListNode[T]
}

// New returns an empty list.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Head returns the first node, or nil if the list is empty. Rewiring links
// through the returned node bypasses the list's checks.
func (l *LinkedList[T]) Head() *ListNode[T] {
	return l.head
}

// Insert appends v after the last node and returns the list for chaining.
func (l *LinkedList[T]) Insert(v T) *LinkedList[T] {
	n := NewListNode(v)
	if l.head == nil {
		l.head = n
		return l
	}
	l.last().SetNext(n)
	return l
}

// InsertAt places v so that it ends up at position index. An index equal to
// Count() appends.
func (l *LinkedList[T]) InsertAt(v T, index int) error {
	if index < 0 {
		return fmt.Errorf("%w: index %d is negative", ErrInvalidArgument, index)
	}

	if index == 0 {
		l.head = NewListNode(v).SetNext(l.head)
		return nil
	}

	prev, err := l.node(index - 1)
	if err != nil {
		return fmt.Errorf("insert at %d: %w", index, err)
	}
	prev.SetNext(NewListNode(v).SetNext(prev.Next()))
	return nil
}

// Get returns the value at index.
func (l *LinkedList[T]) Get(index int) (T, error) {
	n, err := l.node(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.Value(), nil
}

// Set overwrites the value at index.
func (l *LinkedList[T]) Set(index int, v T) error {
	n, err := l.node(index)
	if err != nil {
		return err
	}
	n.SetValue(v)
	return nil
}

// Remove deletes the node at index.
func (l *LinkedList[T]) Remove(index int) error {
	return l.RemoveN(index, 1)
}

// RemoveN deletes count consecutive nodes starting at index. The whole span
// must exist; otherwise nothing is removed.
func (l *LinkedList[T]) RemoveN(index, count int) error {
	if count < 1 {
		return fmt.Errorf("%w: count %d must be at least 1", ErrInvalidArgument, count)
	}
	if index < 0 {
		return fmt.Errorf("%w: index %d is negative", ErrInvalidArgument, index)
	}
	if count-1 > math.MaxInt-index {
		return fmt.Errorf("%w: span %d+%d overflows", ErrIndexOutOfRange, index, count)
	}

	last, err := l.node(index + count - 1)
	if err != nil {
		return fmt.Errorf("remove %d from %d: %w", count, index, err)
	}
	rest := last.Next()

	var first *ListNode[T]
	if index == 0 {
		first = l.head
		l.head = rest
	} else {
		// The predecessor precedes last, so it is reachable.
		prev, _ := l.node(index - 1)
		first = prev.Next()
		prev.SetNext(rest)
	}
	unlink(first, rest)
	return nil
}

// Count walks the chain and returns its length.
func (l *LinkedList[T]) Count() int {
	count := 0
	for n := l.head; n != nil; n = n.Next() {
		count++
	}
	return count
}

// Clear drops every node, unlinking them one at a time from the front.
func (l *LinkedList[T]) Clear() {
	head := l.head
	l.head = nil
	unlink(head, nil)
}

// node walks index steps from head.
func (l *LinkedList[T]) node(index int) (*ListNode[T], error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: index %d is negative", ErrInvalidArgument, index)
	}
	n := l.head
	for i := 0; n != nil && i < index; i++ {
		n = n.Next()
	}
	if n == nil {
		return nil, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, index)
	}
	return n, nil
}

// last returns the final node, or nil for an empty list.
func (l *LinkedList[T]) last() *ListNode[T] {
	n := l.head
	for n != nil && n.Next() != nil {
		n = n.Next()
	}
	return n
}

// unlink severs every link from n up to, but not including, stop.
func unlink[T any](n, stop *ListNode[T]) {
	for n != nil && n != stop {
		next := n.Next()
		n.SetNext(nil)
		n = next
	}
}
