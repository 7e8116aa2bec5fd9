// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package sllist implements a singly-linked list with index-addressed access.
//
// The list owns a chain of ListNode values starting at its head. Every
// operation locates its target by walking links from the head, so Get, Set,
// InsertAt, RemoveN and Count are all O(n). There is no cached length: the
// chain itself is the only source of truth.
//
// # Failure semantics
//
// A call that fails leaves the list exactly as it was. Bounds are confirmed by
// walking the chain before any link is rewired. Errors wrap one of the
// package sentinels and are matched with errors.Is:
//
//	if err := l.RemoveN(5, 1); errors.Is(err, sllist.ErrIndexOutOfRange) {
//	    // nothing was removed
//	}
//
// # Concurrency
//
// A LinkedList is not safe for concurrent use. Callers that share a list
// between goroutines must serialize access themselves.
package sllist
