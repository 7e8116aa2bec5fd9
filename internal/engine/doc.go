// Package engine executes scripts against a singly-linked list.
//
// Each script runs on its own fresh sllist.LinkedList of cty values. An
// operation either succeeds, optionally checking its result against
// `expect`, or fails. A failure is acceptable only when the operation names
// the matching error kind in `expect_error`; anything else stops the script
// with an *OpError.
package engine
