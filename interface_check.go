package sllist

// Compile-time checks that the node types satisfy their contracts.

var _ Linker[any] = (*ListNode[any])(nil)

var _ Linker[string] = (*ListNode[string])(nil)
